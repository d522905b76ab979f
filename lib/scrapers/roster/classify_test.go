package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyInjurySection(t *testing.T) {
	doc := parseFixture(t, `
		<div id="stadium">
			<section>Verletzt: <div class="player_name" id="injured">Neuer</div></section>
			<section>Gesperrt fehlen: <div class="player_name" id="suspended">Upamecano</div></section>
			<section>Startelf: <div class="player_name" id="starting">Kimmich</div></section>
			<div class="player_name" id="plain">Goretzka</div>
		</div>
	`)
	classifier := NewClassifier(nil)
	now := time.Now()

	verdict := classifier.Classify(doc.Find("#injured"), now)
	require.False(t, verdict.IsLikelyToPlay)
	require.Equal(t, ReasonInjuredOrSuspended, verdict.Reason)
	require.Equal(t, now, verdict.LastChecked)

	verdict = classifier.Classify(doc.Find("#suspended"), now)
	require.False(t, verdict.IsLikelyToPlay)
	require.Equal(t, ReasonInjuredOrSuspended, verdict.Reason)

	verdict = classifier.Classify(doc.Find("#starting"), now)
	require.True(t, verdict.IsLikelyToPlay)
	require.Empty(t, verdict.Reason)

	// no section ancestor at all means available
	verdict = classifier.Classify(doc.Find("#plain"), now)
	require.True(t, verdict.IsLikelyToPlay)
}

func TestClassifyMarkerCaseInsensitive(t *testing.T) {
	doc := parseFixture(t, `
		<div id="stadium">
			<section>VERLETZT: <div class="player_name" id="p">Neuer</div></section>
		</div>
	`)
	classifier := NewClassifier([]string{"verletzt"})

	verdict := classifier.Classify(doc.Find("#p"), time.Now())
	require.False(t, verdict.IsLikelyToPlay)
}

func TestInContainer(t *testing.T) {
	doc := parseFixture(t, `
		<div id="stadium">
			<div class="player_name" id="in">Kimmich</div>
		</div>
		<div class="reserve">
			<div class="player_name" id="out">Wanner</div>
		</div>
	`)
	classifier := NewClassifier(nil)

	require.True(t, classifier.InContainer(doc.Find("#in")))
	require.False(t, classifier.InContainer(doc.Find("#out")))
}
