package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testAliases = map[string]string{
	"Thomas Mueller": "Th. Müller",
	"Mats Hummels":   "Hummels",
}

func TestCanonicalize(t *testing.T) {
	names := NewNameMapper(testAliases)

	testCases := []struct {
		input  string
		expect string
	}{
		{input: "Thomas Mueller", expect: "Th. Müller"},
		{input: "  thomas   MUELLER ", expect: "Th. Müller"},
		{input: "Mats Hummels", expect: "Hummels"},
		// unknown names pass through unchanged
		{input: "Kimmich", expect: "Kimmich"},
		{input: "", expect: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expect, names.Canonicalize(test.input))
	}
}

func TestSameAthlete(t *testing.T) {
	names := NewNameMapper(testAliases)

	require.True(t, names.SameAthlete("Thomas Mueller", "Th. Müller"))
	require.True(t, names.SameAthlete("th. müller", "Thomas Mueller"))
	require.True(t, names.SameAthlete("Kimmich", "KIMMICH"))
	require.False(t, names.SameAthlete("Thomas Mueller", "Hummels"))
}

// two spellings of the same athlete must produce the same cache key
func TestAliasKeyCollision(t *testing.T) {
	names := NewNameMapper(testAliases)
	parser := NewParser(names, NewClassifier(nil), NewVerdictCache(0))

	keyA := parser.Key("https://a.test", "Thomas Mueller", FilterNone)
	keyB := parser.Key("https://a.test", "Th. Müller", FilterNone)
	require.Equal(t, keyA, keyB)

	keyC := parser.Key("https://a.test", "Th. Müller", FilterRotation)
	require.NotEqual(t, keyA, keyC)
}

func TestClosest(t *testing.T) {
	names := NewNameMapper(nil)
	candidates := []string{"Th. Müller", "Kimmich", "Goretzka"}

	best, score := names.Closest("Kimich", candidates)
	require.Equal(t, "Kimmich", best)
	require.Greater(t, score, 0.8)

	_, score = names.Closest("Zzyzx", candidates)
	require.Less(t, score, 0.8)
}
