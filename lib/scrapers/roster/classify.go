package roster

import (
	"time"
	"lineupwatch-backend/lib/htmlutil"
	"lineupwatch-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Default structural selectors for the scraped roster pages.
const (
	DefaultContainerSelector = "#stadium"
	DefaultNameSelector      = ".player_name"
	DefaultSectionSelector   = "section"
)

// Classifier derives an availability verdict from a located roster-entry
// node by inspecting its enclosing sections for injury/suspension
// markers.
type Classifier struct {
	// ContainerSelector bounds the active matchday lineup. Entries
	// outside it are not part of the roster context at all.
	ContainerSelector string
	// SectionSelector identifies the section-level ancestor whose text
	// carries injury/suspension markers.
	SectionSelector string
	// Markers are the natural-language substrings meaning
	// injured/doubtful/suspended/missing. Configuration data.
	Markers []string
}

func NewClassifier(markers []string) Classifier {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return Classifier{
		ContainerSelector: DefaultContainerSelector,
		SectionSelector:   DefaultSectionSelector,
		Markers:           markers,
	}
}

// InContainer reports whether the entry sits inside the stadium/lineup
// container.
func (c Classifier) InContainer(entry *goquery.Selection) bool {
	return entry.Closest(c.ContainerSelector).Length() > 0
}

// Classify returns the verdict for one in-container roster entry. An
// enclosing section whose full text contains any marker term means
// injured or suspended, everything else is available.
func (c Classifier) Classify(entry *goquery.Selection, at time.Time) Verdict {
	section := entry.Closest(c.SectionSelector)
	if section.Length() > 0 {
		text := htmlutil.SelectionText(section)
		if textutil.MatchAny(text, c.Markers) {
			return Unavailable(ReasonInjuredOrSuspended, at)
		}
	}
	return Available(at)
}
