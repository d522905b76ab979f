package roster

import (
	"lineupwatch-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// FilterKind tags the closed set of markup filter variants. "none" is
// always implicitly included when filter variants are enumerated.
type FilterKind string

const (
	FilterNone FilterKind = "none"
	// FilterStartingEleven keeps entries whose formation block is
	// actually rendered (visibility-based).
	FilterStartingEleven FilterKind = "startelf"
	// FilterRotation keeps entries not flagged for substitution
	// (arrow-indicator-based).
	FilterRotation FilterKind = "gesetzt"
)

// Filter is a named structural predicate narrowing which roster entries
// are in scope for a display variant. Stateless, defined once at
// process start.
type Filter struct {
	Kind      FilterKind
	Selector  string
	condition func(*goquery.Selection) bool
}

// NoFilter passes every entry.
var NoFilter = Filter{Kind: FilterNone}

// StartingElevenFilter passes entries whose nearest formation block is
// not hidden by an inline display style.
func StartingElevenFilter() Filter {
	return Filter{
		Kind:     FilterStartingEleven,
		Selector: ".formation_part",
		condition: func(ancestor *goquery.Selection) bool {
			return !htmlutil.InlineStyleHidden(ancestor)
		},
	}
}

// RotationFilter passes entries whose nearest player block does not
// carry a next-substitute marker.
func RotationFilter() Filter {
	return Filter{
		Kind:     FilterRotation,
		Selector: ".player_block",
		condition: func(ancestor *goquery.Selection) bool {
			return ancestor.Find(".next-substitute").Length() == 0
		},
	}
}

// FilterByKind maps a kind tag to its filter. Unknown kinds (and "none")
// resolve to NoFilter.
func FilterByKind(kind FilterKind) Filter {
	switch kind {
	case FilterStartingEleven:
		return StartingElevenFilter()
	case FilterRotation:
		return RotationFilter()
	default:
		return NoFilter
	}
}

// Matches evaluates the filter against a roster entry. Absence of the
// structural context is not disqualifying: when no ancestor-or-self
// matches the selector the entry passes.
func (f Filter) Matches(entry *goquery.Selection) bool {
	if f.Kind == FilterNone || f.condition == nil {
		return true
	}
	ancestor := entry.Closest(f.Selector)
	if ancestor.Length() == 0 {
		return true
	}
	return f.condition(ancestor)
}
