// Package roster turns third-party HTML team-roster pages into
// per-player availability verdicts, with a time-boxed cache in front of
// both the raw pages and the derived verdicts.
package roster

import "time"

// Fixed reason markers. Cache consumers compare against these, so they
// are constants rather than configuration.
const (
	ReasonInjuredOrSuspended = "Verletzung oder Sperre"
	ReasonNotInSquad         = "Nicht im Kader"
)

// DefaultMarkers are the injury/suspension terms looked for in section
// text. Services normally override this list from configuration.
var DefaultMarkers = []string{
	"verletzt",
	"verletzung",
	"gesperrt",
	"sperre",
	"angeschlagen",
	"fraglich",
	"fehlt",
	"fehlen",
}

// Verdict is the availability classification for one athlete on one
// roster page. Immutable once constructed, a refresh always replaces a
// cached verdict wholesale.
type Verdict struct {
	IsLikelyToPlay bool      `json:"isLikelyToPlay"`
	Reason         string    `json:"reason,omitempty"`
	LastChecked    time.Time `json:"lastChecked"`
}

func Available(at time.Time) Verdict {
	return Verdict{IsLikelyToPlay: true, LastChecked: at}
}

func Unavailable(reason string, at time.Time) Verdict {
	return Verdict{IsLikelyToPlay: false, Reason: reason, LastChecked: at}
}
