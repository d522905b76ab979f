package roster

import (
	"lineupwatch-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

// NameMapper resolves source-system athlete names to the spelling used
// by the scraped roster pages. It must be applied on both the write path
// (cache keys) and the read path (lookups, in-markup matching) so that
// aliased athletes land on the same cache slot regardless of spelling.
type NameMapper struct {
	aliases map[string]string
}

func NewNameMapper(aliases map[string]string) NameMapper {
	normalized := make(map[string]string, len(aliases))
	for source, target := range aliases {
		normalized[textutil.Normalize(source)] = target
	}
	return NameMapper{aliases: normalized}
}

// Canonicalize returns the mapped roster-page spelling for a name, or
// the input unchanged when no alias is known.
func (m NameMapper) Canonicalize(name string) string {
	if target, ok := m.aliases[textutil.Normalize(name)]; ok {
		return target
	}
	return name
}

// SameAthlete reports whether two spellings resolve to the same athlete.
func (m NameMapper) SameAthlete(a, b string) bool {
	return textutil.Normalize(m.Canonicalize(a)) == textutil.Normalize(m.Canonicalize(b))
}

// Closest returns the candidate most similar to name, with its
// similarity score. Used to suggest spellings after a not-in-squad
// verdict, never for matching itself.
func (m NameMapper) Closest(name string, candidates []string) (string, float64) {
	target := textutil.Normalize(m.Canonicalize(name))

	var best string
	var bestScore float64
	for _, candidate := range candidates {
		score := matchr.JaroWinkler(target, textutil.Normalize(candidate), false)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore
}
