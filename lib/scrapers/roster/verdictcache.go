package roster

import (
	"sync"
	"time"
)

const DefaultVerdictLifetime = time.Minute * 10

// VerdictKey identifies one cached verdict. Name must always be the
// canonicalized, normalized spelling so that two spellings of the same
// athlete collide on the same slot.
type VerdictKey struct {
	URL    string
	Name   string
	Filter FilterKind
}

type verdictEntry struct {
	verdict    Verdict
	computedAt time.Time
}

// VerdictCache is a time-boxed in-memory store of availability verdicts.
// Writes are atomic and idempotent (last writer wins), interleaved
// duplicate populations of the same URL are wasteful but not incorrect.
type VerdictCache struct {
	mu       sync.RWMutex
	lifetime time.Duration
	verdicts map[VerdictKey]verdictEntry
}

func NewVerdictCache(lifetime time.Duration) *VerdictCache {
	if lifetime <= 0 {
		lifetime = DefaultVerdictLifetime
	}
	return &VerdictCache{
		lifetime: lifetime,
		verdicts: map[VerdictKey]verdictEntry{},
	}
}

// Get returns the cached verdict for key. An expired entry is still
// returned when allowStale is set, an expired-but-present verdict is
// strictly preferred over a synchronous re-parse on the hot path.
func (c *VerdictCache) Get(key VerdictKey, allowStale bool) (Verdict, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.verdicts[key]
	if !ok {
		return Verdict{}, false
	}
	if time.Since(entry.computedAt) >= c.lifetime && !allowStale {
		return Verdict{}, false
	}
	return entry.verdict, true
}

func (c *VerdictCache) Put(key VerdictKey, verdict Verdict, computedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.verdicts[key] = verdictEntry{
		verdict:    verdict,
		computedAt: computedAt,
	}
}

func (c *VerdictCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.verdicts)
}

// Keys returns a snapshot of all cache keys, for introspection.
func (c *VerdictCache) Keys() []VerdictKey {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]VerdictKey, 0, len(c.verdicts))
	for key := range c.verdicts {
		keys = append(keys, key)
	}
	return keys
}
