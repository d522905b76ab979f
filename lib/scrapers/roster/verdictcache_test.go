package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestVerdictCacheFresh(t *testing.T) {
	cache := NewVerdictCache(time.Minute)
	key := VerdictKey{URL: "https://a.test", Name: "th. müller", Filter: FilterNone}

	_, ok := cache.Get(key, false)
	require.False(t, ok)
	_, ok = cache.Get(key, true)
	require.False(t, ok)

	now := time.Now()
	cache.Put(key, Available(now), now)

	verdict, ok := cache.Get(key, false)
	require.True(t, ok)
	require.True(t, verdict.IsLikelyToPlay)
	require.Equal(t, 1, cache.Size())
}

func TestVerdictCacheStaleRead(t *testing.T) {
	cache := NewVerdictCache(time.Millisecond * 50)
	key := VerdictKey{URL: "https://a.test", Name: "kimmich", Filter: FilterStartingEleven}

	now := time.Now()
	cache.Put(key, Unavailable(ReasonInjuredOrSuspended, now), now)
	time.Sleep(time.Millisecond * 80)

	_, ok := cache.Get(key, false)
	require.False(t, ok)

	verdict, ok := cache.Get(key, true)
	require.True(t, ok)
	require.Equal(t, ReasonInjuredOrSuspended, verdict.Reason)
}

func TestVerdictCacheLastWriterWins(t *testing.T) {
	cache := NewVerdictCache(time.Minute)
	key := VerdictKey{URL: "https://a.test", Name: "neuer", Filter: FilterNone}

	first := time.Now()
	cache.Put(key, Unavailable(ReasonInjuredOrSuspended, first), first)

	second := first.Add(time.Second)
	cache.Put(key, Available(second), second)

	verdict, ok := cache.Get(key, false)
	require.True(t, ok)
	require.True(t, verdict.IsLikelyToPlay)
	require.Equal(t, 1, cache.Size())
}
