package availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"lineupwatch-backend/lib/telemetry"
	"lineupwatch-backend/lib/scrapers/roster"

	"github.com/stretchr/testify/require"
)

const rosterPage = `<!DOCTYPE html>
<html><body>
<div id="stadium">
	<div class="formation_part">
		<div class="player_block"><div class="player_name">Th. Müller</div></div>
		<div class="player_block"><div class="player_name">Kimmich</div></div>
	</div>
	<section>Verletzt: <div class="player_name">Neuer</div></section>
</div>
</body></html>`

func setup(t testing.TB) (Service, func()) {
	cleanup := telemetry.SetupForTesting(t, "services/availability")

	service := NewService(Config{
		Teams: map[string]string{
			"fcb": "https://roster.test/fcb",
		},
		Aliases: map[string]string{
			"Thomas Mueller": "Th. Müller",
		},
	})
	return service, cleanup
}

func TestResolveRosterURL(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	url, ok := service.ResolveRosterURL("fcb")
	require.True(t, ok)
	require.Equal(t, "https://roster.test/fcb", url)

	url, ok = service.ResolveRosterURL("  FCB ")
	require.True(t, ok)
	require.Equal(t, "https://roster.test/fcb", url)

	_, ok = service.ResolveRosterURL("unknown")
	require.False(t, ok)
}

func TestFetchAndClassifyFallThrough(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()
	url := "https://roster.test/fcb"
	// a fresh page cache entry means the fetch never leaves the process
	service.pages.Put(url, rosterPage)

	verdict, err := service.FetchAndClassify(ctx, url, "Thomas Mueller", roster.FilterNone)
	require.NoError(t, err)
	require.True(t, verdict.IsLikelyToPlay)
	require.Equal(t, 1, service.VerdictCacheSize())

	// the aliased spelling collides on the same cache slot
	_, err = service.FetchAndClassify(ctx, url, "Th. Müller", roster.FilterNone)
	require.NoError(t, err)
	require.Equal(t, 1, service.VerdictCacheSize())

	verdict, err = service.FetchAndClassify(ctx, url, "Neuer", roster.FilterNone)
	require.NoError(t, err)
	require.False(t, verdict.IsLikelyToPlay)
	require.Equal(t, roster.ReasonInjuredOrSuspended, verdict.Reason)

	// a verdict cache hit must not re-parse: poison the page cache and
	// expect the cached verdict regardless
	service.pages.Put(url, "<html></html>")
	verdict, err = service.FetchAndClassify(ctx, url, "Thomas Mueller", roster.FilterNone)
	require.NoError(t, err)
	require.True(t, verdict.IsLikelyToPlay)
}

func TestFetchAndClassifyFetchFailure(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := service.FetchAndClassify(context.Background(), server.URL, "Kimmich", roster.FilterNone)
	require.ErrorIs(t, err, roster.ErrPageUnavailable)
	require.Equal(t, 0, service.VerdictCacheSize())
}

func TestFetchAndClassifyEmptyBody(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	_, err := service.FetchAndClassify(context.Background(), server.URL, "Kimmich", roster.FilterNone)
	require.ErrorIs(t, err, roster.ErrPageUnavailable)
}

func TestPreparseAndRefresh(t *testing.T) {
	service, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterPage))
	}))
	defer server.Close()
	url := server.URL

	count := service.PreparseRoster(ctx, url, rosterPage, service.Filters())
	// Müller and Kimmich under none + startelf + gesetzt, Neuer likewise
	require.Equal(t, 9, count)
	require.Equal(t, 9, service.VerdictCacheSize())

	// preparsed verdicts serve lookups without another parse
	verdict, err := service.FetchAndClassify(ctx, url, "Thomas Mueller", roster.FilterStartingEleven)
	require.NoError(t, err)
	require.True(t, verdict.IsLikelyToPlay)
	require.Equal(t, 9, service.VerdictCacheSize())

	count, err = service.RefreshRoster(ctx, url)
	require.NoError(t, err)
	require.Equal(t, 9, count)
	require.Equal(t, 1, service.PageCacheSize())
	require.Equal(t, []string{url}, service.PageCacheKeys())
}
