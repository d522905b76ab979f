package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"lineupwatch-backend/services/availability"

	"github.com/stretchr/testify/require"
)

const rosterPage = `<!DOCTYPE html>
<html><body>
<div id="stadium">
	<div class="player_name">Kimmich</div>
	<section>Verletzt: <div class="player_name">Neuer</div></section>
</div>
</body></html>`

func TestCacheReportAfterRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterPage))
	}))
	defer server.Close()

	service := availability.NewService(availability.Config{
		Teams: map[string]string{"fcb": server.URL},
	})

	report := cacheReport(service)
	require.Contains(t, report, "pages: 0, verdicts: 0")

	count, err := service.RefreshRoster(context.Background(), server.URL)
	require.NoError(t, err)
	require.Greater(t, count, 0)

	report = cacheReport(service)
	require.Contains(t, report, fmt.Sprintf("pages: 1, verdicts: %d", count))
	require.Contains(t, report, server.URL)
}
