package commands

import (
	"fmt"
	"strings"
	"lineupwatch-backend/services/availability"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var cacheRefreshTeam string

func cacheReport(service availability.Service) string {
	var out strings.Builder
	fmt.Fprintf(
		&out,
		"pages: %d, verdicts: %d\n",
		service.PageCacheSize(),
		service.VerdictCacheSize(),
	)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"cached page url"})
	for _, key := range service.PageCacheKeys() {
		t.AppendRow(table.Row{key})
	}
	out.WriteString(t.Render())
	return out.String()
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show cache sizes and cached page keys.",
	Long: `Show cache sizes and cached page keys.

Caches are in-memory and live only as long as one process, so a bare
"cache" invocation always starts empty. Pass --refresh to fetch and
preparse a team's roster in-process before printing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		if cacheRefreshTeam != "" {
			url, err := resolveTeam(service, cacheRefreshTeam)
			if err != nil {
				return err
			}
			count, err := service.RefreshRoster(cmd.Context(), url)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d verdict entries\n", count)
		}

		fmt.Println(cacheReport(service))
		return nil
	},
}

func init() {
	cacheCmd.Flags().StringVar(
		&cacheRefreshTeam,
		"refresh",
		"",
		"Team id to fetch and preparse before printing cache state.",
	)
	rootCmd.AddCommand(cacheCmd)
}
