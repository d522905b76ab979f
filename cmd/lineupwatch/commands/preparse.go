package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var preparseFile string

var preparseCmd = &cobra.Command{
	Use:   "preparse <team-id>",
	Short: "Populate the verdict cache for an entire roster in one pass.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}
		url, err := resolveTeam(service, args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if preparseFile != "" {
			html, err := os.ReadFile(preparseFile)
			if err != nil {
				return err
			}
			count := service.PreparseRoster(ctx, url, string(html), service.Filters())
			fmt.Printf("wrote %d verdict entries from %s\n", count, preparseFile)
			return nil
		}

		count, err := service.RefreshRoster(ctx, url)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d verdict entries\n", count)
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh <team-id>",
	Short: "Fetch the roster page and repopulate its verdict cache entries.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}
		url, err := resolveTeam(service, args[0])
		if err != nil {
			return err
		}
		count, err := service.RefreshRoster(cmd.Context(), url)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d verdict entries\n", count)
		return nil
	},
}

func init() {
	preparseCmd.Flags().StringVar(
		&preparseFile,
		"file",
		"",
		"Parse a local HTML snapshot instead of fetching the live page.",
	)
	rootCmd.AddCommand(preparseCmd)
	rootCmd.AddCommand(refreshCmd)
}
