package commands

import (
	"encoding/json"
	"fmt"
	"lineupwatch-backend/lib/scrapers/roster"

	"github.com/spf13/cobra"
)

var checkFilter string

var checkCmd = &cobra.Command{
	Use:   "check <team-id> <player-name>",
	Short: "Fetch and classify the availability of a single player.",
	Args:  cobra.ExactArgs(2),
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
		name := args[1]

		verdict, err := service.FetchAndClassify(ctx, url, name, roster.FilterKind(checkFilter))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if verdict.Reason == roster.ReasonNotInSquad {
			suggestion, score, err := service.SuggestSpelling(ctx, url, name)
			if err == nil && suggestion != "" && score >= 0.8 {
				fmt.Printf("did you mean %q?\n", suggestion)
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(
		&checkFilter,
		"filter",
		string(roster.FilterNone),
		`Filter variant to apply: "none", "startelf" or "gesetzt".`,
	)
	rootCmd.AddCommand(checkCmd)
}
