package commands

import (
	"context"
	"fmt"
	"os"
	"lineupwatch-backend/lib/configutil"
	"lineupwatch-backend/services/availability"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lineupwatch",
	Short: "lineupwatch checks whether an athlete is likely to play by scraping team roster pages.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"availability.json5",
		"Path to the availability service config.",
	)
}

func newService() (availability.Service, error) {
	cfg, err := configutil.ReadConfig[availability.Config](configPath)
	if err != nil && !os.IsNotExist(err) {
		return availability.Service{}, fmt.Errorf("read config %s: %w", configPath, err)
	}
	return availability.NewService(cfg), nil
}

func resolveTeam(service availability.Service, teamID string) (string, error) {
	url, ok := service.ResolveRosterURL(teamID)
	if !ok {
		return "", fmt.Errorf("unknown team id %q, add it to the teams table in %s", teamID, configPath)
	}
	return url, nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
