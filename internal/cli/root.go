package cli

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/spf13/cobra"
)

// App holds what the commands share. Records is nil when the history feed is disabled.
type App struct {
	Logger  *slog.Logger
	Config  *config.Config
	Records repository.RecordRepository
}

// NewRootCmd creates the root command
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gomoku",
		Short: "Play Gomoku against the heuristic AI",
		Long: `gomoku plays five-in-a-row on an odd-sized board against a line-scoring AI.

Moves are exported to Redis when the history feed is enabled, where the
history command and the HTTP read API can show them.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPlayCmd(app))
	rootCmd.AddCommand(newHistoryCmd(app))
	rootCmd.AddCommand(newServeCmd(app))

	return rootCmd
}

// Execute runs the root command with args until it returns or ctx is canceled.
func Execute(ctx context.Context, app *App, args []string) error {
	rootCmd := NewRootCmd(app)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}
