package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("history feed is disabled, set redis.enabled")

func newHistoryCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "history <match-id>",
		Short: "Print the exported move records of a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Records == nil {
				return errHistoryDisabled
			}

			records, err := app.Records.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			for i, record := range records {
				detail := record.Detail
				fmt.Fprintf(out, "%3d  %s  %-6s %-4s %s\n",
					i,
					time.UnixMilli(record.Timestamp).UTC().Format(time.RFC3339),
					detail.Player,
					detail.Operation,
					detail.Position,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json")

	return cmd
}
