package cli

import (
	"fmt"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's status and records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.TimeCard.CheckRollover(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(app.TimeCard.State(), app.TimeCard.Now()))
			return nil
		},
	}
}
