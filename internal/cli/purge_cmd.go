package cli

import (
	"fmt"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPurgeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete stored time cards of previous days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.TimeCard.Purge(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Removed %d stored day(s)", n)))
			return nil
		},
	}
}
