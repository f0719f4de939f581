package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a work session now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisories, err := app.TimeCard.StartWork(cmd.Context())
			if errors.Is(err, domain.ErrInvalidTransition) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning("Already working. Nothing changed."))
				return nil
			}
			if err != nil {
				return fmt.Errorf("starting work: %w", err)
			}
			printAdvisories(cmd, advisories)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStarted(app.TimeCard.Now()))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "stop",
		Aliases: []string{"end"},
		Short:   "End the running work session now",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisories, err := app.TimeCard.EndWork(cmd.Context())
			if errors.Is(err, domain.ErrInvalidTransition) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning("Not working. Nothing changed."))
				return nil
			}
			if err != nil {
				return fmt.Errorf("ending work: %w", err)
			}
			printAdvisories(cmd, advisories)

			state := app.TimeCard.State()
			if last := state.LastRecord(); last != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEnded(*last, app.TimeCard.Now()))
			}
			return nil
		},
	}
}

func printAdvisories(cmd *cobra.Command, advisories []domain.Advisory) {
	for _, a := range advisories {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.FormatAdvisory(a))
	}
}
