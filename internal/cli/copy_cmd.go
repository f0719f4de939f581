package cli

import (
	"fmt"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/spf13/cobra"
)

func newCopyCmd(app *App) *cobra.Command {
	var format domain.CopyFormat
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy today's summary to the clipboard",
		Long: `Copy today's records as text.

Formats:
  simple       2025/06/15: 09:00-12:00, 13:00-17:30
  detailed     tab separated table with minutes per record and a total
  spreadsheet  first start, last end and total break, tab separated`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("format") && app.interactive() {
				picked, err := app.pickFormat()
				if err != nil {
					return fmt.Errorf("choosing format: %w", err)
				}
				format = picked
			}

			if printOnly {
				text, err := app.TimeCard.Summary(format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			text, err := app.TimeCard.CopyToClipboard(ctx, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Copied %s summary to the clipboard", format)))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(text))
			return nil
		},
	}

	cmd.Flags().VarP(newCopyFormatValue(domain.FormatSimple, &format), "format", "f", copyFormatUsage())
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the summary instead of copying it")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return copyFormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (a *App) pickFormat() (domain.CopyFormat, error) {
	if a.PickFormat != nil {
		return a.PickFormat()
	}
	return runFormatSelect()
}
