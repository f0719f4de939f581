package cli

import (
	"github.com/alexanderramin/timecard/internal/config"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/service"
	"github.com/spf13/cobra"
)

// App holds what the CLI commands need.
type App struct {
	TimeCard service.TimeCard
	Config   config.Config

	// IsInteractive reports whether stdin is a terminal. When nil the CLI
	// assumes it is not.
	IsInteractive func() bool

	// PickFormat asks the user for a copy format. Defaults to a huh select.
	PickFormat func() (domain.CopyFormat, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timecard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timecard",
		Short:         "Track today's working time and copy it as text",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runWatch(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newCopyCmd(app),
		newPurgeCmd(app),
		newWatchCmd(app),
	)

	return root
}
