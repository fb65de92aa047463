package cli

import (
	"github.com/alexanderramin/mountainflow/internal/service"
	"github.com/alexanderramin/mountainflow/internal/store"
	"github.com/spf13/cobra"
)

// App holds what CLI commands and the TUI operate on.
type App struct {
	Shell *service.Shell
	Store *store.Store

	// IsInteractive reports whether stdin is a terminal. When nil the
	// bare command prints the text summary instead of starting the TUI.
	IsInteractive func() bool

	// RunTUI starts the interactive program. Tests replace it.
	RunTUI func(app *App) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "mountainflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mountainflow",
		Short:         "Habits, movement & mindfulness tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return startTUI(app)
			}
			return runToday(cmd, app)
		},
	}

	root.AddCommand(
		newTodayCmd(app),
		newMorningCmd(app),
		newDetoxCmd(app),
		newBreakCmd(app),
		newAdventureCmd(app),
		newTrackingCmd(app),
		newResetCmd(app),
		newTUICmd(app),
	)

	return root
}
