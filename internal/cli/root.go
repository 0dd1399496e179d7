package cli

import (
	"github.com/devakitechdata/nexus-analytics/internal/assistant"
	"github.com/devakitechdata/nexus-analytics/internal/importer"
	"github.com/spf13/cobra"
)

// App holds everything the CLI commands need: the wired dispatcher and the
// caller identity resolved from the environment (or the interactive picker).
type App struct {
	Router   *assistant.Router
	Identity assistant.Identity
	Importer *importer.Importer

	// IsInteractive reports whether stdin is a terminal; wired from main.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "nexus" command. Running it bare starts
// the interactive chat shell when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nexus",
		Short: "Conversational analytics assistant for the alumni portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChatShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newImportCmd(app),
	)

	return root
}
