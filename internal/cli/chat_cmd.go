package cli

import "github.com/spf13/cobra"

// newChatCmd starts the interactive shell explicitly, regardless of tty
// detection.
func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive chat shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChatShell(app)
		},
	}
}
