package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newImportCmd loads a directory of warehouse CSV exports into the portal
// database, replacing any previously imported data.
func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import [dir]",
		Short: "Import warehouse CSV exports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Importer == nil {
				return fmt.Errorf("import is not available without a database")
			}
			summary, err := app.Importer.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %d students, %d employers, %d events, %d dates, %d engagements, %d employment records, %d feedback rows.\n",
				summary.Students, summary.Employers, summary.Events, summary.Dates,
				summary.Engagements, summary.Employment, summary.Feedback)
			return nil
		},
	}
}
