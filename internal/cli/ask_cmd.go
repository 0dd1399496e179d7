package cli

import (
	"fmt"
	"strings"

	"github.com/devakitechdata/nexus-analytics/internal/assistant"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/spf13/cobra"
)

// newAskCmd answers a single question without starting the shell:
//
//	nexus ask --role admin "how many alumni do we have"
func newAskCmd(app *App) *cobra.Command {
	var roleFlag string
	var userFlag int64

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the assistant a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := app.Identity
			if roleFlag != "" {
				if !domain.ValidRoles[roleFlag] {
					return fmt.Errorf("unknown role %q (valid: admin, alumni, employer, anonymous)", roleFlag)
				}
				id.Role = domain.Role(roleFlag)
			}
			if userFlag != 0 {
				id.UserKey = userFlag
			}

			session := assistant.NewSession(app.Router, id)
			reply, err := session.SendMessage(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("sending message: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			if reply.Route != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "(navigate: %s)\n", reply.Route)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&roleFlag, "role", "", "caller role (admin, alumni, employer)")
	cmd.Flags().Int64Var(&userFlag, "user", 0, "caller user key")
	return cmd
}
