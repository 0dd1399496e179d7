package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/devakitechdata/nexus-analytics/internal/assistant"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// pickIdentity prompts for a role and user key when the shell starts without
// NEXUS_ROLE in the environment.
func pickIdentity() (assistant.Identity, error) {
	var roleStr string
	var userStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sign in as").
				Options(
					huh.NewOption("Administrator", string(domain.RoleAdmin)),
					huh.NewOption("Alumni", string(domain.RoleAlumni)),
					huh.NewOption("Employer", string(domain.RoleEmployer)),
				).
				Value(&roleStr),
			huh.NewInput().
				Title("User key").
				Placeholder("numeric user id").
				Validate(func(s string) error {
					if _, err := strconv.ParseInt(s, 10, 64); err != nil {
						return fmt.Errorf("must be a number")
					}
					return nil
				}).
				Value(&userStr),
		),
	)

	if err := form.Run(); err != nil {
		return assistant.Identity{}, err
	}

	userKey, err := strconv.ParseInt(userStr, 10, 64)
	if err != nil {
		return assistant.Identity{}, fmt.Errorf("parsing user key: %w", err)
	}
	return assistant.Identity{UserKey: userKey, Role: domain.Role(roleStr)}, nil
}
