package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/devakitechdata/nexus-analytics/internal/repository"
)

// employerAnswer handles the employer family: the company-scoped self views
// plus everything shared.
func (r *Router) employerAnswer(ctx context.Context, id Identity, classified domain.Intent, text string) (Reply, error) {
	switch classified {
	case domain.IntentMyCompanyAlumni:
		alumni, err := r.profiles.FetchColleagues(ctx, id.UserKey)
		if err != nil {
			return Reply{}, err
		}
		if len(alumni) == 0 {
			return Reply{Text: "No alumni are linked to your company yet."}, nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Alumni at your company (%s)", formatCount(len(alumni)))
		for _, a := range alumni {
			fmt.Fprintf(&b, "\n- %s, %s", a.DisplayName, a.ProgramName)
		}
		return Reply{Text: b.String()}, nil

	case domain.IntentMyEventParticipation:
		return r.submissionsAnswer(ctx, id, repository.KindEventParticipation)

	default:
		return r.sharedAnswer(ctx, id, classified, text)
	}
}
