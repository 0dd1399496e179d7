package assistant

import (
	"context"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/devakitechdata/nexus-analytics/internal/gate"
)

// alumniAnswer handles the alumni family. Global intents never reach here
// (the gate denies them first). The employer-facing self intents are denied
// by default for alumni until the product decides otherwise.
func (r *Router) alumniAnswer(ctx context.Context, id Identity, classified domain.Intent, text string) (Reply, error) {
	switch classified {
	case domain.IntentMyCompanyAlumni, domain.IntentMyEventParticipation:
		return Reply{Text: gate.RestrictedMessage(id.Role)}, nil
	default:
		return r.sharedAnswer(ctx, id, classified, text)
	}
}
