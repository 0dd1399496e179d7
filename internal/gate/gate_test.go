package gate

import (
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRequiredScope_GlobalIntents(t *testing.T) {
	globals := []domain.Intent{
		domain.IntentTotalAlumniCount,
		domain.IntentOverallEngagementRate,
		domain.IntentActiveEmployersCount,
		domain.IntentPredictiveMatches,
		domain.IntentDashboardAnalytics,
		domain.IntentGlobalMetrics,
	}
	for _, it := range globals {
		assert.Equal(t, domain.ScopeGlobal, RequiredScope(it), "intent %s", it)
	}
}

func TestRequiredScope_UnknownIntentIsNone(t *testing.T) {
	assert.Equal(t, domain.ScopeNone, RequiredScope(domain.Intent("bogus")))
}

func TestIsAllowed_GlobalIsAdminOnly(t *testing.T) {
	assert.True(t, IsAllowed(domain.ScopeGlobal, domain.RoleAdmin))
	assert.False(t, IsAllowed(domain.ScopeGlobal, domain.RoleAlumni))
	assert.False(t, IsAllowed(domain.ScopeGlobal, domain.RoleEmployer))
	assert.False(t, IsAllowed(domain.ScopeGlobal, domain.RoleAnonymous))
}

func TestIsAllowed_SelfAndFunctionalNeedAuth(t *testing.T) {
	for _, scope := range []domain.VisibilityScope{domain.ScopeSelf, domain.ScopeFunctional} {
		assert.True(t, IsAllowed(scope, domain.RoleAdmin), "scope %s", scope)
		assert.True(t, IsAllowed(scope, domain.RoleAlumni), "scope %s", scope)
		assert.True(t, IsAllowed(scope, domain.RoleEmployer), "scope %s", scope)
		assert.False(t, IsAllowed(scope, domain.RoleAnonymous), "scope %s", scope)
	}
}

func TestRestrictedMessage_DistinctPerRole(t *testing.T) {
	alumni := RestrictedMessage(domain.RoleAlumni)
	employer := RestrictedMessage(domain.RoleEmployer)

	assert.NotEqual(t, alumni, employer, "each role gets its own refusal wording")
	assert.Contains(t, alumni, "alumni")
	assert.Contains(t, employer, "employer")
}
