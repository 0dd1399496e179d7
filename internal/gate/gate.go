// Package gate enforces the role-based visibility policy. The gate runs
// strictly before any dataset load or metric computation: a denied request
// must never touch a collaborator.
package gate

import "github.com/devakitechdata/nexus-analytics/internal/domain"

// scopeByIntent is the static intent -> required-scope table.
var scopeByIntent = map[domain.Intent]domain.VisibilityScope{
	domain.IntentTotalAlumniCount:       domain.ScopeGlobal,
	domain.IntentEngagedAlumniCount:     domain.ScopeGlobal,
	domain.IntentOverallEngagementRate:  domain.ScopeGlobal,
	domain.IntentAverageTouchpoints:     domain.ScopeGlobal,
	domain.IntentTopPrograms:            domain.ScopeGlobal,
	domain.IntentTopCohorts:             domain.ScopeGlobal,
	domain.IntentTopLocations:           domain.ScopeGlobal,
	domain.IntentEngagementByType:       domain.ScopeGlobal,
	domain.IntentMonthlyTrend:           domain.ScopeGlobal,
	domain.IntentHiringFunnel:           domain.ScopeGlobal,
	domain.IntentActiveEmployersCount:   domain.ScopeGlobal,
	domain.IntentTopEmployers:           domain.ScopeGlobal,
	domain.IntentEmployerScores:         domain.ScopeGlobal,
	domain.IntentPredictiveMatches:      domain.ScopeGlobal,
	domain.IntentEmploymentVerification: domain.ScopeGlobal,
	domain.IntentFeedbackSummary:        domain.ScopeGlobal,
	domain.IntentDashboardAnalytics:     domain.ScopeGlobal,
	domain.IntentGlobalMetrics:          domain.ScopeGlobal,

	domain.IntentMyProfile:            domain.ScopeSelf,
	domain.IntentMyEngagement:         domain.ScopeSelf,
	domain.IntentMyColleagues:         domain.ScopeSelf,
	domain.IntentMySubmissions:        domain.ScopeSelf,
	domain.IntentMyCompanyAlumni:      domain.ScopeSelf,
	domain.IntentMyEventParticipation: domain.ScopeSelf,

	domain.IntentUpcomingEvents:       domain.ScopeFunctional,
	domain.IntentApplyEvent:           domain.ScopeFunctional,
	domain.IntentSubmitEngagement:     domain.ScopeFunctional,
	domain.IntentShareStory:           domain.ScopeFunctional,
	domain.IntentUpdateProfile:        domain.ScopeFunctional,
	domain.IntentSubmitFeedback:       domain.ScopeFunctional,
	domain.IntentRequestParticipation: domain.ScopeFunctional,
	domain.IntentNavigate:             domain.ScopeFunctional,

	domain.IntentHelp:     domain.ScopeNone,
	domain.IntentGreeting: domain.ScopeNone,
	domain.IntentGeneral:  domain.ScopeNone,
}

// RequiredScope returns the visibility scope an intent needs. Unknown intents
// map to ScopeNone so they can still reach the conversational fallback.
func RequiredScope(intent domain.Intent) domain.VisibilityScope {
	if scope, ok := scopeByIntent[intent]; ok {
		return scope
	}
	return domain.ScopeNone
}

// IsAllowed reports whether a role may execute a request of the given scope.
func IsAllowed(scope domain.VisibilityScope, role domain.Role) bool {
	switch scope {
	case domain.ScopeGlobal:
		return role == domain.RoleAdmin
	case domain.ScopeSelf, domain.ScopeFunctional:
		return role.Authenticated()
	case domain.ScopeNone:
		return true
	}
	return false
}

// RestrictedMessage is the user-visible refusal for a denied request. The
// wording is role-specific so each audience learns what it can ask instead.
func RestrictedMessage(role domain.Role) string {
	switch role {
	case domain.RoleAlumni:
		return "That's restricted to administrators. As an alumni member you can ask about your profile, your engagements, your colleagues, your submissions, or upcoming events."
	case domain.RoleEmployer:
		return "That's restricted to administrators. As an employer you can ask about your company's alumni, your event participation, your submissions, or request to join an event."
	case domain.RoleAdmin:
		return "That request isn't available to your account."
	default:
		return "Please log in to use the assistant."
	}
}
