package domain

// Role is the authenticated role of the portal user. It is assigned by the
// auth layer before a conversation starts and never changes mid-session.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAlumni    Role = "alumni"
	RoleEmployer  Role = "employer"
	RoleAnonymous Role = "anonymous"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"admin": true, "alumni": true, "employer": true, "anonymous": true,
}

// Authenticated reports whether the role belongs to a logged-in user.
func (r Role) Authenticated() bool {
	return r == RoleAdmin || r == RoleAlumni || r == RoleEmployer
}

// VisibilityScope is the data-visibility tier an intent requires before it
// may execute. Global scope is admin-only; self and functional require any
// authenticated role; none carries no data requirement.
type VisibilityScope string

const (
	ScopeGlobal     VisibilityScope = "global"
	ScopeSelf       VisibilityScope = "self"
	ScopeFunctional VisibilityScope = "functional"
	ScopeNone       VisibilityScope = "none"
)

// Intent is the symbolic classification of one free-text message.
type Intent string

const (
	// Global analytics intents (admin only).
	IntentTotalAlumniCount       Intent = "total_alumni_count"
	IntentEngagedAlumniCount     Intent = "engaged_alumni_count"
	IntentOverallEngagementRate  Intent = "overall_engagement_rate"
	IntentAverageTouchpoints     Intent = "average_touchpoints"
	IntentTopPrograms            Intent = "top_programs"
	IntentTopCohorts             Intent = "top_cohorts"
	IntentTopLocations           Intent = "top_locations"
	IntentEngagementByType       Intent = "engagement_by_type"
	IntentMonthlyTrend           Intent = "monthly_trend"
	IntentHiringFunnel           Intent = "hiring_funnel"
	IntentActiveEmployersCount   Intent = "active_employers_count"
	IntentTopEmployers           Intent = "top_employers"
	IntentEmployerScores         Intent = "employer_scores"
	IntentPredictiveMatches      Intent = "predictive_matches"
	IntentEmploymentVerification Intent = "employment_verification"
	IntentFeedbackSummary        Intent = "feedback_summary"
	IntentDashboardAnalytics     Intent = "dashboard_analytics"
	IntentGlobalMetrics          Intent = "global_metrics"

	// Self-scope intents (the caller's own data).
	IntentMyProfile            Intent = "my_profile"
	IntentMyEngagement         Intent = "my_engagement"
	IntentMyColleagues         Intent = "my_colleagues"
	IntentMySubmissions        Intent = "my_submissions"
	IntentMyCompanyAlumni      Intent = "my_company_alumni"
	IntentMyEventParticipation Intent = "my_event_participation"
	IntentUpcomingEvents       Intent = "upcoming_events"

	// Functional-action intents (forwarded, never computed locally).
	IntentApplyEvent           Intent = "apply_event"
	IntentSubmitEngagement     Intent = "submit_engagement"
	IntentShareStory           Intent = "share_story"
	IntentUpdateProfile        Intent = "update_profile"
	IntentSubmitFeedback       Intent = "submit_feedback"
	IntentRequestParticipation Intent = "request_participation"
	IntentNavigate             Intent = "navigate"

	// Conversational intents with no data requirement.
	IntentHelp     Intent = "help"
	IntentGreeting Intent = "greeting"
	IntentGeneral  Intent = "general"
)

// EmploymentStatus is the verification state of an employment record.
type EmploymentStatus string

const (
	EmploymentVerified EmploymentStatus = "Verified"
	EmploymentPending  EmploymentStatus = "Pending"
)
