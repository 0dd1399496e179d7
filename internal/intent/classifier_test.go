package intent

import (
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_GlobalAnalytics(t *testing.T) {
	cases := []struct {
		text string
		want domain.Intent
	}{
		{"How many alumni do we have?", domain.IntentTotalAlumniCount},
		{"total alumni count please", domain.IntentTotalAlumniCount},
		{"how many engaged alumni are there", domain.IntentEngagedAlumniCount},
		{"what is our overall engagement rate", domain.IntentOverallEngagementRate},
		{"average touchpoints per alum", domain.IntentAverageTouchpoints},
		{"show me the top programs", domain.IntentTopPrograms},
		{"engagement by cohort breakdown", domain.IntentTopCohorts},
		{"top cities by engagement", domain.IntentTopLocations},
		{"engagement by type", domain.IntentEngagementByType},
		{"monthly engagement trend", domain.IntentMonthlyTrend},
		{"show the hiring funnel", domain.IntentHiringFunnel},
		{"employment verification status", domain.IntentEmploymentVerification},
		{"rank employer composite scores", domain.IntentEmployerScores},
		{"top employers this year", domain.IntentTopEmployers},
		{"recommend employer matches for alumni", domain.IntentPredictiveMatches},
		{"feedback summary please", domain.IntentFeedbackSummary},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.text), "text: %q", tc.text)
	}
}

func TestClassify_EmployerCountPrecedence(t *testing.T) {
	// This must hit the specific count rule, not the generic metrics
	// catch-all, because the count rule is declared earlier.
	got := Classify("How many employers do we have?")
	assert.Equal(t, domain.IntentActiveEmployersCount, got)
}

func TestClassify_SelfScopeWinsOverAggregate(t *testing.T) {
	// Personal rules are declared before aggregate rules, so a message
	// mixing "my" with an aggregate noun resolves to self scope.
	assert.Equal(t, domain.IntentMyEngagement, Classify("show my engagement compared to total alumni"))
	assert.Equal(t, domain.IntentMyProfile, Classify("show my profile"))
	assert.Equal(t, domain.IntentMyColleagues, Classify("who are my colleagues"))
	assert.Equal(t, domain.IntentMySubmissions, Classify("list my submissions"))
	assert.Equal(t, domain.IntentMyCompanyAlumni, Classify("which alumni work at my company"))
	assert.Equal(t, domain.IntentMyEventParticipation, Classify("what events have I attended? show my event participation"))
}

func TestClassify_FunctionalVerbsOutrankLookups(t *testing.T) {
	assert.Equal(t, domain.IntentUpdateProfile, Classify("update my profile"))
	assert.Equal(t, domain.IntentApplyEvent, Classify("apply for the mentorship event"))
	assert.Equal(t, domain.IntentSubmitEngagement, Classify("log an engagement"))
	assert.Equal(t, domain.IntentShareStory, Classify("share a success story"))
	assert.Equal(t, domain.IntentSubmitFeedback, Classify("leave feedback for a candidate"))
	assert.Equal(t, domain.IntentRequestParticipation, Classify("request participation in the career fair"))
	assert.Equal(t, domain.IntentNavigate, Classify("take me to the analytics page"))
}

func TestClassify_CatchAllsAreLast(t *testing.T) {
	assert.Equal(t, domain.IntentDashboardAnalytics, Classify("show the dashboard"))
	assert.Equal(t, domain.IntentGlobalMetrics, Classify("show me some stats"))
}

func TestClassify_FallbackHeuristic(t *testing.T) {
	// No rule matches, but entity + data vocabulary implies an analytics
	// question.
	assert.Equal(t, domain.IntentGlobalMetrics, Classify("got any alumni data handy"))
	assert.Equal(t, domain.IntentGeneral, Classify("what's the weather like"))
	assert.Equal(t, domain.IntentGeneral, Classify("tell me about alumni"))
}

func TestClassify_Conversational(t *testing.T) {
	assert.Equal(t, domain.IntentGreeting, Classify("hi there"))
	assert.Equal(t, domain.IntentGreeting, Classify("Good morning!"))
	assert.Equal(t, domain.IntentHelp, Classify("what can you do"))
}

func TestClassify_Deterministic(t *testing.T) {
	const text = "how many engaged alumni do we have"
	first := Classify(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Classify(text))
	}
}
