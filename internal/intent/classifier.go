// Package intent classifies free-text portal messages into symbolic intents.
//
// Classification is pure pattern matching: an ordered rule table is evaluated
// top to bottom and the first rule whose patterns all match wins. The table
// order is a correctness invariant, not a convenience: self-scoped and
// functional rules are declared before the aggregate analytics rules so that
// "my profile" never resolves to a global intent, and the catch-all
// dashboard/metrics rules sit at the very bottom so specific intents always
// win. Reordering entries changes observable behavior.
package intent

import (
	"regexp"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// rule pairs an intent with the patterns that must all match (AND semantics).
type rule struct {
	intent   domain.Intent
	patterns []*regexp.Regexp
}

func newRule(intent domain.Intent, exprs ...string) rule {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return rule{intent: intent, patterns: compiled}
}

// rules is the classification table, most specific first. Evaluation order is
// load-bearing; see the package comment.
var rules = []rule{
	// Greetings are anchored and cheap; they go first so "hi" alone never
	// falls through to the heuristic.
	newRule(domain.IntentGreeting, `^\s*(hi|hello|hey|good (morning|afternoon|evening))\b`),

	// Functional verbs outrank self-scope nouns: "update my profile" is an
	// action, not a lookup.
	newRule(domain.IntentUpdateProfile, `\b(update|edit|change)\b`, `\bprofile\b`),
	newRule(domain.IntentApplyEvent, `\b(apply|register|sign ?up|rsvp)\b`, `\bevents?\b`),
	newRule(domain.IntentRequestParticipation, `\b(request|host|sponsor)\b`, `\b(participation|participate|events?)\b`),
	newRule(domain.IntentSubmitEngagement, `\b(log|record|submit|report)\b`, `\bengagements?\b`),
	newRule(domain.IntentShareStory, `\b(share|submit|post)\b`, `\b(story|stories|testimonial)\b`),
	newRule(domain.IntentSubmitFeedback, `\b(give|leave|submit|provide)\b`, `\bfeedback\b`),
	newRule(domain.IntentNavigate, `\b(go to|take me|open|navigate)\b`, `\b(page|dashboard|screen|section|portal)\b`),

	// Self-scope lookups. These must precede every aggregate rule so that a
	// message mentioning both "my" and an aggregate noun resolves to self.
	newRule(domain.IntentMyEventParticipation, `\bmy\b`, `\bevents?\b`, `\b(participation|attended|attendance)\b`),
	newRule(domain.IntentMyCompanyAlumni, `\b(my|our)\b`, `\b(company|organization|firm)\b`, `\b(alumni|graduates|hires)\b`),
	newRule(domain.IntentMyColleagues, `\bmy\b`, `\b(colleagues?|coworkers?|peers)\b`),
	newRule(domain.IntentMySubmissions, `\bmy\b`, `\b(submissions?|applications?|stories)\b`),
	newRule(domain.IntentMyEngagement, `\bmy\b`, `\b(engagements?|activity|touchpoints?)\b`),
	newRule(domain.IntentMyProfile, `\bmy\b`, `\b(profile|account|info|information|details)\b`),
	newRule(domain.IntentUpcomingEvents, `\b(upcoming|next|scheduled)\b`, `\bevents?\b`),

	// Help sits between the personal rules and the analytics rules: "help me
	// update my profile" is an action, "what can you do" is help.
	newRule(domain.IntentHelp, `\b(help|what can you do|capabilities)\b`),

	// Aggregate analytics, most specific first.
	newRule(domain.IntentOverallEngagementRate, `\b(overall|total|global|aggregate)\b`, `\bengagement\b`, `\brate\b`),
	newRule(domain.IntentEngagedAlumniCount, `\bengaged\b`, `\b(alumni|graduates)\b`),
	newRule(domain.IntentAverageTouchpoints, `\b(average|avg|mean)\b`, `\b(touchpoints?|interactions?|engagements?)\b`),
	newRule(domain.IntentTotalAlumniCount, `\b(how many|total|number of|count of)\b`, `\b(alumni|graduates)\b`),
	newRule(domain.IntentHiringFunnel, `\b(hiring|recruitment|placement)\b`, `\b(funnel|pipeline|conversion)\b`),
	newRule(domain.IntentEmploymentVerification, `\b(employment|jobs?)\b`, `\b(verification|verified|pending)\b`),
	newRule(domain.IntentPredictiveMatches, `\b(match(es|ing)?|recommendations?|recommend)\b`, `\b(employers?|candidates?|alumni|partners?)\b`),
	newRule(domain.IntentEmployerScores, `\bemployers?\b`, `\b(scores?|scoring|composite)\b`),
	newRule(domain.IntentActiveEmployersCount, `\b(how many|total|number of|count of|active)\b`, `\bemployers?\b`),
	newRule(domain.IntentTopEmployers, `\b(top|best|most (active|engaged)|ranking)\b`, `\bemployers?\b`),
	newRule(domain.IntentTopPrograms, `\b(top|best|most engaged|by|ranking)\b`, `\bprograms?\b`),
	newRule(domain.IntentTopCohorts, `\b(top|best|most|by|breakdown)\b`, `\b(cohorts?|graduation years?|class of)\b`),
	newRule(domain.IntentTopLocations, `\b(top|best|most|by|breakdown)\b`, `\b(locations?|city|cities|states?|regions?)\b`),
	newRule(domain.IntentEngagementByType, `\bengagements?\b`, `\b(by type|types?|categories|category|breakdown)\b`),
	newRule(domain.IntentMonthlyTrend, `\b(monthly|by month|over time|trend)\b`, `\b(trend|engagements?|activity|events?)\b`),
	newRule(domain.IntentFeedbackSummary, `\bfeedback\b`, `\b(summary|scores?|average|ratings?)\b`),

	// Generic catch-alls, deliberately last.
	newRule(domain.IntentDashboardAnalytics, `\b(dashboard|analytics|overview|kpis?)\b`),
	newRule(domain.IntentGlobalMetrics, `\b(metrics?|statistics?|stats)\b`),
}

// Fallback heuristic vocabulary: an entity word plus a data word suggests an
// unrecognized analytics question.
var (
	fallbackEntity = regexp.MustCompile(`(?i)\b(alumni|employers?|events?)\b`)
	fallbackData   = regexp.MustCompile(`(?i)\b(metrics?|stats?|data|summary|count)\b`)
)

// Classify maps raw message text to exactly one intent. It is deterministic
// and side-effect free.
func Classify(text string) domain.Intent {
	for _, r := range rules {
		if matchesAll(r.patterns, text) {
			return r.intent
		}
	}
	if fallbackEntity.MatchString(text) && fallbackData.MatchString(text) {
		return domain.IntentGlobalMetrics
	}
	return domain.IntentGeneral
}

func matchesAll(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if !p.MatchString(text) {
			return false
		}
	}
	return true
}
