package assistant

import (
	"context"
	"fmt"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/devakitechdata/nexus-analytics/internal/metrics"
)

// Ranking sizes used by the admin answers: short lists for the focused
// questions, a longer one for employer rankings.
const (
	topNShort     = 5
	topNEmployers = 10
)

// adminAnswer handles every intent for the administrator family. Global
// analytics aggregate over the memoized dataset; self and functional intents
// share the authenticated-user paths.
func (r *Router) adminAnswer(ctx context.Context, id Identity, classified domain.Intent, text string) (Reply, error) {
	switch classified {
	case domain.IntentTotalAlumniCount:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("We have %s alumni in the network.", formatCount(metrics.TotalAlumni(ds.Students)))}, nil

	case domain.IntentEngagedAlumniCount:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("%s alumni have at least one engagement touchpoint.", formatCount(metrics.EngagedAlumni(ds.Engagements)))}, nil

	case domain.IntentOverallEngagementRate:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		total := metrics.TotalAlumni(ds.Students)
		engaged := metrics.EngagedAlumni(ds.Engagements)
		return Reply{Text: fmt.Sprintf(
			"Overall engagement rate: %d%% (%s of %s alumni engaged).",
			metrics.EngagementRate(engaged, total), formatCount(engaged), formatCount(total))}, nil

	case domain.IntentAverageTouchpoints:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		engaged := metrics.EngagedAlumni(ds.Engagements)
		avg := metrics.AverageTouchpoints(len(ds.Engagements), engaged)
		return Reply{Text: fmt.Sprintf("Engaged alumni average %.1f touchpoints each.", avg)}, nil

	case domain.IntentTopPrograms:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		ranked := metrics.TopProgramsByEngagement(ds.Students, ds.Engagements, topNShort)
		return Reply{Text: formatRanking("Top programs by engaged alumni", ranked, "alumni")}, nil

	case domain.IntentTopCohorts:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		ranked := metrics.TopCohortsByEngagement(ds.Students, ds.Engagements, topNShort)
		return Reply{Text: formatRanking("Top cohorts by engaged alumni", ranked, "alumni")}, nil

	case domain.IntentTopLocations:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		ranked := metrics.TopLocationsByEngagement(ds.Students, ds.Engagements, topNShort)
		return Reply{Text: formatRanking("Top locations by engaged alumni", ranked, "alumni")}, nil

	case domain.IntentEngagementByType:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		ranked := metrics.EngagementByType(ds.Events, ds.Engagements, topNShort)
		return Reply{Text: formatRanking("Engagement by event type", ranked, "touchpoints")}, nil

	case domain.IntentMonthlyTrend:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: formatTrend(metrics.MonthlyTrend(ds.Engagements, ds.Dates))}, nil

	case domain.IntentHiringFunnel:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: formatFunnel(metrics.HiringFunnel(ds.Engagements))}, nil

	case domain.IntentActiveEmployersCount:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("%s employers are actively engaging with alumni.", formatCount(metrics.ActiveEmployers(ds.Employers, ds.Engagements)))}, nil

	case domain.IntentTopEmployers, domain.IntentEmployerScores:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		scores := metrics.EmployerEngagementScores(ds.Employers, ds.Engagements, topNEmployers)
		return Reply{Text: formatEmployerScores(scores)}, nil

	case domain.IntentPredictiveMatches:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		matches := metrics.PredictiveMatches(ds.Students, ds.Employers, ds.Engagements, topNEmployers)
		return Reply{Text: formatMatches(matches)}, nil

	case domain.IntentEmploymentVerification:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		s := metrics.EmploymentVerification(ds.EmploymentRecords)
		return Reply{Text: fmt.Sprintf(
			"Employment verification\nVerified: %s\nPending: %s\nVerified rate: %d%%",
			formatCount(s.Verified), formatCount(s.Pending), s.VerifiedRate)}, nil

	case domain.IntentFeedbackSummary:
		ds, err := r.cache.EnsureLoaded(ctx)
		if err != nil {
			return Reply{}, err
		}
		s := metrics.SummarizeFeedback(ds.Feedback, ds.Employers)
		return Reply{Text: fmt.Sprintf(
			"Feedback summary\nResponses: %s\nAverage feedback score: %.2f\nAverage employer rating: %.2f",
			formatCount(s.Count), s.AverageScore, s.AverageEmployerRating)}, nil

	case domain.IntentDashboardAnalytics, domain.IntentGlobalMetrics:
		return r.overviewAnswer(ctx)

	default:
		return r.sharedAnswer(ctx, id, classified, text)
	}
}

// overviewAnswer is the composite snapshot behind the generic dashboard and
// metrics questions.
func (r *Router) overviewAnswer(ctx context.Context) (Reply, error) {
	ds, err := r.cache.EnsureLoaded(ctx)
	if err != nil {
		return Reply{}, err
	}
	total := metrics.TotalAlumni(ds.Students)
	engaged := metrics.EngagedAlumni(ds.Engagements)
	text := fmt.Sprintf(
		"Engagement overview\nTotal alumni: %s\nEngaged alumni: %s\nEngagement rate: %d%%\nAverage touchpoints: %.1f\nActive employers: %s",
		formatCount(total),
		formatCount(engaged),
		metrics.EngagementRate(engaged, total),
		metrics.AverageTouchpoints(len(ds.Engagements), engaged),
		formatCount(metrics.ActiveEmployers(ds.Employers, ds.Engagements)))
	return Reply{Text: text}, nil
}
