package metrics

import "github.com/devakitechdata/nexus-analytics/internal/domain"

// FeedbackSummary aggregates employer feedback about alumni alongside the
// mean employer rating from the employer dimension.
type FeedbackSummary struct {
	Count                 int
	AverageScore          float64
	AverageEmployerRating float64
}

// SummarizeFeedback averages feedback scores and employer ratings, each
// rounded to two decimals. Empty collections yield zeros.
func SummarizeFeedback(feedback []domain.EmployerFeedback, employers []domain.Employer) FeedbackSummary {
	var s FeedbackSummary
	var scoreTotal float64
	for _, f := range feedback {
		s.Count++
		scoreTotal += f.Score
	}
	if s.Count > 0 {
		s.AverageScore = round2(scoreTotal / float64(s.Count))
	}
	var ratingTotal float64
	rated := 0
	for _, e := range employers {
		if e.EmployerRating > 0 {
			ratingTotal += e.EmployerRating
			rated++
		}
	}
	if rated > 0 {
		s.AverageEmployerRating = round2(ratingTotal / float64(rated))
	}
	return s
}
