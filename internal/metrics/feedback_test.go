package metrics

import (
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeFeedback_Averages(t *testing.T) {
	feedback := []domain.EmployerFeedback{
		{EmployerKey: 1, StudentKey: 10, Score: 4.0},
		{EmployerKey: 1, StudentKey: 11, Score: 3.0},
		{EmployerKey: 2, StudentKey: 12, Score: 5.0},
	}
	employers := []domain.Employer{
		{EmployerKey: 1, EmployerName: "Acme", EmployerRating: 4.5},
		{EmployerKey: 2, EmployerName: "Globex", EmployerRating: 3.5},
	}

	s := SummarizeFeedback(feedback, employers)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 4.0, s.AverageScore)
	assert.Equal(t, 4.0, s.AverageEmployerRating)
}

func TestSummarizeFeedback_UnratedEmployersExcluded(t *testing.T) {
	employers := []domain.Employer{
		{EmployerKey: 1, EmployerName: "Acme", EmployerRating: 4.0},
		{EmployerKey: 2, EmployerName: "Globex", EmployerRating: 0},
	}

	s := SummarizeFeedback(nil, employers)
	assert.Equal(t, 4.0, s.AverageEmployerRating, "zero ratings must not drag the average")
}

func TestSummarizeFeedback_Empty(t *testing.T) {
	s := SummarizeFeedback(nil, nil)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0.0, s.AverageScore)
	assert.Equal(t, 0.0, s.AverageEmployerRating)
}

func TestSummarizeFeedback_RoundsToTwoDecimals(t *testing.T) {
	feedback := []domain.EmployerFeedback{
		{Score: 4.0}, {Score: 4.0}, {Score: 3.0},
	}
	s := SummarizeFeedback(feedback, nil)
	assert.Equal(t, 3.67, s.AverageScore)
}
