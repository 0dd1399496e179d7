package metrics

import (
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictiveMatches_FullAlignmentScoresExactly100(t *testing.T) {
	student := domain.Student{
		StudentKey:   1,
		ProgramName:  "Software Engineering",
		CurrentCity:  "Austin",
		CurrentState: "TX",
	}
	employer := domain.Employer{
		EmployerKey: 10,
		Industry:    "Software Consulting",
		HQCity:      "Austin",
		HQState:     "TX",
	}
	// Prior engagement between the pair plus enough hires for the volume
	// bonus (threshold is strictly greater than 5).
	engagements := []domain.EngagementEvent{
		{StudentKey: 1, EmployerKey: 10},
	}
	for i := 0; i < 6; i++ {
		engagements = append(engagements, domain.EngagementEvent{StudentKey: int64(100 + i), EmployerKey: 10, Hired: true})
	}

	matches := PredictiveMatches([]domain.Student{student}, []domain.Employer{employer}, engagements, 10)
	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Score)
}

func TestPredictiveMatches_GeographyAloneIsBelowThreshold(t *testing.T) {
	student := domain.Student{
		StudentKey:   1,
		ProgramName:  "Nursing",
		CurrentCity:  "Denver",
		CurrentState: "CO",
	}
	employer := domain.Employer{
		EmployerKey: 10,
		Industry:    "Logistics",
		HQCity:      "Denver",
		HQState:     "CO",
	}

	matches := PredictiveMatches([]domain.Student{student}, []domain.Employer{employer}, nil, 10)
	assert.Empty(t, matches, "a 30-point geography-only pair must not surface")
}

func TestPredictiveMatches_SortedAndTruncated(t *testing.T) {
	studentDim := []domain.Student{
		{StudentKey: 1, ProgramName: "Finance", CurrentCity: "Boston", CurrentState: "MA"},
		{StudentKey: 2, ProgramName: "Finance", CurrentCity: "Chicago", CurrentState: "IL"},
		{StudentKey: 3, ProgramName: "Finance", CurrentCity: "Boston", CurrentState: "MA"},
	}
	employer := domain.Employer{EmployerKey: 10, Industry: "Finance", HQCity: "Boston", HQState: "MA"}

	// Student 2 gets prior-engagement history (40+20=60); students 1 and 3
	// get alignment+geography (70).
	engagements := []domain.EngagementEvent{{StudentKey: 2, EmployerKey: 10}}

	matches := PredictiveMatches(studentDim, []domain.Employer{employer}, engagements, 2)
	require.Len(t, matches, 2, "truncated to the caller's limit")
	assert.Equal(t, 70, matches[0].Score)
	assert.Equal(t, int64(1), matches[0].Student.StudentKey, "ties keep input order")
	assert.Equal(t, 70, matches[1].Score)
	assert.Equal(t, int64(3), matches[1].Student.StudentKey)
}

func TestTokensOverlap_IgnoresShortConnectives(t *testing.T) {
	assert.False(t, tokensOverlap("Master of Finance", "Institute of Art"), "'of' must not count as alignment")
	assert.True(t, tokensOverlap("Data Science", "Science Publishing"))
}
