package metrics

import (
	"testing"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyTrend_SortedAscendingForShuffledInput(t *testing.T) {
	dates := []domain.DateDim{
		{DateKey: 1, Date: day(2024, time.March, 5)},
		{DateKey: 2, Date: day(2024, time.January, 10)},
		{DateKey: 3, Date: day(2024, time.February, 20)},
		{DateKey: 4, Date: day(2024, time.January, 25)},
	}
	// Deliberately shuffled row order.
	engagements := []domain.EngagementEvent{
		{StudentKey: 1, EventDateKey: 1},
		{StudentKey: 2, EventDateKey: 4},
		{StudentKey: 3, EventDateKey: 3},
		{StudentKey: 2, EventDateKey: 2},
		{StudentKey: 4, EventDateKey: 2},
	}

	buckets := MonthlyTrend(engagements, dates)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.Equal(t, "2024-02", buckets[1].Month)
	assert.Equal(t, "2024-03", buckets[2].Month)
}

func TestMonthlyTrend_DistinctVersusRawCounts(t *testing.T) {
	dates := []domain.DateDim{{DateKey: 1, Date: day(2024, time.June, 1)}}
	engagements := []domain.EngagementEvent{
		{StudentKey: 7, EventDateKey: 1},
		{StudentKey: 7, EventDateKey: 1},
		{StudentKey: 8, EventDateKey: 1},
	}

	buckets := MonthlyTrend(engagements, dates)
	require.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets[0].Engaged, "distinct people")
	assert.Equal(t, 3, buckets[0].Touchpoints, "raw rows")
}

func TestMonthlyTrend_SkipsUnresolvedDateKeys(t *testing.T) {
	dates := []domain.DateDim{{DateKey: 1, Date: day(2024, time.June, 1)}}
	engagements := []domain.EngagementEvent{
		{StudentKey: 1, EventDateKey: 1},
		{StudentKey: 2, EventDateKey: 404},
	}

	buckets := MonthlyTrend(engagements, dates)
	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Engaged)
}
