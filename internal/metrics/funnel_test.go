package metrics

import (
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHiringFunnel(t *testing.T) {
	engagements := []domain.EngagementEvent{
		{StudentKey: 1, JobOffers: 2, Applications: 3},
		{StudentKey: 2, Applications: 1, Hired: true},
		{StudentKey: 3, JobOffers: 1},
		{StudentKey: 4}, // no opportunity signal
	}

	f := HiringFunnel(engagements)
	assert.Equal(t, 3, f.Opportunities)
	assert.Equal(t, 4, f.Applications)
	assert.Equal(t, 1, f.Hires)
	assert.Equal(t, 133.33, f.ApplicationRate, "4/3 as a percentage, two decimals")
	assert.Equal(t, 25.0, f.HireRate)
}

func TestHiringFunnel_EmptyInputYieldsZeroRates(t *testing.T) {
	f := HiringFunnel(nil)
	assert.Zero(t, f.Opportunities)
	assert.Zero(t, f.ApplicationRate)
	assert.Zero(t, f.HireRate)
}
