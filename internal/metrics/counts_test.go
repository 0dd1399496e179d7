package metrics

import (
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func students(keys ...int64) []domain.Student {
	out := make([]domain.Student, len(keys))
	for i, k := range keys {
		out[i] = domain.Student{StudentKey: k}
	}
	return out
}

func touches(studentKeys ...int64) []domain.EngagementEvent {
	out := make([]domain.EngagementEvent, len(studentKeys))
	for i, k := range studentKeys {
		out[i] = domain.EngagementEvent{StudentKey: k}
	}
	return out
}

func TestTotalAlumni_DedupIdempotence(t *testing.T) {
	base := students(1, 2, 3, 4, 5)
	doubled := append(append([]domain.Student{}, base...), base...)

	assert.Equal(t, 5, TotalAlumni(base))
	assert.Equal(t, TotalAlumni(base), TotalAlumni(doubled), "duplicate rows must not inflate the count")
}

func TestEngagementScenario_TenStudentsSixEngaged(t *testing.T) {
	s := students(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	e := touches(1, 2, 3, 4, 5, 6)

	total := TotalAlumni(s)
	engaged := EngagedAlumni(e)
	assert.Equal(t, 10, total)
	assert.Equal(t, 6, engaged)
	assert.Equal(t, 60, EngagementRate(engaged, total))
}

func TestEngagementRate_Bounds(t *testing.T) {
	assert.Equal(t, 0, EngagementRate(5, 0), "zero total yields zero regardless of engaged")
	assert.Equal(t, 0, EngagementRate(0, 100))
	assert.Equal(t, 100, EngagementRate(100, 100))
	assert.Equal(t, 100, EngagementRate(150, 100), "rate is capped at 100 for malformed sources")
}

func TestEngagementRate_MonotonicInEngaged(t *testing.T) {
	const total = 73
	prev := 0
	for engaged := 0; engaged <= total; engaged++ {
		rate := EngagementRate(engaged, total)
		assert.GreaterOrEqual(t, rate, prev, "rate must not decrease as engaged grows")
		assert.GreaterOrEqual(t, rate, 0)
		assert.LessOrEqual(t, rate, 100)
		prev = rate
	}
}

func TestAverageTouchpoints(t *testing.T) {
	assert.Equal(t, 0.0, AverageTouchpoints(10, 0), "no engaged alumni yields zero")
	assert.Equal(t, 2.5, AverageTouchpoints(5, 2))
	assert.Equal(t, 1.7, AverageTouchpoints(5, 3), "rounded to one decimal")
}

func TestActiveEmployers_SkipsUnknownKeys(t *testing.T) {
	employers := []domain.Employer{{EmployerKey: 10}, {EmployerKey: 20}}
	engagements := []domain.EngagementEvent{
		{StudentKey: 1, EmployerKey: 10},
		{StudentKey: 2, EmployerKey: 10},
		{StudentKey: 3, EmployerKey: 99}, // unresolvable
	}
	assert.Equal(t, 1, ActiveEmployers(employers, engagements))
}

func TestEmploymentVerification(t *testing.T) {
	records := []domain.EmploymentRecord{
		{Status: domain.EmploymentVerified},
		{Status: domain.EmploymentVerified},
		{Status: domain.EmploymentVerified},
		{Status: domain.EmploymentPending},
	}
	s := EmploymentVerification(records)
	assert.Equal(t, 3, s.Verified)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 75, s.VerifiedRate)
}
