package metrics

import "github.com/devakitechdata/nexus-analytics/internal/domain"

// TotalAlumni counts distinct alumni in the student dimension. Duplicate rows
// sharing a student key count once.
func TotalAlumni(students []domain.Student) int {
	seen := make(map[int64]bool, len(students))
	for _, s := range students {
		seen[s.StudentKey] = true
	}
	return len(seen)
}

// EngagedAlumni counts distinct alumni with at least one touchpoint.
func EngagedAlumni(engagements []domain.EngagementEvent) int {
	seen := make(map[int64]bool, len(engagements))
	for _, e := range engagements {
		seen[e.StudentKey] = true
	}
	return len(seen)
}

// EngagementRate is the percentage of total alumni with at least one
// touchpoint, rounded to a whole number and capped at 100. Zero when there
// are no alumni.
func EngagementRate(engaged, total int) int {
	return pct(engaged, total)
}

// AverageTouchpoints is the mean number of engagement rows per engaged
// alumnus, rounded to one decimal. Zero when nobody is engaged.
func AverageTouchpoints(touchpoints, engaged int) float64 {
	if engaged <= 0 {
		return 0
	}
	return round1(float64(touchpoints) / float64(engaged))
}

// ActiveEmployers counts distinct employers that appear in at least one
// engagement row and resolve against the employer dimension.
func ActiveEmployers(employers []domain.Employer, engagements []domain.EngagementEvent) int {
	known := employerIndex(employers)
	seen := make(map[int64]bool)
	for _, e := range engagements {
		if _, ok := known[e.EmployerKey]; !ok {
			continue
		}
		seen[e.EmployerKey] = true
	}
	return len(seen)
}

// VerificationSummary summarizes employment records by verification state.
type VerificationSummary struct {
	Verified     int
	Pending      int
	VerifiedRate int
}

// EmploymentVerification tallies verified versus pending employment records.
func EmploymentVerification(records []domain.EmploymentRecord) VerificationSummary {
	var s VerificationSummary
	for _, r := range records {
		switch r.Status {
		case domain.EmploymentVerified:
			s.Verified++
		case domain.EmploymentPending:
			s.Pending++
		}
	}
	s.VerifiedRate = pct(s.Verified, s.Verified+s.Pending)
	return s
}

func employerIndex(employers []domain.Employer) map[int64]domain.Employer {
	idx := make(map[int64]domain.Employer, len(employers))
	for _, e := range employers {
		idx[e.EmployerKey] = e
	}
	return idx
}

func studentIndex(students []domain.Student) map[int64]domain.Student {
	idx := make(map[int64]domain.Student, len(students))
	for _, s := range students {
		idx[s.StudentKey] = s
	}
	return idx
}
