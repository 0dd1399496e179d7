package metrics

import (
	"sort"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// EmployerScore is one employer's engagement composite. Score is a ranking
// heuristic, not a probability: events*1 + distinctStudents*0.5 + hires*2.
type EmployerScore struct {
	Employer         domain.Employer
	Events           int
	DistinctStudents int
	Hires            int
	Score            float64
}

// EmployerEngagementScores ranks employers by composite engagement score,
// descending. Engagement rows referencing an employer key missing from the
// dimension are skipped, so malformed rows cannot introduce phantom
// employers.
func EmployerEngagementScores(employers []domain.Employer, engagements []domain.EngagementEvent, limit int) []EmployerScore {
	idx := employerIndex(employers)

	var order []int64
	events := make(map[int64]int)
	hires := make(map[int64]int)
	students := make(map[int64]map[int64]bool)
	for _, e := range engagements {
		if _, ok := idx[e.EmployerKey]; !ok {
			continue
		}
		if _, seen := events[e.EmployerKey]; !seen {
			order = append(order, e.EmployerKey)
			students[e.EmployerKey] = make(map[int64]bool)
		}
		events[e.EmployerKey]++
		students[e.EmployerKey][e.StudentKey] = true
		if e.Hired {
			hires[e.EmployerKey]++
		}
	}

	scores := make([]EmployerScore, 0, len(order))
	for _, key := range order {
		s := EmployerScore{
			Employer:         idx[key],
			Events:           events[key],
			DistinctStudents: len(students[key]),
			Hires:            hires[key],
		}
		s.Score = round2(float64(s.Events)*1 + float64(s.DistinctStudents)*0.5 + float64(s.Hires)*2)
		scores = append(scores, s)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}
