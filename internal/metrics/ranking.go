package metrics

import (
	"fmt"
	"sort"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// GroupCount is one entry of a ranked breakdown.
type GroupCount struct {
	Key   string
	Count int
}

// rankDesc converts group counts to a descending ranking. Ties keep
// first-seen order, which makes rankings stable for identical input without
// imposing a lexical order the portal never promised.
func rankDesc(order []string, counts map[string]int, limit int) []GroupCount {
	firstSeen := make(map[string]int, len(order))
	for i, k := range order {
		firstSeen[k] = i
	}
	ranked := make([]GroupCount, 0, len(order))
	for _, k := range order {
		ranked = append(ranked, GroupCount{Key: k, Count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Key] < firstSeen[ranked[j].Key]
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// distinctByGroup builds group -> distinct-student counts from engagement
// rows, using keyOf to resolve each row to a group label. Rows that resolve
// to an empty label are skipped.
func distinctByGroup(engagements []domain.EngagementEvent, keyOf func(domain.EngagementEvent) string, limit int) []GroupCount {
	var order []string
	members := make(map[string]map[int64]bool)
	for _, e := range engagements {
		key := keyOf(e)
		if key == "" {
			continue
		}
		set, ok := members[key]
		if !ok {
			set = make(map[int64]bool)
			members[key] = set
			order = append(order, key)
		}
		set[e.StudentKey] = true
	}
	counts := make(map[string]int, len(members))
	for k, set := range members {
		counts[k] = len(set)
	}
	return rankDesc(order, counts, limit)
}

// TopProgramsByEngagement ranks academic programs by distinct engaged alumni.
// Engagement rows referencing an unknown student are skipped.
func TopProgramsByEngagement(students []domain.Student, engagements []domain.EngagementEvent, limit int) []GroupCount {
	idx := studentIndex(students)
	return distinctByGroup(engagements, func(e domain.EngagementEvent) string {
		s, ok := idx[e.StudentKey]
		if !ok {
			return ""
		}
		return s.ProgramName
	}, limit)
}

// TopCohortsByEngagement ranks graduation-year cohorts by distinct engaged
// alumni.
func TopCohortsByEngagement(students []domain.Student, engagements []domain.EngagementEvent, limit int) []GroupCount {
	idx := studentIndex(students)
	return distinctByGroup(engagements, func(e domain.EngagementEvent) string {
		s, ok := idx[e.StudentKey]
		if !ok || s.GraduationYear == 0 {
			return ""
		}
		return fmt.Sprintf("Class of %d", s.GraduationYear)
	}, limit)
}

// TopLocationsByEngagement ranks current city/state locations by distinct
// engaged alumni.
func TopLocationsByEngagement(students []domain.Student, engagements []domain.EngagementEvent, limit int) []GroupCount {
	idx := studentIndex(students)
	return distinctByGroup(engagements, func(e domain.EngagementEvent) string {
		s, ok := idx[e.StudentKey]
		if !ok || s.CurrentCity == "" {
			return ""
		}
		if s.CurrentState == "" {
			return s.CurrentCity
		}
		return s.CurrentCity + ", " + s.CurrentState
	}, limit)
}

// EngagementByType ranks event types by raw touchpoint volume (row count,
// not distinct people). Rows referencing an unknown event are skipped.
func EngagementByType(events []domain.Event, engagements []domain.EngagementEvent, limit int) []GroupCount {
	types := make(map[int64]string, len(events))
	for _, ev := range events {
		types[ev.EventKey] = ev.EventType
	}
	var order []string
	counts := make(map[string]int)
	for _, e := range engagements {
		typ, ok := types[e.EventKey]
		if !ok || typ == "" {
			continue
		}
		if _, seen := counts[typ]; !seen {
			order = append(order, typ)
		}
		counts[typ]++
	}
	return rankDesc(order, counts, limit)
}
