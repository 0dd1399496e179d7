package metrics

import (
	"sort"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// MonthBucket is one month of engagement activity. Engaged counts distinct
// alumni; Touchpoints counts raw rows.
type MonthBucket struct {
	Month       string // "2006-01"
	Engaged     int
	Touchpoints int
}

// MonthlyTrend joins engagement rows to the date dimension and buckets them
// by calendar month, ascending. Rows whose date key does not resolve are
// skipped.
func MonthlyTrend(engagements []domain.EngagementEvent, dates []domain.DateDim) []MonthBucket {
	months := make(map[int64]string, len(dates))
	for _, d := range dates {
		months[d.DateKey] = d.Date.Format("2006-01")
	}

	engaged := make(map[string]map[int64]bool)
	touchpoints := make(map[string]int)
	for _, e := range engagements {
		month, ok := months[e.EventDateKey]
		if !ok {
			continue
		}
		set, ok := engaged[month]
		if !ok {
			set = make(map[int64]bool)
			engaged[month] = set
		}
		set[e.StudentKey] = true
		touchpoints[month]++
	}

	buckets := make([]MonthBucket, 0, len(engaged))
	for month, set := range engaged {
		buckets = append(buckets, MonthBucket{
			Month:       month,
			Engaged:     len(set),
			Touchpoints: touchpoints[month],
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}
