package assistant

import (
	"fmt"
	"strings"

	"github.com/devakitechdata/nexus-analytics/internal/metrics"
	"github.com/dustin/go-humanize"
)

// Answer text always human-formats counts (thousands separators) and keeps
// multi-line summaries to one fact per line.

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatRanking(title string, ranked []metrics.GroupCount, unit string) string {
	if len(ranked) == 0 {
		return title + "\nNo data available yet."
	}
	var b strings.Builder
	b.WriteString(title)
	for i, g := range ranked {
		fmt.Fprintf(&b, "\n%d. %s: %s %s", i+1, g.Key, formatCount(g.Count), unit)
	}
	return b.String()
}

func formatTrend(buckets []metrics.MonthBucket) string {
	if len(buckets) == 0 {
		return "Monthly engagement trend\nNo data available yet."
	}
	var b strings.Builder
	b.WriteString("Monthly engagement trend")
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "\n%s: %s alumni engaged across %s touchpoints",
			bucket.Month, formatCount(bucket.Engaged), formatCount(bucket.Touchpoints))
	}
	return b.String()
}

func formatFunnel(f metrics.Funnel) string {
	return fmt.Sprintf(
		"Hiring funnel\nOpportunities: %s\nApplications: %s\nHires: %s\nApplication rate: %.2f%%\nHire rate: %.2f%%",
		formatCount(f.Opportunities), formatCount(f.Applications), formatCount(f.Hires),
		f.ApplicationRate, f.HireRate)
}

func formatEmployerScores(scores []metrics.EmployerScore) string {
	if len(scores) == 0 {
		return "Employer engagement scores\nNo engagement recorded yet."
	}
	var b strings.Builder
	b.WriteString("Employer engagement scores")
	for i, s := range scores {
		fmt.Fprintf(&b, "\n%d. %s: score %.2f (%s events, %s alumni, %s hires)",
			i+1, s.Employer.EmployerName, s.Score,
			formatCount(s.Events), formatCount(s.DistinctStudents), formatCount(s.Hires))
	}
	return b.String()
}

func formatMatches(matches []metrics.Match) string {
	if len(matches) == 0 {
		return "Predictive matches\nNo pairings cleared the match threshold."
	}
	var b strings.Builder
	b.WriteString("Top alumni-employer matches")
	for i, m := range matches {
		fmt.Fprintf(&b, "\n%d. Student %d (%s) and %s: score %d",
			i+1, m.Student.StudentKey, m.Student.ProgramName,
			m.Employer.EmployerName, m.Score)
	}
	return b.String()
}
