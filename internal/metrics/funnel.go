package metrics

import "github.com/devakitechdata/nexus-analytics/internal/domain"

// Funnel is the hiring conversion summary. Rates are percentages rounded to
// two decimals; a zero denominator yields a zero rate.
type Funnel struct {
	Opportunities   int
	Applications    int
	Hires           int
	ApplicationRate float64
	HireRate        float64
}

// HiringFunnel builds the opportunity -> application -> hire funnel. An
// opportunity is any row carrying job offers or applications; applications
// sum across opportunity rows; hires count rows with the hired flag set.
func HiringFunnel(engagements []domain.EngagementEvent) Funnel {
	var f Funnel
	for _, e := range engagements {
		if e.JobOffers > 0 || e.Applications > 0 {
			f.Opportunities++
			f.Applications += e.Applications
		}
		if e.Hired {
			f.Hires++
		}
	}
	if f.Opportunities > 0 {
		f.ApplicationRate = round2(float64(f.Applications) / float64(f.Opportunities) * 100)
	}
	if f.Applications > 0 {
		f.HireRate = round2(float64(f.Hires) / float64(f.Applications) * 100)
	}
	return f
}
