// Package metrics contains the deterministic aggregation, ranking, trend and
// scoring algorithms the assistant answers with. Every function is pure: it
// reads warehouse collections, never mutates them, and never returns an
// error. Malformed numeric fields are zero after ingestion, and rows whose
// foreign keys fail to resolve are skipped rather than failing the whole
// aggregation.
package metrics

import "math"

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pct converts a ratio numerator/denominator to a whole-number percentage,
// capped at 100. Duplicate or malformed source rows can push a raw ratio
// above 1; the cap keeps reported rates sane.
func pct(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	p := float64(numerator) / float64(denominator) * 100
	if p > 100 {
		return 100
	}
	return int(math.Round(p))
}
