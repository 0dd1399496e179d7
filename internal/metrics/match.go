package metrics

import (
	"sort"
	"strings"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// Predictive-match weights. These are product tuning constants, kept as
// named values so they can be adjusted without touching the algorithm.
const (
	WeightAlignment  = 40 // program/industry keyword overlap
	WeightGeography  = 30 // shared location tokens
	WeightHistory    = 20 // prior engagement between the pair
	WeightHireVolume = 10 // employer hires above HireVolumeThreshold

	// MatchThreshold is the minimum total score a pair needs to surface.
	MatchThreshold = 50

	// HireVolumeThreshold is the hire count above which an employer earns
	// the hire-volume bonus.
	HireVolumeThreshold = 5
)

// Match is one surfaced alumnus/employer pairing.
type Match struct {
	Student  domain.Student
	Employer domain.Employer
	Score    int
}

// PredictiveMatches scores every alumnus/employer pair with the additive
// weight table and returns pairs at or above MatchThreshold, sorted by score
// descending and truncated to limit. The ordering of ties follows input
// order, so identical input yields identical output.
func PredictiveMatches(students []domain.Student, employers []domain.Employer, engagements []domain.EngagementEvent, limit int) []Match {
	pairHistory := make(map[[2]int64]bool, len(engagements))
	hiresByEmployer := make(map[int64]int)
	for _, e := range engagements {
		pairHistory[[2]int64{e.StudentKey, e.EmployerKey}] = true
		if e.Hired {
			hiresByEmployer[e.EmployerKey]++
		}
	}

	var matches []Match
	for _, s := range students {
		for _, emp := range employers {
			score := scorePair(s, emp, pairHistory, hiresByEmployer)
			if score < MatchThreshold {
				continue
			}
			matches = append(matches, Match{Student: s, Employer: emp, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func scorePair(s domain.Student, emp domain.Employer, history map[[2]int64]bool, hires map[int64]int) int {
	score := 0
	if tokensOverlap(s.ProgramName, emp.Industry) {
		score += WeightAlignment
	}
	if tokensOverlap(s.CurrentCity+" "+s.CurrentState, emp.HQCity+" "+emp.HQState) {
		score += WeightGeography
	}
	if history[[2]int64{s.StudentKey, emp.EmployerKey}] {
		score += WeightHistory
	}
	if hires[emp.EmployerKey] > HireVolumeThreshold {
		score += WeightHireVolume
	}
	return score
}

// tokensOverlap reports whether the two phrases share any keyword token.
// Tokens shorter than three runes are ignored so connectives like "of" and
// "in" never count as alignment.
func tokensOverlap(a, b string) bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(a)) {
		if len(tok) >= 3 {
			set[tok] = true
		}
	}
	for _, tok := range strings.Fields(strings.ToLower(b)) {
		if len(tok) >= 3 && set[tok] {
			return true
		}
	}
	return false
}
