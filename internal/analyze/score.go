// Package analyze reduces a finding list into counts, a health score,
// recommendations, and a ranked top-issue list.
package analyze

import "github.com/blackwell-systems/codepulse/internal/rules"

// Strategy names a health-score formula. The two formulas come from two
// different upstream analyzers and yield different numbers for the same
// input; callers must pick one, they are never averaged.
type Strategy string

const (
	// StrategyWeighted normalizes total severity weight against the
	// worst case (every finding critical): 100 - (sum/(n*10))*100.
	StrategyWeighted Strategy = "weighted"

	// StrategyDeduction subtracts a fixed penalty per finding from 100,
	// floored at zero, independent of the finding count.
	StrategyDeduction Strategy = "deduction"
)

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyWeighted || s == StrategyDeduction
}

// weightedWeights are the per-finding weights for StrategyWeighted.
var weightedWeights = map[rules.Severity]float64{
	rules.SeverityCritical: 10,
	rules.SeverityHigh:     5,
	rules.SeverityMedium:   2,
	rules.SeverityLow:      1,
	rules.SeverityInfo:     0,
}

// deductionPenalties are the per-finding penalties for StrategyDeduction.
var deductionPenalties = map[rules.Severity]float64{
	rules.SeverityCritical: 20,
	rules.SeverityHigh:     10,
	rules.SeverityMedium:   5,
	rules.SeverityLow:      2,
	rules.SeverityInfo:     0,
}

// Score computes the 0-100 health score over per-severity counts using
// the given strategy. An empty finding set always scores 100.
func Score(severityCounts map[rules.Severity]int, strategy Strategy) float64 {
	total := 0
	for _, n := range severityCounts {
		total += n
	}
	if total == 0 {
		return 100
	}

	var score float64
	switch strategy {
	case StrategyDeduction:
		score = 100
		for sev, n := range severityCounts {
			score -= deductionPenalties[sev] * float64(n)
		}
	default:
		var weight float64
		for sev, n := range severityCounts {
			weight += weightedWeights[sev] * float64(n)
		}
		score = 100 - (weight/(float64(total)*10))*100
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
