package analyze

import (
	"fmt"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

// recContext carries the aggregated counts a recommendation rule examines.
type recContext struct {
	severity map[rules.Severity]int
	category map[rules.Category]int
	score    float64
}

// recRule examines the aggregate context and returns a recommendation
// line, or ok=false when its condition does not hold.
type recRule func(*recContext) (string, bool)

// Recommendation rules run in registration order and their output is
// appended in that order, never re-sorted. Each condition appears exactly
// once, so the list carries no duplicates.
var (
	performanceRecRules = []recRule{
		func(c *recContext) (string, bool) {
			n := c.severity[rules.SeverityCritical]
			return fmt.Sprintf("Fix %d critical issues immediately", n), n > 0
		},
		func(c *recContext) (string, bool) {
			return "Review memory management patterns", c.category[rules.CategoryMemory] > 3
		},
		func(c *recContext) (string, bool) {
			return "Audit concurrency patterns for thread safety", c.category[rules.CategoryConcurrency] > 3
		},
		func(c *recContext) (string, bool) {
			return "Optimize UI operations for responsiveness", c.category[rules.CategoryUI] > 2
		},
		func(c *recContext) (string, bool) {
			return "Consider performance profiling with Instruments", c.score < 70
		},
	}

	securityRecRules = []recRule{
		func(c *recContext) (string, bool) {
			n := c.severity[rules.SeverityCritical]
			return fmt.Sprintf("Address %d critical security issues immediately", n), n > 0
		},
		func(c *recContext) (string, bool) {
			return "Remove hardcoded credentials and rotate any exposed secrets",
				c.category[rules.CategoryCredentials] > 0
		},
		func(c *recContext) (string, bool) {
			return "Harden input handling against injection vulnerabilities",
				c.category[rules.CategoryVulnerability] > 3
		},
		func(c *recContext) (string, bool) {
			return "Schedule a full security audit", c.score < 70
		},
	}
)

// Recommend evaluates the mode's recommendation rules over the aggregated
// counts and score.
func Recommend(mode rules.Mode, severity map[rules.Severity]int, category map[rules.Category]int, score float64) []string {
	ruleSet := performanceRecRules
	if mode == rules.ModeSecurity {
		ruleSet = securityRecRules
	}

	ctx := &recContext{severity: severity, category: category, score: score}
	var recs []string
	for _, rule := range ruleSet {
		if line, ok := rule(ctx); ok {
			recs = append(recs, line)
		}
	}
	return recs
}
