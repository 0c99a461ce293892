package scan

import "strings"

// falsePositiveIndicators is the placeholder vocabulary that marks a
// credential match as fixture or documentation text rather than a real
// secret. Matching is case-insensitive and runs against the matched
// substring only, never its surrounding context. Only credential rules use
// this filter: credential patterns have a structurally high false-positive
// rate against test fixtures, while the other categories do not.
var falsePositiveIndicators = []string{
	"example", "test", "mock", "fake", "dummy", "placeholder",
	"your_", "xxxx", "...", "***", "todo", "fixme",
}

// IsLikelyFalsePositive reports whether a credential match should be
// suppressed as placeholder text.
func IsLikelyFalsePositive(matched string) bool {
	lower := strings.ToLower(matched)
	for _, indicator := range falsePositiveIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
