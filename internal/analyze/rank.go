package analyze

import (
	"sort"

	"github.com/blackwell-systems/codepulse/internal/scan"
)

// TopIssues returns the k highest-priority findings: severity rank
// ascending (Critical first), then the impact label compared as a raw
// string, then original discovery order.
//
// The label-string tie-break means "High Impact" < "Low Impact" <
// "Medium Impact", which is coarser than a severity-consistent weight
// would be. It is kept as-is for report compatibility; changing it is a
// product decision, not a refactor.
func TopIssues(findings []scan.Finding, k int) []scan.Finding {
	sorted := make([]scan.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Severity != sorted[j].Severity {
			return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
		}
		return sorted[i].Impact.String() < sorted[j].Impact.String()
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
