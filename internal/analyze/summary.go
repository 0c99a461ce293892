package analyze

import (
	"math"

	"github.com/blackwell-systems/codepulse/internal/rules"
	"github.com/blackwell-systems/codepulse/internal/scan"
)

// DefaultTopIssues is the number of findings surfaced as headline issues.
const DefaultTopIssues = 5

// Summary is the aggregated view of a scan's findings. The sum of the
// severity counts, the sum of the category counts, and TotalIssues are
// always equal.
type Summary struct {
	TotalIssues     int            `json:"total_issues"`
	SeverityCounts  map[string]int `json:"severity_counts"`
	CategoryCounts  map[string]int `json:"category_counts"`
	Score           float64        `json:"score"`
	Strategy        Strategy       `json:"strategy"`
	Recommendations []string       `json:"recommendations"`
	TopIssues       []scan.Finding `json:"top_issues"`
}

// Summarize aggregates a scan result: counts by severity and category,
// health score under the chosen strategy, mode-specific recommendations,
// and the ranked top-K findings. Aggregation runs single-threaded over the
// complete finding set; nothing here is incremental.
func Summarize(res *scan.Result, strategy Strategy, topK int) Summary {
	if topK <= 0 {
		topK = DefaultTopIssues
	}

	sevCounts := make(map[rules.Severity]int)
	catCounts := make(map[rules.Category]int)
	for _, f := range res.Findings {
		sevCounts[f.Severity]++
		catCounts[f.Category]++
	}

	score := math.Round(Score(sevCounts, strategy)*100) / 100

	sevOut := make(map[string]int, len(rules.Severities))
	for _, sev := range rules.Severities {
		sevOut[sev.Key()] = sevCounts[sev]
	}
	catOut := make(map[string]int, len(catCounts))
	for cat, n := range catCounts {
		catOut[cat.String()] = n
	}

	// Empty slices serialize as [] rather than null.
	recs := Recommend(res.Mode, sevCounts, catCounts, score)
	if recs == nil {
		recs = []string{}
	}

	return Summary{
		TotalIssues:     len(res.Findings),
		SeverityCounts:  sevOut,
		CategoryCounts:  catOut,
		Score:           score,
		Strategy:        strategy,
		Recommendations: recs,
		TopIssues:       TopIssues(res.Findings, topK),
	}
}
