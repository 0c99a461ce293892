package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

// WriteMarkdown renders the narrative report: header, summary counts,
// category breakdown by descending count, recommendations, and one detail
// block per top issue. Absent optional fields are omitted entirely rather
// than rendered as placeholders.
func WriteMarkdown(doc Document, path string) error {
	data := renderMarkdown(doc)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing Markdown report: %w", err)
	}
	return nil
}

func renderMarkdown(doc Document) string {
	var b strings.Builder

	title := "Performance Analysis Report"
	if doc.Mode == rules.ModeSecurity {
		title = "Security Analysis Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Generated:** %s\n", doc.Timestamp)
	fmt.Fprintf(&b, "**Project:** %s\n", doc.ProjectPath)
	fmt.Fprintf(&b, "**Score:** %.2f/100\n\n", doc.Summary.Score)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Issues:** %d\n", doc.Summary.TotalIssues)
	fmt.Fprintf(&b, "- **Files Scanned:** %d\n", doc.FilesScanned)
	for _, sev := range rules.Severities {
		fmt.Fprintf(&b, "- **%s:** %d\n", sev, doc.Summary.SeverityCounts[sev.Key()])
	}

	b.WriteString("\n## Issues by Category\n\n")
	for _, cat := range categoriesByCount(doc.Summary.CategoryCounts) {
		fmt.Fprintf(&b, "- **%s:** %d issues\n", cat.name, cat.count)
	}

	b.WriteString("\n## Recommendations\n\n")
	for _, rec := range doc.Summary.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	b.WriteString("\n## Top Priority Issues\n\n")
	for _, issue := range doc.Summary.TopIssues {
		fmt.Fprintf(&b, "### %s\n\n", issue.Name)
		if issue.Line != nil {
			fmt.Fprintf(&b, "- **File:** `%s` (line %d)\n", issue.File, *issue.Line)
		} else {
			fmt.Fprintf(&b, "- **File:** `%s`\n", issue.File)
		}
		fmt.Fprintf(&b, "- **Severity:** %s\n", issue.Severity)
		fmt.Fprintf(&b, "- **Category:** %s\n", issue.Category)
		fmt.Fprintf(&b, "- **Impact:** %s\n", issue.Impact)
		fmt.Fprintf(&b, "- **Description:** %s\n", issue.Description)
		if issue.Recommendation != "" {
			fmt.Fprintf(&b, "- **Recommendation:** %s\n", issue.Recommendation)
		}
		b.WriteString("\n---\n\n")
	}

	return b.String()
}

type categoryCount struct {
	name  string
	count int
}

// categoriesByCount orders categories by descending count, name ascending
// on ties, so the breakdown is stable across runs.
func categoriesByCount(counts map[string]int) []categoryCount {
	out := make([]categoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, categoryCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}
