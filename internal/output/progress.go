package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 0-100 health score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// TrendArrow returns a styled trend indicator for a score delta between
// two history snapshots. Positive delta shows an up arrow, negative shows
// down, zero shows a dash. Higher scores are always better.
func TrendArrow(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.1f", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.1f", delta))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// SeverityStyle returns the style conventionally used for a severity
// label in tables.
func SeverityStyle(severity string) func(string) string {
	switch severity {
	case "Critical", "High":
		return func(s string) string { return StyleError.Render(s) }
	case "Medium":
		return func(s string) string { return StyleWarning.Render(s) }
	default:
		return func(s string) string { return StyleMuted.Render(s) }
	}
}
