package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func renderedLines(t *testing.T, tbl *Table) []string {
	t.Helper()
	out := strings.TrimRight(tbl.Render(), "\n")
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("table too short:\n%s", out)
	}
	return lines
}

func TestTable_RightAlignsNumericColumns(t *testing.T) {
	tbl := NewTable("Severity", "Count").AlignRight(1)
	tbl.AddRow("Critical", "2")
	tbl.AddRow("High", "120")

	lines := renderedLines(t, tbl)
	if !strings.HasSuffix(lines[2], " 2") {
		t.Errorf("short count not right-aligned: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "120") {
		t.Errorf("count column malformed: %q", lines[3])
	}
	// Right alignment means both rows share the same visible width.
	if lipgloss.Width(lines[2]) != lipgloss.Width(lines[3]) {
		t.Errorf("row widths differ: %q vs %q", lines[2], lines[3])
	}
}

// Styled cells carry ANSI escape sequences; column sizing must see only
// the visible text or every styled cell blows out its column.
func TestTable_WidthsIgnoreEscapeSequences(t *testing.T) {
	styled := "\x1b[31mHigh\x1b[0m"

	tbl := NewTable("Severity", "Count").AlignRight(1)
	tbl.AddRow(styled, "1")
	tbl.AddRow("Critical", "2")

	if tbl.widths[0] != len("Critical") {
		t.Fatalf("severity column width = %d, want %d", tbl.widths[0], len("Critical"))
	}

	lines := renderedLines(t, tbl)
	if lipgloss.Width(lines[2]) != lipgloss.Width(lines[3]) {
		t.Errorf("styled row misaligned: %q vs %q", lines[2], lines[3])
	}
	if !strings.Contains(lines[2], styled) {
		t.Errorf("styling stripped from cell: %q", lines[2])
	}
}

func TestTable_ShortRowsRenderEmptyCells(t *testing.T) {
	tbl := NewTable("Key", "Severity", "Category")
	tbl.AddRow("retain-cycle", "High")

	lines := renderedLines(t, tbl)
	if !strings.Contains(lines[2], "retain-cycle") || !strings.Contains(lines[2], "High") {
		t.Errorf("row missing cells: %q", lines[2])
	}
}

func TestTable_EmptyHeadersRenderNothing(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
