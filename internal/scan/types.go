// Package scan implements file collection and the rule-evaluation engine:
// it turns a project tree plus a rule registry into an ordered, immutable
// finding list.
package scan

import (
	"time"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

// maxSnippetLen bounds the matched text carried on a finding.
const maxSnippetLen = 100

// Finding is a single reported deviation from an expected source pattern.
// It is immutable once created.
type Finding struct {
	// RuleKey identifies the rule that produced this finding.
	RuleKey string `json:"rule"`

	// Name is the human-readable finding name from the rule.
	Name string `json:"name"`

	Category rules.Category `json:"category"`
	Severity rules.Severity `json:"severity"`
	Impact   rules.Impact   `json:"estimated_impact"`

	// File is the path relative to the project root.
	File string `json:"file"`

	// Line is the 1-based line of the match. It is nil for file-level
	// threshold findings, and serialized as JSON null rather than a
	// sentinel number.
	Line *int `json:"line"`

	// Snippet is the matched text, truncated to maxSnippetLen bytes.
	Snippet string `json:"snippet,omitempty"`

	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// Result is the outcome of one scan run. Findings are ordered by file
// collection order, then rule order, then match position, and the order is
// deterministic for a fixed file tree.
type Result struct {
	RunID        string     `json:"run_id"`
	Timestamp    time.Time  `json:"timestamp"`
	ProjectPath  string     `json:"project_path"`
	Mode         rules.Mode `json:"mode"`
	FilesScanned int        `json:"files_scanned"`
	Findings     []Finding  `json:"findings"`
}
