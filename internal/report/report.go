// Package report serializes a scan result and its summary into JSON,
// Markdown, and SARIF documents. Reports are written only after
// aggregation completes; there is no partial write path, so a crash
// mid-scan never leaves a truncated report behind.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/codepulse/internal/analyze"
	"github.com/blackwell-systems/codepulse/internal/rules"
	"github.com/blackwell-systems/codepulse/internal/scan"
)

// Document is the machine-readable view of one scan: every finding plus
// the full summary.
type Document struct {
	RunID        string          `json:"run_id"`
	Timestamp    string          `json:"timestamp"`
	ProjectPath  string          `json:"project_path"`
	Mode         rules.Mode      `json:"mode"`
	FilesScanned int             `json:"files_scanned"`
	Metrics      []scan.Finding  `json:"metrics"`
	Summary      analyze.Summary `json:"summary"`
}

// NewDocument builds the export document from a scan result and summary.
func NewDocument(res *scan.Result, sum analyze.Summary) Document {
	metrics := res.Findings
	if metrics == nil {
		metrics = []scan.Finding{}
	}
	return Document{
		RunID:        res.RunID,
		Timestamp:    res.Timestamp.Format(time.RFC3339),
		ProjectPath:  res.ProjectPath,
		Mode:         res.Mode,
		FilesScanned: res.FilesScanned,
		Metrics:      metrics,
		Summary:      sum,
	}
}

// FileNames returns the JSON and Markdown report file names for a mode.
// Performance reports are timestamped; security reports use the fixed
// names downstream tooling expects.
func FileNames(mode rules.Mode, t time.Time) (jsonName, mdName string) {
	if mode == rules.ModeSecurity {
		return "security_analysis.json", "SECURITY_ANALYSIS_REPORT.md"
	}
	stamp := t.Format("20060102_150405")
	return fmt.Sprintf("performance_%s.json", stamp), fmt.Sprintf("performance_%s.md", stamp)
}

// SARIFName returns the SARIF report file name for a mode.
func SARIFName(mode rules.Mode, t time.Time) string {
	if mode == rules.ModeSecurity {
		return "security_analysis.sarif"
	}
	return fmt.Sprintf("performance_%s.sarif", t.Format("20060102_150405"))
}

// DefaultOutputDir returns where reports land when no output directory is
// given: a performance_analysis subdirectory for performance scans, the
// project root itself for security scans.
func DefaultOutputDir(mode rules.Mode, root string) string {
	if mode == rules.ModeSecurity {
		return root
	}
	return filepath.Join(root, "performance_analysis")
}
