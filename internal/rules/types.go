// Package rules defines the declarative rule catalog for codepulse scans:
// severity/category/impact enumerations, match and threshold rule types,
// and the immutable registries for each scan mode.
package rules

import (
	"encoding/json"
	"regexp"
)

// Mode selects which rule catalog and file set a scan uses.
type Mode string

const (
	ModePerformance Mode = "performance"
	ModeSecurity    Mode = "security"
)

// Extensions returns the file extensions collected in this mode.
func (m Mode) Extensions() []string {
	if m == ModeSecurity {
		return []string{".swift", ".m", ".h", ".json", ".plist", ".yaml", ".yml"}
	}
	return []string{".swift"}
}

// SkipTestDirs reports whether paths under test directories are excluded.
// Performance scans ignore test code; security scans include it because
// fixtures leak real credentials often enough to be worth the noise.
func (m Mode) SkipTestDirs() bool {
	return m == ModePerformance
}

// Severity is the ordinal urgency of a finding. Lower values are more
// severe, so Critical sorts first.
type Severity int

const (
	SeverityCritical Severity = iota
	SeverityHigh
	SeverityMedium
	SeverityLow
	SeverityInfo
)

// Rank returns the sort rank (0 = Critical). Exists so ordering reads as
// intent at call sites rather than as int casts.
func (s Severity) Rank() int { return int(s) }

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	default:
		return "Info"
	}
}

// Key returns the lowercase identifier used for count maps and JSON keys.
func (s Severity) Key() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "info"
	}
}

// MarshalJSON renders the severity as its display string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Severities lists all severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}

// Category is the functional grouping of a finding.
type Category int

const (
	CategoryMemory Category = iota
	CategoryConcurrency
	CategoryAlgorithm
	CategoryIO
	CategoryUI
	CategoryNetwork
	CategoryDatabase
	CategoryCredentials
	CategoryVulnerability
	CategoryEncryption
	CategoryAuthentication
)

func (c Category) String() string {
	switch c {
	case CategoryMemory:
		return "Memory Management"
	case CategoryConcurrency:
		return "Concurrency"
	case CategoryAlgorithm:
		return "Algorithm Complexity"
	case CategoryIO:
		return "I/O Operations"
	case CategoryUI:
		return "UI Responsiveness"
	case CategoryNetwork:
		return "Network"
	case CategoryDatabase:
		return "Database"
	case CategoryCredentials:
		return "Credentials"
	case CategoryEncryption:
		return "Encryption"
	case CategoryAuthentication:
		return "Authentication"
	default:
		return "Vulnerability"
	}
}

// MarshalJSON renders the category as its display string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Impact is the coarse estimated-consequence label. It participates in
// ranking only as a raw label string tie-break.
type Impact int

const (
	ImpactHigh Impact = iota
	ImpactMedium
	ImpactLow
	ImpactNegligible
)

func (i Impact) String() string {
	switch i {
	case ImpactHigh:
		return "High Impact"
	case ImpactMedium:
		return "Medium Impact"
	case ImpactLow:
		return "Low Impact"
	default:
		return "Negligible"
	}
}

// MarshalJSON renders the impact as its display string.
func (i Impact) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// Kind distinguishes per-match rules from per-file threshold rules.
type Kind int

const (
	// KindMatch emits one finding per non-overlapping pattern match.
	KindMatch Kind = iota

	// KindThreshold counts occurrences across a whole file and emits a
	// single file-level finding when the count strictly exceeds Trigger.
	KindThreshold
)

// MatchSpec is a single pattern within a match rule. When Exclude is set,
// a match is kept only if the matched span itself does not also match
// Exclude. Patterns are written to capture the span the exclusion should
// be tested against (typically the rest of the line).
type MatchSpec struct {
	Pattern     *regexp.Regexp
	Exclude     *regexp.Regexp
	Description string
}

// Rule is one entry in the catalog. Rules are data: adding a check means
// adding a table row, never a new traversal.
type Rule struct {
	// Key uniquely identifies the rule (stable across runs, used in
	// reports and SARIF ruleId).
	Key string

	// Name is the human-readable finding name.
	Name string

	Kind     Kind
	Category Category
	Severity Severity
	Impact   Impact

	// Specs holds the patterns for KindMatch rules.
	Specs []MatchSpec

	// Count is the pattern counted for KindThreshold rules. When
	// CountLines is set the rule counts file lines instead.
	Count      *regexp.Regexp
	CountLines bool

	// Trigger is the threshold count; the rule fires only when the
	// observed count is strictly greater.
	Trigger int

	// Suppress quiets a threshold rule entirely when the whole file
	// content matches it.
	Suppress *regexp.Regexp

	// Description for threshold rules; may contain a single %d verb
	// which is replaced with the observed count.
	Description string

	// Recommendation is the remediation text attached to findings.
	Recommendation string

	// Extensions restricts the rule to files with one of these
	// extensions. Empty means every file the mode collects.
	Extensions []string

	// FilenameGate restricts the rule to files whose base name matches.
	FilenameGate *regexp.Regexp
}

// AppliesTo reports whether the rule is in scope for the given file name
// and extension.
func (r *Rule) AppliesTo(baseName, ext string) bool {
	if len(r.Extensions) > 0 {
		ok := false
		for _, e := range r.Extensions {
			if e == ext {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if r.FilenameGate != nil && !r.FilenameGate.MatchString(baseName) {
		return false
	}
	return true
}
