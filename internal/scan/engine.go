package scan

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

// Engine applies a rule registry to file content. Scanning one file is a
// pure function of (content, registry), which is what makes the parallel
// phase in Runner safe without locking.
type Engine struct {
	reg *rules.Registry
}

// NewEngine creates an engine over the given registry.
func NewEngine(reg *rules.Registry) *Engine {
	return &Engine{reg: reg}
}

// ScanFile evaluates every in-scope rule against content and returns the
// findings in rule order, then match position. relPath is recorded on each
// finding.
func (e *Engine) ScanFile(relPath string, content []byte) []Finding {
	base := filepath.Base(relPath)
	ext := filepath.Ext(relPath)

	var findings []Finding
	for i := range e.reg.Rules() {
		rule := &e.reg.Rules()[i]
		if !rule.AppliesTo(base, ext) {
			continue
		}
		switch rule.Kind {
		case rules.KindThreshold:
			if f, ok := evalThreshold(rule, relPath, content); ok {
				findings = append(findings, f)
			}
		default:
			findings = append(findings, evalMatches(rule, relPath, content)...)
		}
	}
	return findings
}

// evalMatches emits one finding per non-overlapping match of each spec.
// Matches whose span also matches the spec's exclusion pattern are
// dropped, as are credential matches caught by the false-positive filter.
func evalMatches(rule *rules.Rule, relPath string, content []byte) []Finding {
	var findings []Finding
	for _, spec := range rule.Specs {
		for _, loc := range spec.Pattern.FindAllIndex(content, -1) {
			matched := content[loc[0]:loc[1]]
			if spec.Exclude != nil && spec.Exclude.Match(matched) {
				continue
			}
			if rule.Category == rules.CategoryCredentials && IsLikelyFalsePositive(string(matched)) {
				continue
			}
			line := lineAt(content, loc[0])
			findings = append(findings, Finding{
				RuleKey:        rule.Key,
				Name:           rule.Name,
				Category:       rule.Category,
				Severity:       rule.Severity,
				Impact:         rule.Impact,
				File:           relPath,
				Line:           &line,
				Snippet:        truncate(string(matched), maxSnippetLen),
				Description:    spec.Description,
				Recommendation: rule.Recommendation,
			})
		}
	}
	return findings
}

// evalThreshold counts occurrences across the whole file and fires exactly
// once when the count strictly exceeds the trigger. The finding is
// file-level: it carries no line number.
func evalThreshold(rule *rules.Rule, relPath string, content []byte) (Finding, bool) {
	if rule.Suppress != nil && rule.Suppress.Match(content) {
		return Finding{}, false
	}

	var count int
	if rule.CountLines {
		count = bytes.Count(content, []byte{'\n'}) + 1
	} else {
		count = len(rule.Count.FindAllIndex(content, -1))
	}
	if count <= rule.Trigger {
		return Finding{}, false
	}

	desc := rule.Description
	if strings.Contains(desc, "%d") {
		desc = fmt.Sprintf(desc, count)
	}
	return Finding{
		RuleKey:        rule.Key,
		Name:           rule.Name,
		Category:       rule.Category,
		Severity:       rule.Severity,
		Impact:         rule.Impact,
		File:           relPath,
		Description:    desc,
		Recommendation: rule.Recommendation,
	}, true
}

// lineAt returns the 1-based line number of a byte offset: the count of
// newlines strictly before the offset, plus one.
func lineAt(content []byte, offset int) int {
	return bytes.Count(content[:offset], []byte{'\n'}) + 1
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
