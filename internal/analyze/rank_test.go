package analyze

import (
	"testing"

	"github.com/blackwell-systems/codepulse/internal/rules"
	"github.com/blackwell-systems/codepulse/internal/scan"
)

func rankedFinding(key string, sev rules.Severity, impact rules.Impact) scan.Finding {
	return scan.Finding{RuleKey: key, Severity: sev, Impact: impact}
}

func keys(findings []scan.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.RuleKey
	}
	return out
}

func TestTopIssues_SeverityFirst(t *testing.T) {
	in := []scan.Finding{
		rankedFinding("low", rules.SeverityLow, rules.ImpactLow),
		rankedFinding("crit", rules.SeverityCritical, rules.ImpactHigh),
		rankedFinding("med", rules.SeverityMedium, rules.ImpactMedium),
		rankedFinding("high", rules.SeverityHigh, rules.ImpactHigh),
	}
	got := keys(TopIssues(in, 10))
	want := []string{"crit", "high", "med", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// Within a severity the impact label is compared as a plain string, so
// "High Impact" sorts before "Low Impact" which sorts before
// "Medium Impact".
func TestTopIssues_ImpactLabelTieBreak(t *testing.T) {
	in := []scan.Finding{
		rankedFinding("medium-impact", rules.SeverityHigh, rules.ImpactMedium),
		rankedFinding("low-impact", rules.SeverityHigh, rules.ImpactLow),
		rankedFinding("high-impact", rules.SeverityHigh, rules.ImpactHigh),
	}
	got := keys(TopIssues(in, 10))
	want := []string{"high-impact", "low-impact", "medium-impact"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTopIssues_ExactTiesKeepDiscoveryOrder(t *testing.T) {
	in := []scan.Finding{
		rankedFinding("first", rules.SeverityMedium, rules.ImpactMedium),
		rankedFinding("second", rules.SeverityMedium, rules.ImpactMedium),
		rankedFinding("third", rules.SeverityMedium, rules.ImpactMedium),
	}
	got := keys(TopIssues(in, 10))
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTopIssues_Truncates(t *testing.T) {
	in := []scan.Finding{
		rankedFinding("a", rules.SeverityLow, rules.ImpactLow),
		rankedFinding("b", rules.SeverityCritical, rules.ImpactHigh),
		rankedFinding("c", rules.SeverityHigh, rules.ImpactHigh),
	}
	got := TopIssues(in, 2)
	if len(got) != 2 {
		t.Fatalf("length = %d, want 2", len(got))
	}
	if got[0].RuleKey != "b" || got[1].RuleKey != "c" {
		t.Fatalf("top two = %v", keys(got))
	}
}

func TestTopIssues_DoesNotMutateInput(t *testing.T) {
	in := []scan.Finding{
		rankedFinding("low", rules.SeverityLow, rules.ImpactLow),
		rankedFinding("crit", rules.SeverityCritical, rules.ImpactHigh),
	}
	_ = TopIssues(in, 10)
	if in[0].RuleKey != "low" || in[1].RuleKey != "crit" {
		t.Fatalf("input reordered: %v", keys(in))
	}
}
