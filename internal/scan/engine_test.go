package scan

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

func perfEngine() *Engine     { return NewEngine(rules.Performance()) }
func securityEngine() *Engine { return NewEngine(rules.Security()) }

func findByRule(findings []Finding, key string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.RuleKey == key {
			out = append(out, f)
		}
	}
	return out
}

func TestScanFile_LineNumbers(t *testing.T) {
	content := "import Foundation\nfunc load() {\nDispatchQueue.main.sync {}\n}\n"
	findings := findByRule(perfEngine().ScanFile("Loader.swift", []byte(content)), "concurrency")
	if len(findings) != 1 {
		t.Fatalf("got %d concurrency findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Line == nil || *f.Line != 3 {
		t.Errorf("line = %v, want 3", f.Line)
	}
	if f.Description != "Main thread blocking" {
		t.Errorf("description = %q", f.Description)
	}
}

func TestScanFile_MatchAtFileStart(t *testing.T) {
	content := "DispatchQueue.main.sync {}\n"
	findings := findByRule(perfEngine().ScanFile("A.swift", []byte(content)), "concurrency")
	if len(findings) != 1 || findings[0].Line == nil || *findings[0].Line != 1 {
		t.Fatalf("match at offset 0 should be line 1, got %+v", findings)
	}
}

func TestScanFile_ExclusionWithinSpan(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"sync load flagged", "let d = Data(contentsOf: url)\n", 1},
		{"async marker suppresses", "let d = Data(contentsOf: url) // async wrapper\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := findByRule(perfEngine().ScanFile("A.swift", []byte(tt.content)), "memory")
			if len(findings) != tt.want {
				t.Errorf("got %d memory findings, want %d: %+v", len(findings), tt.want, findings)
			}
		})
	}
}

func TestScanFile_MultipleRulesSameText(t *testing.T) {
	// A synchronous try Data(contentsOf:) trips both the memory rule and
	// the io rule; cross-rule findings are never deduplicated.
	content := "let d = try Data(contentsOf: url)\n"
	findings := perfEngine().ScanFile("A.swift", []byte(content))
	if len(findByRule(findings, "memory")) != 1 {
		t.Error("memory rule did not fire")
	}
	if len(findByRule(findings, "io")) != 1 {
		t.Error("io rule did not fire")
	}
}

func TestScanFile_ThresholdBoundary(t *testing.T) {
	atTrigger := strings.Repeat("UserDefaults.standard\n", 5)
	aboveTrigger := strings.Repeat("UserDefaults.standard\n", 6)

	if got := findByRule(perfEngine().ScanFile("A.swift", []byte(atTrigger)), "userdefaults-churn"); len(got) != 0 {
		t.Errorf("count == trigger should not fire, got %d findings", len(got))
	}

	got := findByRule(perfEngine().ScanFile("A.swift", []byte(aboveTrigger)), "userdefaults-churn")
	if len(got) != 1 {
		t.Fatalf("count == trigger+1 should fire exactly once, got %d", len(got))
	}
	f := got[0]
	if f.Line != nil {
		t.Errorf("threshold finding carries line %d, want none", *f.Line)
	}
	if f.Description != "File has 6 UserDefaults accesses" {
		t.Errorf("description = %q, want observed count interpolated", f.Description)
	}
}

func TestScanFile_ThresholdSuppression(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"URLSession without async", "let task = URLSession.shared.dataTask(with: url)\n", 1},
		{"URLSession with async", "let data = try await URLSession.shared.data(from: url) // async\n", 0},
		{"no URLSession", "let x = 1\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findByRule(perfEngine().ScanFile("Net.swift", []byte(tt.content)), "sync-network")
			if len(got) != tt.want {
				t.Fatalf("got %d sync-network findings, want %d", len(got), tt.want)
			}
			if tt.want == 1 {
				if got[0].Severity != rules.SeverityCritical || got[0].Category != rules.CategoryNetwork {
					t.Errorf("finding metadata = %v/%v, want Critical/Network", got[0].Severity, got[0].Category)
				}
				if got[0].Line != nil {
					t.Error("file-level finding should carry no line")
				}
			}
		})
	}
}

func TestScanFile_LargeFileThreshold(t *testing.T) {
	content := strings.Repeat("let x = 1\n", 501)
	got := findByRule(perfEngine().ScanFile("Big.swift", []byte(content)), "large-file")
	if len(got) != 1 {
		t.Fatalf("got %d large-file findings, want 1", len(got))
	}
	if !strings.Contains(got[0].Description, "502") {
		t.Errorf("description = %q, want line count 502", got[0].Description)
	}
}

func TestScanFile_FilenameGate(t *testing.T) {
	content := "var body: some View {\n  content.task { load() }\n}\n"
	if got := findByRule(perfEngine().ScanFile("HomeView.swift", []byte(content)), "ui"); len(got) == 0 {
		t.Error("ui rules should apply to a View file")
	}
	if got := findByRule(perfEngine().ScanFile("Repository.swift", []byte(content)), "ui"); len(got) != 0 {
		t.Errorf("ui rules fired on a non-view file: %+v", got)
	}
}

func TestScanFile_CredentialFalsePositive(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"placeholder key suppressed", `let apiKey = "YOUR_API_KEY"` + "\n", 0},
		{"example suppressed", `let apiKey = "example-1234"` + "\n", 0},
		{"real-looking key reported", `let apiKey = "zq8Hr2LmPw5v"` + "\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := securityEngine().ScanFile("Config.swift", []byte(tt.content))
			var creds []Finding
			for _, f := range findings {
				if f.Category == rules.CategoryCredentials {
					creds = append(creds, f)
				}
			}
			if tt.want == 0 && len(creds) != 0 {
				t.Errorf("expected suppression, got %+v", creds)
			}
			if tt.want > 0 && len(creds) == 0 {
				t.Error("expected credential finding, got none")
			}
		})
	}
}

func TestScanFile_SnippetBounded(t *testing.T) {
	long := "let apiKey = \"" + strings.Repeat("z1x2c3v4b5", 30) + "\"\n"
	findings := securityEngine().ScanFile("Config.swift", []byte(long))
	for _, f := range findings {
		if len(f.Snippet) > 100 {
			t.Errorf("snippet length %d exceeds bound for rule %s", len(f.Snippet), f.RuleKey)
		}
	}
}

func TestScanFile_ExtensionScoping(t *testing.T) {
	// SQL concatenation in a JSON file: credential rules apply to .json
	// but vulnerability rules do not.
	content := `{"q": "SELECT * FROM users WHERE id=" + userID}` + "\n"
	findings := securityEngine().ScanFile("query.json", []byte(content))
	if got := findByRule(findings, "vuln-sql-injection"); len(got) != 0 {
		t.Errorf("vulnerability rule fired on .json file: %+v", got)
	}
	swiftFindings := securityEngine().ScanFile("Query.swift", []byte(content))
	if got := findByRule(swiftFindings, "vuln-sql-injection"); len(got) != 1 {
		t.Errorf("got %d sql-injection findings on .swift, want 1", len(got))
	}
}

func TestScanFile_DebugFlagCaseInsensitive(t *testing.T) {
	for _, content := range []string{
		"DEBUG = true\n",
		"debug = true\n",
		"Debug = YES\n",
	} {
		got := findByRule(securityEngine().ScanFile("Build.swift", []byte(content)), "vuln-debug-enabled")
		if len(got) != 1 {
			t.Errorf("debug flag %q: got %d findings, want 1", strings.TrimSpace(content), len(got))
		}
	}
}

func TestScanFile_SensitiveMemoryClearing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"uncleared secret", "var password = readSecret()\n", 1},
		{"cleared with bzero", "var password = readSecret(); bzero(&password, n)\n", 0},
		{"cleared with memset", "var token = load(); memset(&token, 0, n)\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findByRule(securityEngine().ScanFile("Vault.swift", []byte(tt.content)), "mem-not-cleared")
			if len(got) != tt.want {
				t.Errorf("got %d findings, want %d: %+v", len(got), tt.want, got)
			}
		})
	}
}

// Inventory rules surface which crypto and auth mechanisms a file uses.
// They are Info severity and never contribute to the score.
func TestScanFile_InventoryRules(t *testing.T) {
	content := "import CryptoKit\nlet ctx = LAContext()\n"
	findings := securityEngine().ScanFile("Auth.swift", []byte(content))

	enc := findByRule(findings, "info-encryption")
	if len(enc) != 1 {
		t.Fatalf("got %d encryption findings, want 1", len(enc))
	}
	if enc[0].Severity != rules.SeverityInfo || enc[0].Description != "Using CryptoKit (recommended)" {
		t.Errorf("encryption finding = %v %q", enc[0].Severity, enc[0].Description)
	}

	auth := findByRule(findings, "info-authentication")
	if len(auth) != 1 {
		t.Fatalf("got %d authentication findings, want 1", len(auth))
	}
	if auth[0].Description != "Biometric authentication in use" {
		t.Errorf("authentication description = %q", auth[0].Description)
	}
}

func TestScanFile_Deterministic(t *testing.T) {
	content := "DispatchQueue.main.sync {}\nlet d = try Data(contentsOf: url)\nTask.detached {}\n"
	first := perfEngine().ScanFile("A.swift", []byte(content))
	second := perfEngine().ScanFile("A.swift", []byte(content))
	if len(first) != len(second) {
		t.Fatalf("scan counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].RuleKey != second[i].RuleKey || *first[i].Line != *second[i].Line {
			t.Errorf("finding %d differs between scans", i)
		}
	}
}
