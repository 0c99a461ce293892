package rules

import "regexp"

// viewFileGate restricts UI rules to files whose name suggests a view or
// view-model role.
var viewFileGate = regexp.MustCompile(`View`)

// performanceRules returns the ordered performance catalog. Go's regexp
// engine has no lookahead, so every "X not followed by Y" pattern is
// written to capture the rest of the statement and pairs it with an
// Exclude pattern tested against the matched span.
func performanceRules() []Rule {
	return []Rule{
		{
			Key:      "retain-cycle",
			Name:     "Retain Cycle Issue",
			Kind:     KindMatch,
			Category: CategoryMemory,
			Severity: SeverityHigh,
			Impact:   ImpactHigh,
			Specs: []MatchSpec{
				{
					Pattern:     regexp.MustCompile(`\{\s*\[self\]`),
					Description: "Strong self capture in closure",
				},
				{
					Pattern:     regexp.MustCompile(`Timer\.scheduledTimer[^\n]*target:\s*self`),
					Description: "Timer with strong self reference",
				},
				{
					Pattern:     regexp.MustCompile(`NotificationCenter\.default\.addObserver\(self[^\n]*`),
					Exclude:     regexp.MustCompile(`removeObserver`),
					Description: "Notification observer without removal",
				},
			},
			Recommendation: "Use [weak self] or [unowned self] to break retain cycles",
		},
		{
			Key:      "memory",
			Name:     "Memory Issue",
			Kind:     KindMatch,
			Category: CategoryMemory,
			Severity: SeverityMedium,
			Impact:   ImpactMedium,
			Specs: []MatchSpec{
				{
					Pattern:     regexp.MustCompile(`Data\(contentsOf:[^\n]*`),
					Exclude:     regexp.MustCompile(`async`),
					Description: "Synchronous data loading",
				},
				{
					Pattern:     regexp.MustCompile(`UIImage\(data:[^\n]*`),
					Exclude:     regexp.MustCompile(`async`),
					Description: "Synchronous image loading",
				},
				{
					Pattern:     regexp.MustCompile(`class\s+\w+[^\n]*\{`),
					Exclude:     regexp.MustCompile(`deinit`),
					Description: "Class without deinit",
				},
				{
					Pattern:     regexp.MustCompile(`\.copy\(\)[^\n]*`),
					Exclude:     regexp.MustCompile(`autoreleasepool`),
					Description: "Copy without autorelease pool",
				},
			},
			Recommendation: "Consider async operations or proper memory management",
		},
		{
			Key:      "concurrency",
			Name:     "Concurrency Issue",
			Kind:     KindMatch,
			Category: CategoryConcurrency,
			Severity: SeverityHigh,
			Impact:   ImpactHigh,
			Specs: []MatchSpec{
				{
					Pattern:     regexp.MustCompile(`DispatchQueue\.main\.sync`),
					Description: "Main thread blocking",
				},
				{
					Pattern:     regexp.MustCompile(`Task\.detached`),
					Description: "Unstructured concurrency",
				},
				{
					Pattern:     regexp.MustCompile(`@Published[^\n]*`),
					Exclude:     regexp.MustCompile(`@MainActor`),
					Description: "Published without MainActor",
				},
				{
					Pattern:     regexp.MustCompile(`DispatchSemaphore`),
					Description: "Semaphore usage (consider async/await)",
				},
				{
					Pattern:     regexp.MustCompile(`\.wait\(\)`),
					Description: "Blocking wait operation",
				},
			},
			Recommendation: "Use modern Swift concurrency features",
		},
		{
			Key:      "algorithm",
			Name:     "Algorithm Issue",
			Kind:     KindMatch,
			Category: CategoryAlgorithm,
			Severity: SeverityMedium,
			Impact:   ImpactMedium,
			Specs: []MatchSpec{
				{
					Pattern:     regexp.MustCompile(`for\s+\S+\s+in\s+[^\n{]*\{[^}]*for\s+\S+\s+in`),
					Description: "Nested loops detected",
				},
				{
					Pattern:     regexp.MustCompile(`\.sorted\(\)\.first`),
					Description: "Sorting for single element",
				},
				{
					Pattern:     regexp.MustCompile(`\.filter\([^\n)]*\)\.count\s*==\s*0`),
					Description: "Inefficient empty check",
				},
				{
					Pattern:     regexp.MustCompile(`\.map\([^\n]*\)\.filter\([^\n]*\)\.reduce`),
					Description: "Multiple collection operations",
				},
				{
					Pattern:     regexp.MustCompile(`Array\(repeating:[^\n]*count:\s*\d{4,}`),
					Description: "Large array allocation",
				},
			},
			Recommendation: "Optimize algorithm for better performance",
		},
		{
			Key:      "io",
			Name:     "I/O Issue",
			Kind:     KindMatch,
			Category: CategoryIO,
			Severity: SeverityMedium,
			Impact:   ImpactMedium,
			Specs: []MatchSpec{
				{
					Pattern:     regexp.MustCompile(`try\s+String\(contentsOf:[^\n]*`),
					Exclude:     regexp.MustCompile(`async`),
					Description: "Synchronous file reading",
				},
				{
					Pattern:     regexp.MustCompile(`try\s+Data\(contentsOf:[^\n]*`),
					Exclude:     regexp.MustCompile(`async`),
					Description: "Synchronous data loading",
				},
				{
					Pattern:     regexp.MustCompile(`UserDefaults\.standard\.\w+`),
					Description: "UserDefaults access",
				},
				{
					Pattern:     regexp.MustCompile(`FileManager\.default\.(?:createFile|removeItem|copyItem)[^\n]*`),
					Exclude:     regexp.MustCompile(`async`),
					Description: "Synchronous file operations",
				},
			},
			Recommendation: "Use async I/O operations",
		},
		{
			Key:          "ui",
			Name:         "UI Issue",
			Kind:         KindMatch,
			Category:     CategoryUI,
			Severity:     SeverityHigh,
			Impact:       ImpactHigh,
			FilenameGate: viewFileGate,
			Specs: []MatchSpec{
				{
					Pattern:     regexp.MustCompile(`\.onAppear\s*\{[^}]*\.(sorted|filter|map|reduce)`),
					Description: "Heavy operation in onAppear",
				},
				{
					Pattern:     regexp.MustCompile(`body\s*:\s*some\s+View\s*\{[^}]*for\s+\S+\s+in`),
					Description: "Loop in SwiftUI body",
				},
				{
					Pattern:     regexp.MustCompile(`\.task\s*\{[^\n]*`),
					Exclude:     regexp.MustCompile(`await`),
					Description: "Task without await",
				},
				{
					Pattern:     regexp.MustCompile(`Image\(uiImage:[^\n]*`),
					Exclude:     regexp.MustCompile(`async`),
					Description: "Synchronous image creation",
				},
			},
			Recommendation: "Move heavy operations out of UI code",
		},

		// Per-file threshold checks. These fire at most once per file and
		// carry no line number.
		{
			Key:            "userdefaults-churn",
			Name:           "Excessive UserDefaults Access",
			Kind:           KindThreshold,
			Category:       CategoryIO,
			Severity:       SeverityLow,
			Impact:         ImpactLow,
			Count:          regexp.MustCompile(`UserDefaults\.standard`),
			Trigger:        5,
			Description:    "File has %d UserDefaults accesses",
			Recommendation: "Cache UserDefaults values in properties",
		},
		{
			Key:            "large-file",
			Name:           "Large File",
			Kind:           KindThreshold,
			Category:       CategoryAlgorithm,
			Severity:       SeverityLow,
			Impact:         ImpactLow,
			CountLines:     true,
			Trigger:        500,
			Description:    "File has %d lines, consider splitting",
			Recommendation: "Break down into smaller, focused components",
		},
		{
			Key:            "sync-network",
			Name:           "Synchronous Network Call",
			Kind:           KindThreshold,
			Category:       CategoryNetwork,
			Severity:       SeverityCritical,
			Impact:         ImpactHigh,
			Count:          regexp.MustCompile(`URLSession`),
			Trigger:        0,
			Suppress:       regexp.MustCompile(`async`),
			Description:    "URLSession usage without async/await",
			Recommendation: "Use async/await for network operations",
		},
		{
			Key:            "force-unwrap",
			Name:           "Excessive Force Unwrapping",
			Kind:           KindThreshold,
			Category:       CategoryMemory,
			Severity:       SeverityMedium,
			Impact:         ImpactMedium,
			Count:          regexp.MustCompile(`!\s*[,\)\}\.]`),
			Trigger:        3,
			Description:    "Found %d force unwraps",
			Recommendation: "Use optional binding or nil-coalescing",
		},
	}
}
