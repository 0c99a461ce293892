package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Workers != DefaultWorkers {
		t.Fatalf("Workers = %d, want %d", cfg.Workers, DefaultWorkers)
	}
	if cfg.TopIssues != DefaultTopIssues {
		t.Fatalf("TopIssues = %d, want %d", cfg.TopIssues, DefaultTopIssues)
	}
	if !cfg.History {
		t.Fatal("History should default on")
	}
	if len(cfg.ExcludeDirs) != len(DefaultExcludeDirs) {
		t.Fatalf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
	if cfg.HistoryDB == "" {
		t.Fatal("HistoryDB should fall back to the default path")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
workers: 2
top_issues: 3
history: false
formats:
  - json
exclude_dirs:
  - .git
  - vendor
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Workers != 2 || cfg.TopIssues != 3 || cfg.History {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "json" {
		t.Fatalf("Formats = %v", cfg.Formats)
	}
	if len(cfg.ExcludeDirs) != 2 || cfg.ExcludeDirs[1] != "vendor" {
		t.Fatalf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
	// Untouched keys keep their defaults.
	if cfg.FileTimeoutSeconds != DefaultFileTimeoutSeconds {
		t.Fatalf("FileTimeoutSeconds = %d", cfg.FileTimeoutSeconds)
	}
}
