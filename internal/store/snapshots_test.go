package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/blackwell-systems/codepulse/internal/analyze"
	"github.com/blackwell-systems/codepulse/internal/rules"
	"github.com/blackwell-systems/codepulse/internal/scan"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertSample(t *testing.T, db *DB, mode, project string, score float64, n int) int64 {
	t.Helper()
	res := &scan.Result{
		RunID:        fmt.Sprintf("run-%s-%d", mode, n),
		Timestamp:    time.Date(2026, 5, 1, 12, 0, n, 0, time.UTC),
		ProjectPath:  project,
		Mode:         rules.Mode(mode),
		FilesScanned: 12,
	}
	sum := analyze.Summary{
		Score:       score,
		Strategy:    analyze.StrategyWeighted,
		TotalIssues: 3,
		SeverityCounts: map[string]int{
			"critical": 0, "high": 2, "medium": 1, "low": 0, "info": 0,
		},
	}
	id, err := db.InsertScan(res, sum)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestInsertAndRecentScans(t *testing.T) {
	db := openTestDB(t)

	insertSample(t, db, "performance", "/proj", 80, 1)
	insertSample(t, db, "security", "/proj", 60, 2)
	insertSample(t, db, "performance", "/proj", 90, 3)

	all, err := db.RecentScans("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	// Newest first.
	if all[0].Score != 90 || all[2].Score != 80 {
		t.Fatalf("order wrong: %+v", all)
	}

	rec := all[0]
	if rec.Mode != "performance" || rec.High != 2 || rec.Medium != 1 ||
		rec.TotalIssues != 3 || rec.FilesScanned != 12 {
		t.Fatalf("record = %+v", rec)
	}
	if rec.TakenAt.IsZero() {
		t.Fatal("taken_at not round-tripped")
	}
}

func TestRecentScans_ModeFilterAndLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		insertSample(t, db, "performance", "/proj", float64(50+i), i)
	}
	insertSample(t, db, "security", "/proj", 42, 9)

	perf, err := db.RecentScans("performance", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(perf) != 3 {
		t.Fatalf("got %d records, want 3", len(perf))
	}
	for _, r := range perf {
		if r.Mode != "performance" {
			t.Fatalf("mode filter leaked %q", r.Mode)
		}
	}
}

func TestPreviousScan(t *testing.T) {
	db := openTestDB(t)

	firstID := insertSample(t, db, "performance", "/proj", 70, 1)
	insertSample(t, db, "performance", "/other", 55, 2)
	insertSample(t, db, "security", "/proj", 40, 3)
	lastID := insertSample(t, db, "performance", "/proj", 85, 4)

	recent, err := db.RecentScans("performance", 1)
	if err != nil {
		t.Fatal(err)
	}
	if recent[0].ID != lastID {
		t.Fatalf("latest id = %d, want %d", recent[0].ID, lastID)
	}

	// Only the same mode and project counts as the predecessor.
	prev, err := db.PreviousScan(recent[0])
	if err != nil {
		t.Fatal(err)
	}
	if prev == nil || prev.ID != firstID {
		t.Fatalf("previous = %+v, want id %d", prev, firstID)
	}
	if prev.Score != 70 {
		t.Fatalf("previous score = %v, want 70", prev.Score)
	}

	// The earliest row has no predecessor.
	none, err := db.PreviousScan(*prev)
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Fatalf("expected no predecessor, got %+v", none)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := t.TempDir() + "/nested/history/codepulse.db"
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.RecentScans("", 5); err != nil {
		t.Fatal(err)
	}
}
