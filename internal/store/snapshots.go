package store

import (
	"time"

	"github.com/blackwell-systems/codepulse/internal/analyze"
	"github.com/blackwell-systems/codepulse/internal/scan"
)

// ScanRecord is one stored scan summary.
type ScanRecord struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id"`
	TakenAt      time.Time `json:"taken_at"`
	Mode         string    `json:"mode"`
	Project      string    `json:"project"`
	Strategy     string    `json:"strategy"`
	Score        float64   `json:"score"`
	TotalIssues  int       `json:"total_issues"`
	Critical     int       `json:"critical"`
	High         int       `json:"high"`
	Medium       int       `json:"medium"`
	Low          int       `json:"low"`
	Info         int       `json:"info"`
	FilesScanned int       `json:"files_scanned"`
}

// InsertScan stores the summary of a completed scan and returns its row ID.
func (db *DB) InsertScan(res *scan.Result, sum analyze.Summary) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO scans
		(run_id, taken_at, mode, project, strategy, score, total_issues,
		 critical, high, medium, low, info, files_scanned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID,
		res.Timestamp.UTC().Format(time.RFC3339),
		string(res.Mode),
		res.ProjectPath,
		string(sum.Strategy),
		sum.Score,
		sum.TotalIssues,
		sum.SeverityCounts["critical"],
		sum.SeverityCounts["high"],
		sum.SeverityCounts["medium"],
		sum.SeverityCounts["low"],
		sum.SeverityCounts["info"],
		res.FilesScanned,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// RecentScans returns the most recent stored scans, newest first. An empty
// mode returns scans from both modes.
func (db *DB) RecentScans(mode string, limit int) ([]ScanRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, run_id, taken_at, mode, project, strategy, score, total_issues,
		critical, high, medium, low, info, files_scanned
		FROM scans`
	args := []any{}
	if mode != "" {
		query += " WHERE mode = ?"
		args = append(args, mode)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var r ScanRecord
		var takenAt string
		if err := rows.Scan(&r.ID, &r.RunID, &takenAt, &r.Mode, &r.Project, &r.Strategy,
			&r.Score, &r.TotalIssues, &r.Critical, &r.High, &r.Medium, &r.Low, &r.Info,
			&r.FilesScanned); err != nil {
			return nil, err
		}
		r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// PreviousScan returns the stored scan immediately preceding the given row
// for the same mode and project, or nil if none exists. Used for trend
// deltas in the history view.
func (db *DB) PreviousScan(rec ScanRecord) (*ScanRecord, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_id, taken_at, mode, project, strategy, score, total_issues,
		 critical, high, medium, low, info, files_scanned
		 FROM scans WHERE mode = ? AND project = ? AND id < ?
		 ORDER BY id DESC LIMIT 1`,
		rec.Mode, rec.Project, rec.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var r ScanRecord
	var takenAt string
	if err := rows.Scan(&r.ID, &r.RunID, &takenAt, &r.Mode, &r.Project, &r.Strategy,
		&r.Score, &r.TotalIssues, &r.Critical, &r.High, &r.Medium, &r.Low, &r.Info,
		&r.FilesScanned); err != nil {
		return nil, err
	}
	r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &r, nil
}
