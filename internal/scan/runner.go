package scan

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

// Runner drives a full scan: collect files, scan them on a bounded worker
// pool, and merge the per-file findings in collection order so the result
// is deterministic regardless of scheduling.
type Runner struct {
	// Registry is the rule catalog to apply.
	Registry *rules.Registry

	// Workers bounds the parallel scan phase. Zero means one worker per
	// available CPU.
	Workers int

	// FileTimeout bounds reading a single file. A timeout drops only
	// that file from the result set.
	FileTimeout time.Duration

	// ExcludeDirs lists directory names skipped during collection.
	ExcludeDirs []string

	Log *zap.SugaredLogger
}

// Run scans root and returns the complete result. It fails only when root
// is missing or not a directory; every per-file problem is logged and
// recovered.
func (r *Runner) Run(ctx context.Context, root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	log := r.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	files := Collect(root, r.Registry.Mode(), r.ExcludeDirs, log)
	log.Infow("collected files", "count", len(files), "mode", r.Registry.Mode())

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	timeout := r.FileTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	engine := NewEngine(r.Registry)

	// Each worker writes into its own slot; the slice itself is never
	// shared mutable state.
	perFile := make([][]Finding, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			content, err := readFileTimeout(gctx, f.Path, timeout)
			if err != nil {
				log.Warnw("skipping unreadable file", "file", f.Rel, "error", err)
				return nil
			}
			perFile[i] = engine.ScanFile(f.Rel, content)
			return nil
		})
	}
	// Workers recover every per-file failure, so Wait only fails on
	// context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []Finding
	for _, fs := range perFile {
		findings = append(findings, fs...)
	}

	return &Result{
		RunID:        uuid.NewString(),
		Timestamp:    time.Now(),
		ProjectPath:  root,
		Mode:         r.Registry.Mode(),
		FilesScanned: len(files),
		Findings:     findings,
	}, nil
}

// readFileTimeout reads a file with a deadline. The read itself runs in a
// goroutine because os.ReadFile cannot be interrupted; on timeout the
// goroutine is abandoned and its result discarded.
func readFileTimeout(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type readResult struct {
		content []byte
		err     error
	}
	ch := make(chan readResult, 1)
	go func() {
		content, err := os.ReadFile(path)
		ch <- readResult{content, err}
	}()

	select {
	case res := <-ch:
		return res.content, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
