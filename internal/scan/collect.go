package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/blackwell-systems/codepulse/internal/rules"
)

// File is one candidate file produced by collection.
type File struct {
	// Path is the absolute path on disk.
	Path string

	// Rel is the path relative to the scan root, using forward slashes.
	Rel string
}

// Collect walks root and returns the ordered list of files the given mode
// scans. Directory names in excludeDirs are skipped wherever they appear;
// performance mode additionally skips test directories. Unreadable
// directories are logged and skipped, never fatal. The returned order is
// the walk order, which is deterministic for a fixed tree, so collection
// is restartable by calling Collect again.
func Collect(root string, mode rules.Mode, excludeDirs []string, log *zap.SugaredLogger) []File {
	excluded := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		excluded[d] = true
	}

	exts := make(map[string]bool)
	for _, e := range mode.Extensions() {
		exts[e] = true
	}

	var files []File
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnw("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			if mode.SkipTestDirs() && isTestDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !exts[filepath.Ext(path)] {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		files = append(files, File{Path: path, Rel: filepath.ToSlash(rel)})
		return nil
	})

	return files
}

// isTestDir reports whether a directory name marks test code.
func isTestDir(name string) bool {
	return strings.Contains(name, "Tests") || name == "Test"
}
