// Package config provides configuration loading and defaults for codepulse.
package config

// DefaultConfigDir is the default location for codepulse configuration.
const DefaultConfigDir = "~/.config/codepulse"

// DefaultDBName is the filename for the scan-history SQLite database.
const DefaultDBName = "codepulse.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultExcludeDirs are directory names never scanned: VCS metadata,
// build caches, and vendored package checkouts.
var DefaultExcludeDirs = []string{
	".git", ".svn", ".hg",
	".build", "DerivedData",
	"Pods", "node_modules",
}

// DefaultTopIssues is the number of findings surfaced in the top-issue list.
const DefaultTopIssues = 5

// DefaultWorkers of zero sizes the scan pool to the available parallelism.
const DefaultWorkers = 0

// DefaultFileTimeoutSeconds bounds a single file read.
const DefaultFileTimeoutSeconds = 10

// DefaultFormats are the report formats written when none are selected.
var DefaultFormats = []string{"json", "markdown"}

// DefaultHistory controls whether scan summaries are stored in the
// history database.
const DefaultHistory = true
