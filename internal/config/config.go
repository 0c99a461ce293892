package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level codepulse configuration.
type Config struct {
	// ExcludeDirs are directory names skipped during file collection.
	ExcludeDirs []string `mapstructure:"exclude_dirs"`

	// Workers bounds the parallel scan phase; 0 means one per CPU.
	Workers int `mapstructure:"workers"`

	// FileTimeoutSeconds bounds a single file read.
	FileTimeoutSeconds int `mapstructure:"file_timeout_seconds"`

	// TopIssues is the number of findings surfaced as headline issues.
	TopIssues int `mapstructure:"top_issues"`

	// Formats selects report outputs: json, markdown, or both.
	Formats []string `mapstructure:"formats"`

	// History controls whether scan summaries are snapshotted to SQLite.
	History bool `mapstructure:"history"`

	// HistoryDB overrides the history database path.
	HistoryDB string `mapstructure:"history_db"`
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("exclude_dirs", DefaultExcludeDirs)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("file_timeout_seconds", DefaultFileTimeoutSeconds)
	v.SetDefault("top_issues", DefaultTopIssues)
	v.SetDefault("formats", DefaultFormats)
	v.SetDefault("history", DefaultHistory)
	v.SetDefault("history_db", "")

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HistoryDB != "" {
		cfg.HistoryDB = expandPath(cfg.HistoryDB)
	} else {
		cfg.HistoryDB = DBPath()
	}

	return &cfg, nil
}

// DBPath returns the default path to the history SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
