// Package logging configures the process-wide zap logger. Scan warnings
// (unreadable files, timeouts, history store failures) all flow through
// it; at the default level only warnings and errors reach the terminal so
// report output stays clean.
package logging

import "go.uber.org/zap"

var log = zap.NewNop().Sugar()

// Init builds the global logger. Verbose enables development output at
// debug level; otherwise production output is kept at warn level.
func Init(verbose bool) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	log = logger.Sugar()
	return nil
}

// L returns the global sugared logger. Safe to call before Init; it
// returns a no-op logger until Init succeeds.
func L() *zap.SugaredLogger {
	return log
}
