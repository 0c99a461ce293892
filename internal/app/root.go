// Package app contains the Cobra command tree for codepulse.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codepulse/internal/logging"
	"github.com/blackwell-systems/codepulse/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "codepulse",
	Short: "Pattern-based performance and security scanning for source trees",
	Long: `codepulse scans a source tree for textual patterns that indicate
performance or security weaknesses and produces a scored, ranked report.
Detection is pattern matching over raw file content, never AST parsing,
trading precision for simplicity and file-type independence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(flagVerbose); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		output.AutoDetect()
		if flagNoColor {
			output.SetNoColor(true)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("codepulse", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  perf      Scan a project for performance anti-patterns")
		fmt.Println("  security  Scan a project for security weaknesses")
		fmt.Println("  rules     List the rule catalog for a scan mode")
		fmt.Println("  history   Show stored scan scores over time")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/codepulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
