package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codepulse/internal/analyze"
	"github.com/blackwell-systems/codepulse/internal/rules"
)

var perfFlags scanFlags

var perfCmd = &cobra.Command{
	Use:   "perf <project-root>",
	Short: "Scan a project for performance anti-patterns",
	Long: `Perf scans Swift sources under the project root for performance
anti-patterns: retain cycles, blocking calls on the main thread,
synchronous I/O, heavy work in view code, and per-file churn thresholds.
Test directories are skipped. Reports land in <root>/performance_analysis
unless -o is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(rules.ModePerformance, args[0], &perfFlags)
	},
}

func init() {
	registerScanFlags(perfCmd, &perfFlags, analyze.StrategyWeighted)
	rootCmd.AddCommand(perfCmd)
}
