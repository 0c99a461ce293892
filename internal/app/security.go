package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codepulse/internal/analyze"
	"github.com/blackwell-systems/codepulse/internal/rules"
)

var securityFlags scanFlags

var securityCmd = &cobra.Command{
	Use:   "security <project-root>",
	Short: "Scan a project for security weaknesses",
	Long: `Security scans source and configuration files under the project
root for hardcoded credentials, injection-prone string building, weak
cryptography, and transport security misconfiguration. Credential matches
that look like placeholders or fixtures are suppressed. Reports are
written as security_analysis.json and SECURITY_ANALYSIS_REPORT.md in the
project root unless -o is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(rules.ModeSecurity, args[0], &securityFlags)
	},
}

func init() {
	registerScanFlags(securityCmd, &securityFlags, analyze.StrategyDeduction)
	rootCmd.AddCommand(securityCmd)
}
