package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codepulse/internal/output"
	"github.com/blackwell-systems/codepulse/internal/rules"
)

var rulesFlagMode string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog for a scan mode",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesFlagMode, "mode", "performance", "Catalog to list: performance or security")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	mode := rules.Mode(rulesFlagMode)
	if mode != rules.ModePerformance && mode != rules.ModeSecurity {
		return fmt.Errorf("unknown mode %q (want performance or security)", rulesFlagMode)
	}
	reg := rules.ForMode(mode)

	if flagJSON {
		type ruleInfo struct {
			Key      string `json:"key"`
			Name     string `json:"name"`
			Kind     string `json:"kind"`
			Category string `json:"category"`
			Severity string `json:"severity"`
			Patterns int    `json:"patterns"`
		}
		infos := make([]ruleInfo, 0, reg.Len())
		for _, r := range reg.Rules() {
			kind := "match"
			patterns := len(r.Specs)
			if r.Kind == rules.KindThreshold {
				kind = "threshold"
				patterns = 1
			}
			infos = append(infos, ruleInfo{
				Key:      r.Key,
				Name:     r.Name,
				Kind:     kind,
				Category: r.Category.String(),
				Severity: r.Severity.String(),
				Patterns: patterns,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Println(output.Section(fmt.Sprintf("Rule Catalog (%s)", mode)))
	fmt.Println()

	tbl := output.NewTable("Key", "Severity", "Category", "Kind", "Patterns").AlignRight(4)
	for _, r := range reg.Rules() {
		kind := "match"
		patterns := len(r.Specs)
		if r.Kind == rules.KindThreshold {
			kind = "threshold"
			patterns = 1
		}
		style := output.SeverityStyle(r.Severity.String())
		tbl.AddRow(r.Key, style(r.Severity.String()), r.Category.String(), kind, fmt.Sprintf("%d", patterns))
	}
	tbl.Print()
	fmt.Println()
	return nil
}
