package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codepulse/internal/config"
	"github.com/blackwell-systems/codepulse/internal/output"
	"github.com/blackwell-systems/codepulse/internal/store"
)

var (
	historyFlagLimit int
	historyFlagMode  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored scan scores over time",
	Long: `History lists recent scan summaries from the local history
database, with a trend arrow comparing each scan's score to the previous
scan of the same project and mode.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 10, "Number of scans to show")
	historyCmd.Flags().StringVar(&historyFlagMode, "mode", "", "Filter by mode: performance or security")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	records, err := db.RecentScans(historyFlagMode, historyFlagLimit)
	if err != nil {
		return fmt.Errorf("reading scan history: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println(output.StyleMuted.Render("No scans recorded yet."))
		return nil
	}

	fmt.Println(output.Section("Scan History"))
	fmt.Println()

	tbl := output.NewTable("When", "Mode", "Project", "Score", "Trend", "Issues").AlignRight(3, 5)
	for _, rec := range records {
		trend := output.StyleMuted.Render("─")
		if prev, err := db.PreviousScan(rec); err == nil && prev != nil {
			trend = output.TrendArrow(rec.Score - prev.Score)
		}
		tbl.AddRow(
			rec.TakenAt.Local().Format("2006-01-02 15:04"),
			rec.Mode,
			rec.Project,
			fmt.Sprintf("%.1f", rec.Score),
			trend,
			fmt.Sprintf("%d", rec.TotalIssues),
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}
