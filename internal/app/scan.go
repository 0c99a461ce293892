package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codepulse/internal/analyze"
	"github.com/blackwell-systems/codepulse/internal/config"
	"github.com/blackwell-systems/codepulse/internal/logging"
	"github.com/blackwell-systems/codepulse/internal/output"
	"github.com/blackwell-systems/codepulse/internal/report"
	"github.com/blackwell-systems/codepulse/internal/rules"
	"github.com/blackwell-systems/codepulse/internal/scan"
	"github.com/blackwell-systems/codepulse/internal/store"
)

// scanFlags holds the per-command flag values shared by perf and security.
type scanFlags struct {
	output    string
	formats   []string
	sarif     bool
	strategy  string
	top       int
	noHistory bool
}

// registerScanFlags wires the shared scan flags onto a command.
func registerScanFlags(cmd *cobra.Command, f *scanFlags, defaultStrategy analyze.Strategy) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output directory for reports")
	cmd.Flags().StringSliceVar(&f.formats, "format", nil, "Report formats: json, markdown (default: both)")
	cmd.Flags().BoolVar(&f.sarif, "sarif", false, "Also write a SARIF 2.1.0 report")
	cmd.Flags().StringVar(&f.strategy, "strategy", string(defaultStrategy), "Scoring strategy: weighted or deduction")
	cmd.Flags().IntVar(&f.top, "top", 0, "Number of top issues to report (default from config)")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "Do not record this scan in the history database")
}

// runScan executes a full scan in the given mode: collect, parallel scan,
// aggregate, export, snapshot, render. It returns an error only for the
// fatal cases: a bad project root before scanning starts, or an export
// failure after aggregation.
func runScan(mode rules.Mode, root string, f *scanFlags) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	strategy := analyze.Strategy(f.strategy)
	if !strategy.Valid() {
		return fmt.Errorf("unknown scoring strategy %q (want weighted or deduction)", f.strategy)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	log := logging.L()
	runner := &scan.Runner{
		Registry:    rules.ForMode(mode),
		Workers:     cfg.Workers,
		FileTimeout: time.Duration(cfg.FileTimeoutSeconds) * time.Second,
		ExcludeDirs: cfg.ExcludeDirs,
		Log:         log,
	}

	res, err := runner.Run(context.Background(), absRoot)
	if err != nil {
		return err
	}

	topK := f.top
	if topK <= 0 {
		topK = cfg.TopIssues
	}
	sum := analyze.Summarize(res, strategy, topK)
	doc := report.NewDocument(res, sum)

	// Reports are written only now, with the full finding set aggregated.
	outDir := f.output
	if outDir == "" {
		outDir = report.DefaultOutputDir(mode, absRoot)
	}
	written, err := writeReports(doc, mode, outDir, f)
	if err != nil {
		return err
	}

	if cfg.History && !f.noHistory {
		recordHistory(cfg.HistoryDB, res, sum)
	}

	if flagJSON {
		data, err := report.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	renderScanSummary(doc, written)
	return nil
}

// writeReports writes the selected report formats and returns the paths
// written. Any write failure is fatal: the output path was unusable.
func writeReports(doc report.Document, mode rules.Mode, outDir string, f *scanFlags) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	formats := f.formats
	if len(formats) == 0 {
		formats = config.DefaultFormats
	}
	wantJSON, wantMD := false, false
	for _, format := range formats {
		switch format {
		case "json":
			wantJSON = true
		case "markdown", "md":
			wantMD = true
		default:
			return nil, fmt.Errorf("unknown report format %q (want json or markdown)", format)
		}
	}

	now := time.Now()
	jsonName, mdName := report.FileNames(mode, now)

	var written []string
	if wantJSON {
		path := filepath.Join(outDir, jsonName)
		if err := report.WriteJSON(doc, path); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	if wantMD {
		path := filepath.Join(outDir, mdName)
		if err := report.WriteMarkdown(doc, path); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	if f.sarif {
		path := filepath.Join(outDir, report.SARIFName(mode, now))
		if err := report.WriteSARIF(doc, path, appVersion); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// recordHistory snapshots the scan summary. History is best-effort: a
// store failure is logged, never fatal, because the reports are already
// on disk.
func recordHistory(dbPath string, res *scan.Result, sum analyze.Summary) {
	db, err := store.Open(dbPath)
	if err != nil {
		logging.L().Warnw("opening history database", "path", dbPath, "error", err)
		return
	}
	defer db.Close()

	if _, err := db.InsertScan(res, sum); err != nil {
		logging.L().Warnw("recording scan history", "error", err)
	}
}

// renderScanSummary prints the console view: score bar, counts,
// recommendations, and where the reports landed.
func renderScanSummary(doc report.Document, written []string) {
	title := "Performance Analysis"
	if doc.Mode == rules.ModeSecurity {
		title = "Security Analysis"
	}
	fmt.Println(output.Section(title))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Score:"),
		output.ScoreBar(doc.Summary.Score, 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total issues:"),
		output.StyleValue.Render(fmt.Sprintf("%d", doc.Summary.TotalIssues)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Files scanned:"),
		output.StyleValue.Render(fmt.Sprintf("%d", doc.FilesScanned)))

	tbl := output.NewTable("Severity", "Count").AlignRight(1)
	for _, sev := range rules.Severities {
		style := output.SeverityStyle(sev.String())
		tbl.AddRow(style(sev.String()), fmt.Sprintf("%d", doc.Summary.SeverityCounts[sev.Key()]))
	}
	fmt.Println()
	tbl.Print()

	if len(doc.Summary.Recommendations) > 0 {
		fmt.Println(output.Section("Recommendations"))
		fmt.Println()
		for i, rec := range doc.Summary.Recommendations {
			fmt.Printf(" %d. %s\n", i+1, rec)
		}
	}

	fmt.Println()
	for _, path := range written {
		fmt.Printf(" %s %s\n", output.StyleMuted.Render("Report:"), path)
	}
	fmt.Println()
}
