package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nao1215/readscore/internal/config"
	"github.com/nao1215/readscore/internal/database"
	"github.com/nao1215/readscore/internal/model"
	"github.com/spf13/cobra"
)

// Readability direction labels for comparison summaries.
const (
	directionEasier    = "easier"
	directionHarder    = "harder"
	directionUnchanged = "unchanged"
)

// NewHistoryCmd creates the history command.
// This command compares analysis results with historical data stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [file]",
		Short: "Compare analysis results with historical data",
		Long: `History displays differences between the current and previous analyses
of a text file.

This command retrieves stored reports from the database and shows how
the readability scores and the estimated reader age changed between
revisions of the text. It requires at least two stored analyses for the
specified file. Use 'readscore score' to analyze and save results.

Examples:
  # Compare the latest two analyses of a file
  readscore history essay.txt

  # List all stored analyses for a file
  readscore history --list essay.txt

  # Compare with a specific stored analysis by ID
  readscore history --with-id 5 essay.txt

  # Output comparison in JSON format
  readscore history --json essay.txt

  # List all analyzed files in the database
  readscore history --list-sources`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List stored analyses for the specified file")
	cmd.Flags().BoolP("list-sources", "L", false,
		"List all analyzed files in the database")

	// Comparison target flags
	cmd.Flags().Int64P("with-id", "i", 0,
		"Compare with a specific analysis by ID (use --list to see available IDs)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	// Handle --list-sources flag first (requires database but no file)
	listSources, err := cmd.Flags().GetBool("list-sources")
	if err != nil {
		return err
	}

	// Validate arguments before opening database (unless --list-sources).
	// This prevents database lock issues when validation fails.
	var source string
	if !listSources {
		if len(args) == 0 {
			return errors.New("file path is required (use --list-sources to see analyzed files)")
		}
		source = args[0]
	}

	// Use XDG data directory for database
	dbDir := config.XDGDataDir()

	// Open database
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Handle --list-sources flag
	if listSources {
		return listAnalyzedSources(ctx, cmd, db)
	}

	// Handle --list flag
	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listSourceHistory(ctx, cmd, db, source)
	}

	// Get output format flags
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// Get comparison target flags
	withID, err := cmd.Flags().GetInt64("with-id")
	if err != nil {
		return err
	}

	// Perform comparison
	return runComparison(ctx, cmd, db, source, withID, jsonOutput)
}

// listAnalyzedSources lists all files that have stored reports in the database.
func listAnalyzedSources(ctx context.Context, cmd *cobra.Command, db *database.ScoreDB) error {
	sources, err := db.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sources) == 0 {
		fmt.Fprintln(out, "No analyzed files found in the database.")
		fmt.Fprintln(out, "\nUse 'readscore score <file>' to analyze a text.")
		return nil
	}

	fmt.Fprintf(out, "Analyzed files (%d):\n\n", len(sources))
	for _, source := range sources {
		fmt.Fprintf(out, "  • %s\n", source)
	}
	fmt.Fprintln(out, "\nUse 'readscore history --list <file>' to see the history for a file.")

	return nil
}

// listSourceHistory lists all stored analyses for a specific file.
func listSourceHistory(ctx context.Context, cmd *cobra.Command, db *database.ScoreDB, source string) error {
	metas, err := db.GetHistoryWithMetadata(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(metas) == 0 {
		fmt.Fprintf(out, "No history found for %s\n", source)
		fmt.Fprintln(out, "\nUse 'readscore score' to analyze this file.")
		return nil
	}

	fmt.Fprintf(out, "History for %s (%d analyses):\n\n", source, len(metas))
	fmt.Fprintf(out, "  %-6s  %-20s  %-8s  %-10s  %s\n", "ID", "Date", "Words", "Sentences", "Avg Age")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))

	for _, meta := range metas {
		fmt.Fprintf(out, "  %-6d  %-20s  %-8d  %-10d  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.Words,
			meta.Sentences,
			formatAverageAge(meta.AverageAge),
		)
	}

	fmt.Fprintln(out, "\nUse 'readscore history <file>' to compare the latest two analyses.")
	fmt.Fprintln(out, "Use 'readscore history --with-id <id> <file>' to compare with a specific analysis.")

	return nil
}

// formatAverageAge formats an averaged age, using a dash for single-metric
// runs where no average was computed.
func formatAverageAge(age float64) string {
	if age == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", age)
}

// runComparison performs the actual comparison between stored reports.
func runComparison(ctx context.Context, cmd *cobra.Command, db *database.ScoreDB, source string, withID int64, jsonOutput bool) error {
	reports, err := db.GetHistory(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no history found for %s", source)
	}

	if len(reports) < 2 && withID == 0 {
		return fmt.Errorf("at least 2 analyses are required for comparison (found %d)", len(reports))
	}

	// Latest report is always the current one
	current := reports[0]

	var previous *model.Report
	if withID > 0 {
		previous, err = db.GetReportByID(ctx, withID)
		if err != nil {
			return fmt.Errorf("failed to get analysis with ID %d: %w", withID, err)
		}
		if previous == nil {
			return fmt.Errorf("analysis with ID %d not found", withID)
		}
		// Validate that the ID belongs to the same file
		if previous.Source != source {
			return fmt.Errorf("analysis ID %d belongs to %s, not %s", withID, previous.Source, source)
		}
	} else {
		previous = reports[1]
	}

	comparison := compareReports(previous, current)

	if jsonOutput {
		return outputComparisonJSON(cmd, comparison)
	}
	return outputComparisonText(cmd, comparison)
}

// ComparisonResult holds the result of comparing two stored reports.
type ComparisonResult struct {
	// Source is the analyzed file path.
	Source string `json:"source"`

	// Previous contains metadata about the older analysis.
	Previous ReportSummary `json:"previous"`

	// Current contains metadata about the newer analysis.
	Current ReportSummary `json:"current"`

	// ScoreChanges contains per-metric score deltas. Metrics with
	// non-finite scores on either side are omitted.
	ScoreChanges []ScoreChange `json:"score_changes,omitempty"`

	// AverageAgeDelta is the change in averaged reader age.
	// Zero when either analysis was a single-metric run.
	AverageAgeDelta float64 `json:"average_age_delta"`

	// Direction is "easier", "harder", or "unchanged".
	Direction string `json:"direction"`
}

// ReportSummary contains metadata about one analysis for comparison display.
type ReportSummary struct {
	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Words is the word count of the analyzed text.
	Words int `json:"words"`

	// Sentences is the sentence count of the analyzed text.
	Sentences int `json:"sentences"`

	// AverageAge is the averaged reader age; zero for single-metric runs.
	AverageAge float64 `json:"average_age"`
}

// ScoreChange describes how one metric's score moved between analyses.
type ScoreChange struct {
	// Metric is the metric's command token.
	Metric string `json:"metric"`

	// Previous is the older score.
	Previous float64 `json:"previous"`

	// Current is the newer score.
	Current float64 `json:"current"`

	// Delta is Current - Previous.
	Delta float64 `json:"delta"`
}

// compareReports compares two stored reports and generates a comparison result.
func compareReports(previous, current *model.Report) *ComparisonResult {
	result := &ComparisonResult{
		Source: current.Source,
		Previous: ReportSummary{
			DateAnalyzed: previous.DateAnalyzed,
			Words:        previous.Statistics.Words,
			Sentences:    previous.Statistics.Sentences,
			AverageAge:   previous.AverageAge,
		},
		Current: ReportSummary{
			DateAnalyzed: current.DateAnalyzed,
			Words:        current.Statistics.Words,
			Sentences:    current.Statistics.Sentences,
			AverageAge:   current.AverageAge,
		},
	}

	// Per-metric deltas for metrics present in both analyses.
	// Non-finite scores (from degenerate texts) are skipped because they
	// have no meaningful delta and cannot be serialized to JSON.
	for _, cur := range current.Results {
		prev := previous.Result(cur.Metric)
		if prev == nil {
			continue
		}
		if !isFinite(prev.Score) || !isFinite(cur.Score) {
			continue
		}
		result.ScoreChanges = append(result.ScoreChanges, ScoreChange{
			Metric:   cur.Metric.Token(),
			Previous: prev.Score,
			Current:  cur.Score,
			Delta:    cur.Score - prev.Score,
		})
	}

	if previous.AllMetrics && current.AllMetrics {
		result.AverageAgeDelta = current.AverageAge - previous.AverageAge
	}

	switch {
	case result.AverageAgeDelta < 0:
		result.Direction = directionEasier
	case result.AverageAgeDelta > 0:
		result.Direction = directionHarder
	default:
		result.Direction = directionUnchanged
	}

	return result
}

// isFinite reports whether a float is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(cmd *cobra.Command, result *ComparisonResult) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(cmd *cobra.Command, result *ComparisonResult) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Readability Comparison: %s\n", result.Source)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	fmt.Fprintf(out, "\nReadability: %s\n", formatDirection(result.Direction))

	fmt.Fprintf(out, "\nPrevious analysis: %s\n", result.Previous.DateAnalyzed.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Current analysis:  %s\n", result.Current.DateAnalyzed.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(out, "\nText Summary:")
	fmt.Fprintf(out, "  %-10s  %-10s  %-10s  %-10s\n", "", "Previous", "Current", "Change")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 45))
	fmt.Fprintf(out, "  %-10s  %-10d  %-10d  %-10s\n", "Words",
		result.Previous.Words, result.Current.Words,
		formatIntDelta(result.Current.Words-result.Previous.Words))
	fmt.Fprintf(out, "  %-10s  %-10d  %-10d  %-10s\n", "Sentences",
		result.Previous.Sentences, result.Current.Sentences,
		formatIntDelta(result.Current.Sentences-result.Previous.Sentences))

	if len(result.ScoreChanges) > 0 {
		fmt.Fprintln(out, "\nScore Changes:")
		fmt.Fprintf(out, "  %-10s  %-10s  %-10s  %-10s\n", "Metric", "Previous", "Current", "Change")
		fmt.Fprintln(out, "  "+strings.Repeat("-", 45))
		for _, sc := range result.ScoreChanges {
			fmt.Fprintf(out, "  %-10s  %-10.2f  %-10.2f  %-10s\n",
				sc.Metric, sc.Previous, sc.Current, formatFloatDelta(sc.Delta))
		}
	}

	if result.Previous.AverageAge != 0 || result.Current.AverageAge != 0 {
		fmt.Fprintf(out, "\nAverage reader age: %s -> %s (%s)\n",
			formatAverageAge(result.Previous.AverageAge),
			formatAverageAge(result.Current.AverageAge),
			formatFloatDelta(result.AverageAgeDelta))
	}

	return nil
}

// formatDirection formats the readability direction for display.
func formatDirection(direction string) string {
	switch direction {
	case directionEasier:
		return "EASIER (estimated reader age decreased)"
	case directionHarder:
		return "HARDER (estimated reader age increased)"
	default:
		return "UNCHANGED"
	}
}

// formatIntDelta formats a numeric delta with sign for display.
func formatIntDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}

// formatFloatDelta formats a float delta with sign for display.
func formatFloatDelta(delta float64) string {
	if delta > 0 {
		return fmt.Sprintf("+%.2f", delta)
	}
	return fmt.Sprintf("%.2f", delta)
}
