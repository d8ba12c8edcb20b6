package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nao1215/readscore/internal/config"
	"github.com/nao1215/readscore/internal/database"
	"github.com/nao1215/readscore/internal/log"
	"github.com/nao1215/readscore/internal/model"
	"github.com/nao1215/readscore/internal/pipeline"
	"github.com/nao1215/readscore/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// NewScoreCmd creates the score command.
func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file...]",
		Short: "Compute readability scores for a text file",
		Long: `Score reads a text file, extracts word, sentence, character, and
syllable counts, and computes the requested readability metric:

  ARI   Automated Readability Index
  FK    Flesch–Kincaid readability tests
  SMOG  Simple Measure of Gobbledygook
  CL    Coleman–Liau index
  all   All four metrics plus the averaged reader age

When no --index flag is given and the configuration file does not pin
one, the command shows the text and asks which metric to compute.

Examples:
  # Compute all metrics for a file
  readscore score --index all essay.txt

  # Compute a single metric
  readscore score -i SMOG essay.txt

  # Score several files in one run
  readscore score -i all chapter1.txt chapter2.txt

  # Output JSON report
  readscore score -i all --json essay.txt

  # Use a custom configuration file
  readscore score -c myconfig.yaml essay.txt

Configuration file (.readscore) example:
  defaults:
    index: all
  files:
    manuscript.txt:
      index: SMOG
      format: markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: runScoreCmd,
	}

	// Metric selection
	cmd.Flags().StringP("index", "i", "",
		"Readability index to compute: ARI, FK, SMOG, CL, or all")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .readscore in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Persistence
	cmd.Flags().BoolP("no-save", "n", false,
		"Do not save the result to the history database")

	return cmd
}

// runScoreCmd executes the score command.
func runScoreCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScore(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Index, err = cmd.Flags().GetString("index")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load file-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.FileConfigs = &config.File{
			Files: make(map[string]config.FileConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}

	// Save to the database in the XDG data directory unless disabled
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Get positional arguments (text file paths)
	cfg.Sources = args

	return cfg, nil
}

// runScore analyzes each source sequentially.
func runScore(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("starting analysis",
		"sources", cfg.Sources,
		"index", cfg.Index,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.ScoreDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Debug("database opened", "dir", cfg.DBDir)
	}

	// Open the report destination once for the whole run, so scoring
	// several files appends their reports instead of overwriting.
	dest, closeDest, err := openReportDest(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDest()

	// No file path degrades to analyzing empty text, so the command still
	// prints a full (all-zero) report instead of failing.
	sources := cfg.Sources
	if len(sources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No file path specified in args.")
		sources = []string{""}
	}

	for _, source := range sources {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := scoreOne(ctx, cmd, cfg, db, source, dest, logger); err != nil {
			return err
		}
	}

	return nil
}

// openReportDest resolves the report destination for a run. With --output it
// creates the file (and parent directories); otherwise reports go to the
// command's stdout. The returned close function is a no-op for stdout.
func openReportDest(cmd *cobra.Command, cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// scoreOne analyzes a single source: load, resolve the metric, run the
// pipeline, output the report, and persist it.
func scoreOne(ctx context.Context, cmd *cobra.Command, cfg *config.Config, db *database.ScoreDB, source string, dest io.Writer, logger *slog.Logger) error {
	text := loadText(cmd, source)

	fileCfg := config.FileConfig{}
	if cfg.FileConfigs != nil {
		fileCfg = cfg.FileConfigs.GetFileConfig(source)
	}

	metric, ok := resolveMetric(cmd, cfg, fileCfg, text)
	if !ok {
		// Unknown token is a user mistake, not a process failure.
		fmt.Fprintln(cmd.OutOrStdout(), "Unknown command")
		return nil
	}

	scoreReport := model.NewReport(source)

	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)
	p.AddSteps(
		pipeline.NewStatisticsStep(text),
		pipeline.NewScoreStep(metric),
	)

	if err := p.Execute(ctx, scoreReport); err != nil {
		return fmt.Errorf("analysis failed for %q: %w", source, err)
	}

	if err := outputReport(dest, cfg, fileCfg, scoreReport); err != nil {
		return fmt.Errorf("report failed for %q: %w", source, err)
	}

	if err := saveReport(ctx, db, scoreReport, logger); err != nil {
		logger.Error("failed to save report", "source", source, "error", err)
	}

	return nil
}

// loadText reads and normalizes the source file. A missing file or an empty
// path degrades to empty text after an informational message, matching the
// behavior of a run without arguments.
func loadText(cmd *cobra.Command, source string) string {
	if source == "" {
		return ""
	}

	data, err := os.ReadFile(source) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "File not found: %v\n", err)
		return ""
	}

	// NFC normalization so that decomposed vowels (e.g. "e" + combining
	// accent) count the same as their precomposed forms.
	return norm.NFC.String(string(data))
}

// resolveMetric determines which metric to compute: the --index flag wins,
// then the configuration file (per-file entry over defaults), then an
// interactive prompt. The second return value is false for unknown tokens.
func resolveMetric(cmd *cobra.Command, cfg *config.Config, fileCfg config.FileConfig, text string) (model.Metric, bool) {
	token := cfg.Index
	if token == "" {
		token = fileCfg.Index
	}
	if token == "" {
		token = promptMetric(cmd, text)
	}

	metric, err := model.ParseMetric(token)
	if err != nil {
		return 0, false
	}
	return metric, true
}

// promptMetric shows the text and asks which metric to compute.
func promptMetric(cmd *cobra.Command, text string) string {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "The text is:")
	fmt.Fprintln(out, text)
	fmt.Fprintln(out)
	fmt.Fprint(out, "Enter the score you want to calculate (ARI, FK, SMOG, CL, all): ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// outputReport outputs the report in the requested format.
// A per-file format from the configuration file overrides the CLI flags.
func outputReport(dest io.Writer, cfg *config.Config, fileCfg config.FileConfig, scoreReport *model.Report) error {
	var writer report.Writer
	switch resolveFormat(cfg, fileCfg) {
	case "json":
		writer = report.NewJSONWriter(dest, report.WithPrettyPrint())
	case "markdown":
		writer = report.NewMarkdownWriter(dest)
	default:
		writer = report.NewSimpleWriter(dest)
	}

	_, err := writer.Write(scoreReport)
	return err
}

// resolveFormat returns "simple", "json", or "markdown".
func resolveFormat(cfg *config.Config, fileCfg config.FileConfig) string {
	if fileCfg.Format != "" {
		return fileCfg.Format
	}
	if cfg.JSONReport {
		return "json"
	}
	if cfg.MarkdownReport {
		return "markdown"
	}
	return "simple"
}

// saveReport saves the report to the database if enabled.
// Reports without a source path are transient and not persisted.
// If db is nil, this function is a no-op.
func saveReport(ctx context.Context, db *database.ScoreDB, scoreReport *model.Report, logger *slog.Logger) error {
	if db == nil || scoreReport.Source == "" {
		return nil
	}

	if err := db.SaveReport(ctx, scoreReport); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	logger.Debug("report saved to database", "source", scoreReport.Source)
	return nil
}
