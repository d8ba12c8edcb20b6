package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/readscore/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display and mirrors the classic
// readability-score output: a block of counts followed by one line per
// metric and, when all metrics run, the averaged reader age.
//
// Design decision: We use plain text without ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showStatistics controls whether the counts block is printed.
	// Disabled by writers that only want the score lines.
	showStatistics bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithStatistics controls whether the counts block is printed before the
// score lines. Enabled by default.
func WithStatistics(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showStatistics = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:     newBaseWriter(output),
		showStatistics: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	if w.showStatistics {
		w.writeStatistics(&sb, report)
	}
	w.writeScores(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeStatistics writes the counts block.
func (w *SimpleWriter) writeStatistics(sb *strings.Builder, report *model.Report) {
	fmt.Fprintf(sb, "Words: %d\n", report.Statistics.Words)
	fmt.Fprintf(sb, "Sentences: %d\n", report.Statistics.Sentences)
	fmt.Fprintf(sb, "Characters: %d\n", report.Statistics.Characters)
	fmt.Fprintf(sb, "Syllables: %d\n", report.Statistics.Syllables)
	fmt.Fprintf(sb, "Polysyllables: %d\n", report.Statistics.Polysyllables)
}

// writeScores writes one line per metric result and, in all-metrics mode,
// the averaged reader age.
func (w *SimpleWriter) writeScores(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")

	for _, result := range report.Results {
		fmt.Fprintf(sb, "%s: %.2f (about %d-year-olds).\n",
			result.Metric.DisplayName(), result.Score, result.Age)
	}

	if report.AllMetrics {
		sb.WriteString("\n")
		fmt.Fprintf(sb, "This text should be understood in average by %.2f-year-olds.\n",
			report.AverageAge)
	}
}
