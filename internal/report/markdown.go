package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/readscore/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeStatistics(md, report)
	w.writeScores(md, report)
	w.writeSyllableChart(md, report)
	w.writeAlert(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with source information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Readability Report")
	md.PlainText("")

	source := report.Source
	if source == "" {
		source = "(no file)"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + source + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.Report) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeStatistics writes the text statistics table.
func (w *MarkdownWriter) writeStatistics(md *markdown.Markdown, report *model.Report) {
	md.H2("Text Statistics")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Count"},
		Rows: [][]string{
			{"Words", strconv.Itoa(report.Statistics.Words)},
			{"Sentences", strconv.Itoa(report.Statistics.Sentences)},
			{"Characters", strconv.Itoa(report.Statistics.Characters)},
			{"Syllables", strconv.Itoa(report.Statistics.Syllables)},
			{"Polysyllables", strconv.Itoa(report.Statistics.Polysyllables)},
		},
	})
	md.PlainText("")
}

// writeScores writes the per-metric scores table and the averaged age.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, report *model.Report) {
	md.H2("Scores")
	md.PlainText("")

	if len(report.Results) == 0 {
		md.PlainText("No scores computed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Results))
	for i, r := range report.Results {
		rows[i] = []string{
			r.Metric.DisplayName(),
			formatScore(r.Score),
			strconv.Itoa(r.Age),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Score", "Estimated Age"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.AllMetrics {
		md.PlainTextf("This text should be understood in average by **%.2f**-year-olds.", report.AverageAge)
		md.PlainText("")
	}
}

// writeSyllableChart writes a mermaid pie chart of the syllable distribution.
// Words are grouped as monosyllabic, disyllabic, and polysyllabic.
func (w *MarkdownWriter) writeSyllableChart(md *markdown.Markdown, report *model.Report) {
	var mono, di, poly int
	for _, s := range report.Statistics.SyllablesPerWord {
		switch {
		case s <= 1:
			mono++
		case s == 2:
			di++
		default:
			poly++
		}
	}

	if mono+di+poly == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Word Syllable Distribution"),
		piechart.WithShowData(true),
	)

	if mono > 0 {
		chart.LabelAndIntValue("Monosyllabic", uint64(mono))
	}
	if di > 0 {
		chart.LabelAndIntValue("Disyllabic", uint64(di))
	}
	if poly > 0 {
		chart.LabelAndIntValue("Polysyllabic", uint64(poly))
	}

	md.H2("Syllable Distribution")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the estimated reading age.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	maxAge := 0
	for _, r := range report.Results {
		if r.Age > maxAge {
			maxAge = r.Age
		}
	}

	switch {
	case maxAge >= 22:
		md.Cautionf(
			"This text requires college-level reading skills (estimated age %d).",
			maxAge,
		)
	case maxAge >= 17:
		md.Warningf(
			"This text requires upper secondary reading skills (estimated age %d).",
			maxAge,
		)
	case maxAge >= 13:
		md.Importantf(
			"This text requires lower secondary reading skills (estimated age %d).",
			maxAge,
		)
	case maxAge > 0:
		md.Note("This text is readable by primary school readers.")
	default:
		md.Tip("No valid reading age could be estimated for this text.")
	}
	md.PlainText("")
}

// formatScore renders a score with two decimals, or a dash for the
// non-finite values produced by degenerate input.
func formatScore(score float64) string {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f", score)
}
