package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/readscore/internal/model"
	"github.com/nao1215/readscore/internal/score"
	"github.com/nao1215/readscore/internal/textstat"
)

// StatisticsStep extracts the text statistics onto the report.
// It carries the raw text itself; the report only ever holds derived counts.
type StatisticsStep struct {
	// text is the already-loaded input text. May be empty; empty text
	// degrades to all-zero counts.
	text string
}

// NewStatisticsStep creates a statistics extraction step for the given text.
func NewStatisticsStep(text string) *StatisticsStep {
	return &StatisticsStep{text: text}
}

// Name returns the step name.
func (s *StatisticsStep) Name() string {
	return "statistics"
}

// Do analyzes the text and stores the resulting counts on the report.
func (s *StatisticsStep) Do(_ context.Context, report *model.Report) error {
	report.Statistics = textstat.Analyze(s.text)

	slog.Debug("statistics extracted",
		"source", report.Source,
		"words", report.Statistics.Words,
		"sentences", report.Statistics.Sentences,
		"characters", report.Statistics.Characters,
	)
	return nil
}

// ScoreStep evaluates the requested metric (or all of them) over the
// statistics already present on the report, estimates reader ages, and in
// "all" mode computes the average age.
//
// Invalid scores — negative ceilings or the non-finite values produced by
// degenerate input — are logged and recorded with age 0; the remaining
// metrics still run. This step therefore never fails the pipeline for
// score-level conditions.
type ScoreStep struct {
	// metric is the requested metric; MetricAll expands to all four.
	metric model.Metric
}

// NewScoreStep creates a scoring step for the given metric.
func NewScoreStep(metric model.Metric) *ScoreStep {
	return &ScoreStep{metric: metric}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do computes scores and ages for the requested metrics.
func (s *ScoreStep) Do(_ context.Context, report *model.Report) error {
	metrics := s.metric.Metrics()
	report.AllMetrics = s.metric == model.MetricAll
	report.Results = make([]model.MetricResult, 0, len(metrics))

	ageSum := 0
	for _, m := range metrics {
		value, err := score.Compute(m, report.Statistics)
		if err != nil {
			return err
		}

		age, err := score.EstimateAge(value)
		if err != nil {
			// Invalid-score path: report age 0 and keep going.
			slog.Warn("not correct score",
				"source", report.Source,
				"metric", m.Token(),
				"score", value,
				"error", err,
			)
		}

		report.Results = append(report.Results, model.MetricResult{
			Metric: m,
			Score:  value,
			Age:    age,
		})
		ageSum += age
	}

	if report.AllMetrics && len(metrics) > 0 {
		report.AverageAge = float64(ageSum) / float64(len(metrics))
	}
	return nil
}
