package model

import (
	"encoding/json"
	"math"
	"time"
)

// Statistics holds the counts derived from one input text.
// It is created once per text and never mutated afterwards.
//
// Invariants: Syllables == sum(SyllablesPerWord) and Polysyllables ==
// count(s > 2 for s in SyllablesPerWord). Both are established by the
// statistics extractor, not re-checked here.
type Statistics struct {
	// Words is the number of words found in the text.
	Words int `json:"words"`

	// Sentences is the number of sentences found in the text.
	Sentences int `json:"sentences"`

	// Characters is the number of non-whitespace characters.
	// Punctuation counts; spaces, tabs, and newlines do not.
	Characters int `json:"characters"`

	// Syllables is the total syllable count across all words.
	Syllables int `json:"syllables"`

	// Polysyllables is the number of words with more than 2 syllables.
	Polysyllables int `json:"polysyllables"`

	// SyllablesPerWord holds the per-word syllable counts in word order.
	// Its length equals Words. Every entry is at least 1.
	SyllablesPerWord []int `json:"syllables_per_word,omitempty"`
}

// MetricResult holds one computed score and its estimated reader age.
type MetricResult struct {
	// Metric identifies which formula produced this result.
	Metric Metric `json:"metric"`

	// Score is the raw formula value. Degenerate input (zero words or
	// sentences) yields NaN or ±Inf here; the value is kept as computed
	// so text output can show it.
	Score float64 `json:"score"`

	// Age is the estimated reader age mapped from the score's ceiling.
	// Invalid scores (negative or non-finite) map to 0.
	Age int `json:"age"`
}

// metricResultJSON mirrors MetricResult with a nullable score.
// encoding/json cannot represent NaN or ±Inf, so non-finite scores are
// serialized as null and deserialized back to NaN.
type metricResultJSON struct {
	Metric Metric   `json:"metric"`
	Score  *float64 `json:"score"`
	Age    int      `json:"age"`
}

// MarshalJSON serializes the result, emitting null for non-finite scores.
func (r MetricResult) MarshalJSON() ([]byte, error) {
	out := metricResultJSON{Metric: r.Metric, Age: r.Age}
	if !math.IsNaN(r.Score) && !math.IsInf(r.Score, 0) {
		score := r.Score
		out.Score = &score
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses a result, mapping a null score back to NaN.
func (r *MetricResult) UnmarshalJSON(data []byte) error {
	var in metricResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Metric = in.Metric
	r.Age = in.Age
	if in.Score != nil {
		r.Score = *in.Score
	} else {
		r.Score = math.NaN()
	}
	return nil
}

// Report is the complete result of analyzing one text: its statistics, the
// requested metric results, and the averaged reader age when all metrics
// were requested. Reports are what the writers render and the database
// stores.
type Report struct {
	// Source is the path of the analyzed file. Empty when no file path
	// was given and the empty-text fallback was used.
	Source string `json:"source"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Statistics holds the counts extracted from the text.
	Statistics Statistics `json:"statistics"`

	// Results holds one entry per computed metric, in report order.
	Results []MetricResult `json:"results"`

	// AllMetrics is true when every metric was requested ("all" command);
	// only then is AverageAge meaningful.
	AllMetrics bool `json:"all_metrics"`

	// AverageAge is the arithmetic mean of the four mapped ages.
	// Zero unless AllMetrics is set.
	AverageAge float64 `json:"average_age,omitempty"`

	// PerformedSteps records which pipeline steps ran, for debugging.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds a step failure, if any. Not serialized; ErrorMessage
	// carries the text into stored reports.
	Error error `json:"-"`

	// ErrorMessage is the human-readable form of Error.
	ErrorMessage string `json:"error,omitempty"`
}

// NewReport creates a Report for the given source path with the analysis
// time set to now.
func NewReport(source string) *Report {
	return &Report{
		Source:       source,
		DateAnalyzed: time.Now(),
	}
}

// Result returns the result for the given metric, or nil if the metric was
// not computed.
func (r *Report) Result(m Metric) *MetricResult {
	for i := range r.Results {
		if r.Results[i].Metric == m {
			return &r.Results[i]
		}
	}
	return nil
}
