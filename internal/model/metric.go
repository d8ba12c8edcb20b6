package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Metric identifies one of the supported readability metrics, or the
// pseudo-metric MetricAll which requests all four plus an averaged age.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and switch dispatch. Token() and
// DisplayName() provide the two string forms needed at the edges.
type Metric int

const (
	// MetricARI is the Automated Readability Index, estimating the required
	// reading grade level from character/word/sentence ratios.
	MetricARI Metric = iota

	// MetricFleschKincaid is the Flesch–Kincaid readability test, using
	// average sentence length and syllables per word.
	MetricFleschKincaid

	// MetricSMOG is the Simple Measure of Gobbledygook, emphasizing the
	// density of polysyllabic words.
	MetricSMOG

	// MetricColemanLiau is the Coleman–Liau index, using letters per 100
	// words and sentences per 100 words.
	MetricColemanLiau

	// MetricAll requests all four metrics plus the averaged reader age.
	MetricAll
)

// ErrUnknownMetric is returned by ParseMetric for any token that is not one
// of the five accepted commands. Callers report "Unknown command" and exit
// normally; an unknown token is a user mistake, not a process failure.
var ErrUnknownMetric = errors.New("unknown command")

// metricTokens maps command tokens to metrics. Matching is exact and
// case-sensitive: "ari" and "ALL" are unknown commands.
var metricTokens = map[string]Metric{
	"ARI":  MetricARI,
	"FK":   MetricFleschKincaid,
	"SMOG": MetricSMOG,
	"CL":   MetricColemanLiau,
	"all":  MetricAll,
}

// ParseMetric converts a command token into a Metric.
// It accepts exactly "ARI", "FK", "SMOG", "CL", and "all".
func ParseMetric(token string) (Metric, error) {
	if m, ok := metricTokens[token]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, token)
}

// Token returns the command token for the metric.
func (m Metric) Token() string {
	switch m {
	case MetricARI:
		return "ARI"
	case MetricFleschKincaid:
		return "FK"
	case MetricSMOG:
		return "SMOG"
	case MetricColemanLiau:
		return "CL"
	case MetricAll:
		return "all"
	default:
		return "unknown"
	}
}

// String returns the command token. Metric implements fmt.Stringer so that
// metrics read naturally in log output.
func (m Metric) String() string {
	return m.Token()
}

// DisplayName returns the full metric name used in report output.
func (m Metric) DisplayName() string {
	switch m {
	case MetricARI:
		return "Automated Readability Index"
	case MetricFleschKincaid:
		return "Flesch–Kincaid readability tests"
	case MetricSMOG:
		return "Simple Measure of Gobbledygook"
	case MetricColemanLiau:
		return "Coleman–Liau index"
	case MetricAll:
		return "All metrics"
	default:
		return "Unknown metric"
	}
}

// Metrics returns the four concrete metrics in report order.
// MetricAll expands to this list; a single metric returns itself.
func (m Metric) Metrics() []Metric {
	if m == MetricAll {
		return []Metric{MetricARI, MetricFleschKincaid, MetricSMOG, MetricColemanLiau}
	}
	return []Metric{m}
}

// MarshalJSON serializes the metric as its command token so that stored
// reports remain readable and stable across releases.
func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Token())
}

// UnmarshalJSON parses a metric from its command token.
func (m *Metric) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	parsed, err := ParseMetric(token)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
