package score

import (
	"fmt"
	"math"

	"github.com/nao1215/readscore/internal/model"
)

// ARI computes the Automated Readability Index:
// 4.71*(characters/words) + 0.5*(words/sentences) - 21.43.
func ARI(s model.Statistics) float64 {
	return 4.71*(float64(s.Characters)/float64(s.Words)) +
		0.5*(float64(s.Words)/float64(s.Sentences)) - 21.43
}

// FleschKincaid computes the Flesch–Kincaid grade level:
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
func FleschKincaid(s model.Statistics) float64 {
	return 0.39*(float64(s.Words)/float64(s.Sentences)) +
		11.8*(float64(s.Syllables)/float64(s.Words)) - 15.59
}

// SMOG computes the Simple Measure of Gobbledygook:
// 1.043*sqrt(polysyllables*(30/sentences)) + 3.1291.
func SMOG(s model.Statistics) float64 {
	return 1.043*math.Sqrt(float64(s.Polysyllables)*(30.0/float64(s.Sentences))) + 3.1291
}

// ColemanLiau computes the Coleman–Liau index from letters per 100 words
// and sentences per 100 words: 0.0588*l - 0.296*s - 15.8.
func ColemanLiau(s model.Statistics) float64 {
	l := float64(s.Characters) * 100.0 / float64(s.Words)
	sp := float64(s.Sentences) * 100.0 / float64(s.Words)
	return 0.0588*l - 0.296*sp - 15.8
}

// Compute evaluates a single concrete metric. MetricAll is not a formula;
// callers expand it with Metric.Metrics() first.
func Compute(m model.Metric, s model.Statistics) (float64, error) {
	switch m {
	case model.MetricARI:
		return ARI(s), nil
	case model.MetricFleschKincaid:
		return FleschKincaid(s), nil
	case model.MetricSMOG:
		return SMOG(s), nil
	case model.MetricColemanLiau:
		return ColemanLiau(s), nil
	default:
		return 0, fmt.Errorf("metric %s has no formula", m)
	}
}
