package score

import (
	"math"
	"testing"

	"github.com/nao1215/readscore/internal/model"
)

// referenceStats is the shared end-to-end scenario: 100 words across 5
// sentences, 500 characters, 150 syllables, 10 polysyllables.
var referenceStats = model.Statistics{
	Words:         100,
	Sentences:     5,
	Characters:    500,
	Syllables:     150,
	Polysyllables: 10,
}

// almostEqual reports whether two floats agree within a small epsilon.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestFormulas tests the four formula evaluators against hand-computed
// values for the reference scenario.
func TestFormulas(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		fn       func(model.Statistics) float64
		expected float64
	}{
		// 4.71*5 + 0.5*20 - 21.43
		{"ARI", ARI, 12.12},
		// 0.39*20 + 11.8*1.5 - 15.59
		{"FleschKincaid", FleschKincaid, 10.51},
		// 1.043*sqrt(10*6) + 3.1291
		{"SMOG", SMOG, 1.043*math.Sqrt(60) + 3.1291},
		// 0.0588*500 - 0.296*5 - 15.8
		{"ColemanLiau", ColemanLiau, 12.12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.fn(referenceStats)
			if !almostEqual(got, tc.expected) {
				t.Errorf("got %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestSMOGApproximateValue pins the SMOG reference value to two decimals,
// the precision the reports print.
func TestSMOGApproximateValue(t *testing.T) {
	t.Parallel()

	got := SMOG(referenceStats)
	if math.Abs(got-11.21) > 0.005 {
		t.Errorf("SMOG = %v, expected about 11.21", got)
	}
}

// TestCompute tests metric dispatch.
func TestCompute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		metric   model.Metric
		expected float64
	}{
		{model.MetricARI, ARI(referenceStats)},
		{model.MetricFleschKincaid, FleschKincaid(referenceStats)},
		{model.MetricSMOG, SMOG(referenceStats)},
		{model.MetricColemanLiau, ColemanLiau(referenceStats)},
	}

	for _, tc := range testCases {
		t.Run(tc.metric.Token(), func(t *testing.T) {
			t.Parallel()
			got, err := Compute(tc.metric, referenceStats)
			if err != nil {
				t.Fatalf("Compute returned error: %v", err)
			}
			if !almostEqual(got, tc.expected) {
				t.Errorf("got %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestComputeAllIsNotAFormula tests that the pseudo-metric is rejected.
func TestComputeAllIsNotAFormula(t *testing.T) {
	t.Parallel()

	if _, err := Compute(model.MetricAll, referenceStats); err == nil {
		t.Error("Compute(MetricAll) should return an error")
	}
}

// TestFormulasDegenerateInput tests that zero-count input propagates as
// non-finite values instead of panicking. The formulas stay unguarded; the
// age estimator is responsible for handling these.
func TestFormulasDegenerateInput(t *testing.T) {
	t.Parallel()

	var empty model.Statistics

	for _, fn := range []func(model.Statistics) float64{ARI, FleschKincaid, SMOG, ColemanLiau} {
		got := fn(empty)
		if !math.IsNaN(got) && !math.IsInf(got, 0) {
			t.Errorf("got finite value %v for all-zero statistics, expected NaN or Inf", got)
		}
	}
}
