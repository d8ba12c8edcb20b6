package score

import (
	"errors"
	"math"
	"testing"
)

// TestEstimateAge tests the score-to-age table across its boundaries.
func TestEstimateAge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		score    float64
		expected int
	}{
		{"ceiling 1 maps to 6", 1, 6},
		{"ceiling 2 maps to 7", 1.5, 7},
		{"ceiling 13 maps to 18", 13, 18},
		{"ceiling 13 from fraction", 12.12, 18},
		{"ceiling 14 maps to 22", 13.2, 22},
		{"ceiling 15 maps to 23", 15, 23},
		{"ceiling 20 maps to 23", 20, 23},
		{"large score maps to 23", 1000, 23},
		{"ceiling 0 falls through to 23", 0, 23},
		{"negative fraction ceils to 0 and maps to 23", -0.4, 23},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			age, err := EstimateAge(tc.score)
			if err != nil {
				t.Fatalf("EstimateAge(%v) returned error: %v", tc.score, err)
			}
			if age != tc.expected {
				t.Errorf("EstimateAge(%v) = %d, expected %d", tc.score, age, tc.expected)
			}
		})
	}
}

// TestEstimateAgeFullTable tests the one-to-one rows of the table:
// rounded scores 1 through 13 map to ages 6 through 18.
func TestEstimateAgeFullTable(t *testing.T) {
	t.Parallel()

	for rounded := 1; rounded <= 13; rounded++ {
		age, err := EstimateAge(float64(rounded))
		if err != nil {
			t.Fatalf("EstimateAge(%d) returned error: %v", rounded, err)
		}
		if age != rounded+5 {
			t.Errorf("EstimateAge(%d) = %d, expected %d", rounded, age, rounded+5)
		}
	}
}

// TestEstimateAgeInvalid tests the invalid-score path: negative ceilings
// and non-finite values map to age 0 with ErrInvalidScore, so callers can
// report and continue.
func TestEstimateAgeInvalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		score float64
	}{
		{"negative score", -1},
		{"very negative score", -21.43},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			age, err := EstimateAge(tc.score)
			if !errors.Is(err, ErrInvalidScore) {
				t.Errorf("error = %v, expected ErrInvalidScore", err)
			}
			if age != 0 {
				t.Errorf("age = %d, expected 0 for invalid score", age)
			}
		})
	}
}

// TestEstimateAgeEndToEndScenario tests the mapped ages for the reference
// statistics used across the formula tests.
func TestEstimateAgeEndToEndScenario(t *testing.T) {
	t.Parallel()

	ages := make([]int, 0, 4)
	for _, fn := range []func() float64{
		func() float64 { return ARI(referenceStats) },
		func() float64 { return FleschKincaid(referenceStats) },
		func() float64 { return SMOG(referenceStats) },
		func() float64 { return ColemanLiau(referenceStats) },
	} {
		age, err := EstimateAge(fn())
		if err != nil {
			t.Fatalf("EstimateAge returned error: %v", err)
		}
		ages = append(ages, age)
	}

	expected := []int{18, 16, 17, 18}
	for i := range expected {
		if ages[i] != expected[i] {
			t.Errorf("age %d = %d, expected %d", i, ages[i], expected[i])
		}
	}

	sum := 0
	for _, a := range ages {
		sum += a
	}
	average := float64(sum) / 4.0
	if average != 17.25 {
		t.Errorf("average age = %v, expected 17.25", average)
	}
}
