package score

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScore is returned by EstimateAge for scores that cannot be
// mapped to an age: a negative ceiling, or a non-finite value produced by
// degenerate input. Callers report the error and use age 0; the rest of the
// requested metrics still run.
var ErrInvalidScore = errors.New("not correct score")

// ageByScore maps a rounded score (index 1..14) to an estimated reader age.
// Index 0 is unused. Rounded scores outside 1..14 — including 0 — fall
// through to age 23.
var ageByScore = [...]int{0, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 22}

// maxAge is the age for any rounded score not covered by the table.
const maxAge = 23

// EstimateAge maps a raw score to an estimated reader age.
//
// The score is rounded toward positive infinity. A negative rounded score is
// invalid and maps to age 0 with ErrInvalidScore. NaN and ±Inf — the result
// of scoring a text with zero words or sentences — take the same invalid
// path rather than producing an implementation-defined ceiling.
func EstimateAge(score float64) (int, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: non-finite value %v", ErrInvalidScore, score)
	}

	rounded := int(math.Ceil(score))
	if rounded < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidScore, rounded)
	}
	if rounded >= 1 && rounded < len(ageByScore) {
		return ageByScore[rounded], nil
	}
	return maxAge, nil
}
