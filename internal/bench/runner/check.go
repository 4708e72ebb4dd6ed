package runner

import (
	"errors"
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
)

// check compares one execution outcome with the case's expectation.
func check(c *suite.Case, value float64, err error, tolerance float64) (bool, string) {
	if c.Tolerance > 0 {
		tolerance = c.Tolerance
	}

	if c.ExpectsError() {
		if err == nil {
			return false, fmt.Sprintf("expected error %s, got %v", c.ExpectError, value)
		}
		if !errors.Is(err, c.ExpectError) {
			return false, fmt.Sprintf("expected error %s, got %s", c.ExpectError, errorCode(err))
		}
		return true, ""
	}

	if err != nil {
		return false, fmt.Sprintf("expected %v, got error: %v", *c.Expect, err)
	}
	if !withinTolerance(value, *c.Expect, tolerance) {
		return false, fmt.Sprintf("expected %v, got %v", *c.Expect, value)
	}
	return true, ""
}

// withinTolerance compares relatively, falling back to an absolute bound near zero.
func withinTolerance(got, want, tolerance float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= tolerance*math.Max(1, math.Abs(want))
}

func errorCode(err error) string {
	if ee, ok := apperr.AsExpressionError(err); ok {
		return string(ee.ErrorCode())
	}
	var code apperr.Code
	if errors.As(err, &code) {
		return string(code)
	}
	return "unknown"
}
