package suite

import "github.com/DjordjeVuckovic/calc-hunter/internal/apperr"

type TestSuite struct {
	Name        string `yaml:"name" schema:"minLength=1"`
	Description string `yaml:"description,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Cases       []Case `yaml:"cases" schema:"required,minItems=1"`
}

// Case is one expression with its expected outcome: either a value (Expect) or an error code (ExpectError).
type Case struct {
	ID          string      `yaml:"id" schema:"required,minLength=1"`
	Description string      `yaml:"description,omitempty"`
	Expression  string      `yaml:"expression" schema:"required"`
	Expect      *float64    `yaml:"expect,omitempty" description:"Expected result, exclusive with expect_error"`
	ExpectError apperr.Code `yaml:"expect_error,omitempty" description:"Expected error code, exclusive with expect"`
	// Tolerance is relative; zero means the runner default.
	Tolerance float64 `yaml:"tolerance,omitempty" schema:"minimum=0"`
}

func (c *Case) ExpectsError() bool {
	return c.ExpectError != ""
}
