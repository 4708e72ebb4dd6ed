package suite

import (
	"fmt"
	"os"
	"slices"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if c.Expect == nil && !c.ExpectsError() {
			return nil, fmt.Errorf("case %q needs expect or expect_error", c.ID)
		}
		if c.Expect != nil && c.ExpectsError() {
			return nil, fmt.Errorf("case %q sets both expect and expect_error", c.ID)
		}
		if c.ExpectsError() && !slices.Contains(apperr.ExpressionCodes(), c.ExpectError) {
			return nil, fmt.Errorf("case %q expects unknown error code %q", c.ID, c.ExpectError)
		}
		if c.Tolerance < 0 {
			return nil, fmt.Errorf("case %q has negative tolerance", c.ID)
		}
	}

	return &s, nil
}
