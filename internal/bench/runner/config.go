package runner

const (
	DefaultTolerance  = 1e-9
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int `json:"warmup_runs"`
	Runs       int `json:"runs"`
	// Tolerance applies to cases that do not set their own.
	Tolerance float64 `json:"tolerance"`
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
		Tolerance:  DefaultTolerance,
	}
}
