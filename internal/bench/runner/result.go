package runner

type CaseResult struct {
	CaseID     string
	Expression string
	EngineName string
	Value      *float64
	Postfix    string
	ErrorCode  string
	Error      string
	Passed     bool
	// Reason explains a failed check.
	Reason  string
	Latency LatencyStats
}

type BenchmarkResult struct {
	SuiteName   string
	Version     string
	Config      Config
	Results     map[string]map[string]CaseResult // [caseID][engineName]
	CaseOrder   []string
	EngineNames []string
}

func (br *BenchmarkResult) Failed() int {
	n := 0
	for _, byEngine := range br.Results {
		for _, cr := range byEngine {
			if !cr.Passed {
				n++
			}
		}
	}
	return n
}

// ByEngine returns the results of one engine in case order.
func (br *BenchmarkResult) ByEngine(engineName string) []CaseResult {
	out := make([]CaseResult, 0, len(br.CaseOrder))
	for _, id := range br.CaseOrder {
		if cr, ok := br.Results[id][engineName]; ok {
			out = append(out, cr)
		}
	}
	return out
}
