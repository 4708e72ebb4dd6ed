package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/runner"
)

type Report struct {
	Meta    BenchMeta       `json:"meta"`
	Config  runner.Config   `json:"config"`
	Engines []EngineSummary `json:"engines"`
	Cases   []Entry         `json:"cases"`
}

type BenchMeta struct {
	Suite       string          `json:"suite"`
	Version     string          `json:"version,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type EngineSummary struct {
	EngineName string              `json:"engine"`
	CaseCount  int                 `json:"case_count"`
	Passed     int                 `json:"passed"`
	Failed     int                 `json:"failed"`
	Latency    runner.LatencyStats `json:"latency"`
}

type Entry struct {
	CaseID     string              `json:"id"`
	EngineName string              `json:"engine"`
	Expression string              `json:"expression"`
	Value      *float64            `json:"value,omitempty"`
	Postfix    string              `json:"rpn,omitempty"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Error      string              `json:"error,omitempty"`
	Passed     bool                `json:"passed"`
	Reason     string              `json:"reason,omitempty"`
	Latency    runner.LatencyStats `json:"latency"`
}

func Generate(br *runner.BenchmarkResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			Suite:       br.SuiteName,
			Version:     br.Version,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: br.Config,
	}

	for _, id := range br.CaseOrder {
		for _, engName := range br.EngineNames {
			cr, ok := br.Results[id][engName]
			if !ok {
				continue
			}
			r.Cases = append(r.Cases, Entry{
				CaseID:     cr.CaseID,
				EngineName: cr.EngineName,
				Expression: cr.Expression,
				Value:      cr.Value,
				Postfix:    cr.Postfix,
				ErrorCode:  cr.ErrorCode,
				Error:      cr.Error,
				Passed:     cr.Passed,
				Reason:     cr.Reason,
				Latency:    cr.Latency,
			})
		}
	}

	for _, engName := range br.EngineNames {
		summary := EngineSummary{EngineName: engName}
		var latencies []runner.LatencyStats
		for _, cr := range br.ByEngine(engName) {
			summary.CaseCount++
			if cr.Passed {
				summary.Passed++
			} else {
				summary.Failed++
			}
			latencies = append(latencies, cr.Latency)
		}
		summary.Latency = runner.MergeLatencyStats(latencies)
		r.Engines = append(r.Engines, summary)
	}

	return r
}

func (r *Report) Failed() int {
	n := 0
	for _, e := range r.Engines {
		n += e.Failed
	}
	return n
}
