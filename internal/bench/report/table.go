package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	title := r.Meta.Suite
	if r.Meta.Version != "" {
		title += " v" + r.Meta.Version
	}
	fmt.Fprintf(tw, "\n=== Calc Benchmark: %s ===\n\n", title)

	writeSummaryTable(tw, r)
	writeCaseTable(tw, r)

	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeHeader(tw *tabwriter.Writer, cols ...string) {
	writeRow(tw, cols...)
	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func writeSummaryTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Summary (%d warmup, %d measured runs per case)\n\n", r.Config.WarmupRuns, r.Config.Runs)

	writeHeader(tw, "Engine", "Passed", "Failed", "Min", "p50", "p90", "p95", "p99", "Max", "Mean", "Stddev", "Samples")
	for _, e := range r.Engines {
		s := e.Latency
		writeRow(tw,
			e.EngineName,
			fmt.Sprintf("%d/%d", e.Passed, e.CaseCount),
			strconv.Itoa(e.Failed),
			fmtDuration(s.Min),
			fmtDuration(s.P50()),
			fmtDuration(s.P90()),
			fmtDuration(s.P95()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmtDuration(s.Mean),
			fmtDuration(s.Stddev),
			strconv.Itoa(s.SampleCount),
		)
	}
	fmt.Fprintln(tw)
}

func writeCaseTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-Case Results\n\n")

	writeHeader(tw, "Case", "Engine", "Result", "p50", "p95", "Status")
	for _, e := range r.Cases {
		status := "OK"
		if !e.Passed {
			status = "FAIL: " + e.Reason
		}
		writeRow(tw,
			e.CaseID,
			e.EngineName,
			fmtOutcome(e),
			fmtDuration(e.Latency.P50()),
			fmtDuration(e.Latency.P95()),
			status,
		)
	}
	fmt.Fprintln(tw)
}

func fmtOutcome(e Entry) string {
	if e.Value != nil {
		return strconv.FormatFloat(*e.Value, 'g', 10, 64)
	}
	if e.ErrorCode != "" {
		return e.ErrorCode
	}
	return "-"
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
