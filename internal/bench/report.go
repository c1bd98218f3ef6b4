package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable renders results as an aligned text table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tMODE\tINPUT\tOUTPUT\tSAVED\tBEST\tAVG\tMB/S")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\t%s\t%s\t%.1f\n",
			r.Case, r.Mode,
			formatBytes(r.InputBytes), formatBytes(r.OutputBytes),
			r.SavedPct, r.Best, r.Avg, r.Throughput)
	}
	return tw.Flush()
}

// WriteCSV renders results as CSV for downstream tooling.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"case", "mode", "input_bytes", "output_bytes",
		"saved_pct", "best_ns", "avg_ns", "throughput_mbps",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Case,
			r.Mode.String(),
			strconv.Itoa(r.InputBytes),
			strconv.Itoa(r.OutputBytes),
			strconv.FormatFloat(r.SavedPct, 'f', 2, 64),
			strconv.FormatInt(r.Best.Nanoseconds(), 10),
			strconv.FormatInt(r.Avg.Nanoseconds(), 10),
			strconv.FormatFloat(r.Throughput, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatBytes renders a byte count in human units.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
