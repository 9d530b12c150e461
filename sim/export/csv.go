// Package export renders simulation results for external consumers:
// CSV tables for spreadsheets and JSON run reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// ComparisonHeader is the header row of a comparison CSV.
var ComparisonHeader = []string{"Algorithm", "Step", "Page", "Frames", "Page Fault"}

// TraceHeader is the header row of a single-trace CSV.
var TraceHeader = []string{"Step", "Page", "Frames", "Page Fault"}

// FormatFrames renders a resident-set snapshot in its policy-defined order.
func FormatFrames(pages []trace.PageID, sep string) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(int(p))
	}
	return strings.Join(parts, sep)
}

func traceRow(r trace.StepRecord) []string {
	return []string{
		strconv.Itoa(r.Step),
		strconv.Itoa(int(r.Page)),
		FormatFrames(r.Resident, " "),
		r.FaultLabel(),
	}
}

// WriteComparisonCSV writes every trace of result, policies in canonical order
// and steps in order, under ComparisonHeader.
func WriteComparisonCSV(w io.Writer, result *sim.ComparisonResult) error {
	if result == nil {
		return fmt.Errorf("nil comparison result")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ComparisonHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, name := range result.Policies() {
		for _, r := range result.Trace(name).Records {
			row := append([]string{name}, traceRow(r)...)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing %s step %d: %w", name, r.Step, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTraceCSV writes a single trace under TraceHeader.
func WriteTraceCSV(w io.Writer, t *trace.Trace) error {
	if t == nil {
		return fmt.Errorf("nil trace")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(TraceHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range t.Records {
		if err := cw.Write(traceRow(r)); err != nil {
			return fmt.Errorf("writing step %d: %w", r.Step, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
