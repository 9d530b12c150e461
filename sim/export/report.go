package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// PolicyReport is the per-policy section of a Report.
type PolicyReport struct {
	Policy      string  `json:"policy"`
	FaultCount  int     `json:"fault_count"`
	HitCount    int     `json:"hit_count"`
	Evictions   int     `json:"evictions"`
	FaultRate   float64 `json:"fault_rate"`
	FaultSteps  []int   `json:"fault_steps"`
	Fingerprint string  `json:"fingerprint"` // hex xxhash64 of the trace
}

// Report summarizes a comparison run for archiving or diffing between runs.
// Fingerprints are stable across runs with the same input; RunID and
// GeneratedAt are not.
type Report struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Capacity    int            `json:"capacity"`
	Sequence    []trace.PageID `json:"sequence"`
	Best        string         `json:"best_policy"`
	Policies    []PolicyReport `json:"policies"`
}

// NewReport builds a Report from a comparison result.
func NewReport(result *sim.ComparisonResult) *Report {
	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Capacity:    result.Capacity,
		Sequence:    result.Sequence,
		Best:        result.Best(),
		Policies:    make([]PolicyReport, 0, len(result.Traces)),
	}
	for _, name := range result.Policies() {
		t := result.Trace(name)
		stats := trace.Summarize(t)
		report.Policies = append(report.Policies, PolicyReport{
			Policy:      name,
			FaultCount:  stats.FaultCount,
			HitCount:    stats.HitCount,
			Evictions:   stats.Evictions,
			FaultRate:   stats.FaultRate,
			FaultSteps:  t.FaultSteps(),
			Fingerprint: fmt.Sprintf("%016x", t.Fingerprint()),
		})
	}
	return report
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
