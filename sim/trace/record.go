// Package trace provides the step-by-step record of a page-replacement simulation.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// PageID identifies a page in a reference sequence.
// Only equality is meaningful; the numeric value carries no ordering semantics.
type PageID int

// StepRecord captures the outcome of one reference in the sequence.
// Records are emitted once and never mutated afterwards.
type StepRecord struct {
	Step     int      // 1-based position in the reference sequence
	Page     PageID   // referenced page
	Resident []PageID // resident set after this step, in policy-defined order
	Fault    bool     // true if Page was not resident before this step
	Evicted  *PageID  // page removed to make room (nil if nothing was evicted)
}

// NewStepRecord builds a record, copying resident so later mutations of the
// caller's slice cannot leak into the trace.
func NewStepRecord(step int, page PageID, resident []PageID, fault bool, evicted *PageID) StepRecord {
	snapshot := make([]PageID, len(resident))
	copy(snapshot, resident)
	return StepRecord{
		Step:     step,
		Page:     page,
		Resident: snapshot,
		Fault:    fault,
		Evicted:  evicted,
	}
}

// Hit reports whether the reference was served from the resident set.
func (r StepRecord) Hit() bool {
	return !r.Fault
}

// FaultLabel renders the fault flag as "Yes"/"No" for tabular output.
func (r StepRecord) FaultLabel() string {
	if r.Fault {
		return "Yes"
	}
	return "No"
}
