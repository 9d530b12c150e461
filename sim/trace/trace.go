package trace

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Trace is the ordered list of step records produced by one simulation call.
// A Trace shares no mutable state with other traces.
type Trace struct {
	Policy   string
	Capacity int
	Records  []StepRecord
}

// NewTrace creates an empty Trace sized for n references.
func NewTrace(policy string, capacity, n int) *Trace {
	return &Trace{
		Policy:   policy,
		Capacity: capacity,
		Records:  make([]StepRecord, 0, n),
	}
}

// Record appends a step record.
func (t *Trace) Record(record StepRecord) {
	t.Records = append(t.Records, record)
}

// Len returns the number of recorded steps. Safe on a nil Trace.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// FaultSteps returns the 1-based steps that faulted, in order.
func (t *Trace) FaultSteps() []int {
	steps := make([]int, 0)
	if t == nil {
		return steps
	}
	for _, r := range t.Records {
		if r.Fault {
			steps = append(steps, r.Step)
		}
	}
	return steps
}

// Final returns the resident set after the last step (nil for an empty trace).
func (t *Trace) Final() []PageID {
	if t.Len() == 0 {
		return nil
	}
	return t.Records[len(t.Records)-1].Resident
}

// Fingerprint returns a 64-bit digest of the trace contents.
// Two traces with identical policy, capacity and records have the same fingerprint.
func (t *Trace) Fingerprint() uint64 {
	d := xxhash.New()
	if t == nil {
		return d.Sum64()
	}
	_, _ = d.WriteString(t.Policy)
	buf := make([]byte, 0, 64)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Capacity))
	for _, r := range t.Records {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(r.Step))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(r.Page))
		if r.Fault {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		if r.Evicted != nil {
			buf = append(buf, 1)
			buf = binary.LittleEndian.AppendUint64(buf, uint64(*r.Evicted))
		} else {
			buf = append(buf, 0)
		}
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(r.Resident)))
		for _, p := range r.Resident {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(p))
		}
		_, _ = d.Write(buf)
		buf = buf[:0]
	}
	return d.Sum64()
}
