package trace

import (
	"testing"
)

func pagePtr(p PageID) *PageID { return &p }

func TestNewStepRecord_CopiesResident(t *testing.T) {
	// GIVEN a resident slice owned by the caller
	resident := []PageID{1, 2, 3}

	// WHEN a record is built and the caller mutates its slice
	r := NewStepRecord(1, 3, resident, true, nil)
	resident[0] = 99

	// THEN the record keeps its own snapshot
	if r.Resident[0] != 1 {
		t.Errorf("expected snapshot to be isolated, got %v", r.Resident)
	}
}

func TestStepRecord_FaultLabel(t *testing.T) {
	tests := []struct {
		fault bool
		want  string
	}{
		{true, "Yes"},
		{false, "No"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			r := StepRecord{Fault: tt.fault}
			if got := r.FaultLabel(); got != tt.want {
				t.Errorf("FaultLabel() = %q, want %q", got, tt.want)
			}
			if r.Hit() == tt.fault {
				t.Errorf("Hit() = %v with fault=%v", r.Hit(), tt.fault)
			}
		})
	}
}

func TestTrace_Record_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	tr := NewTrace("FIFO", 2, 3)

	// WHEN records are appended
	tr.Record(NewStepRecord(1, 7, []PageID{7}, true, nil))
	tr.Record(NewStepRecord(2, 8, []PageID{7, 8}, true, nil))
	tr.Record(NewStepRecord(3, 7, []PageID{7, 8}, false, nil))

	// THEN order and length are preserved
	if tr.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", tr.Len())
	}
	for i, r := range tr.Records {
		if r.Step != i+1 {
			t.Errorf("record %d has step %d", i, r.Step)
		}
	}
	if final := tr.Final(); len(final) != 2 || final[0] != 7 || final[1] != 8 {
		t.Errorf("Final() = %v, want [7 8]", final)
	}
}

func TestTrace_FaultSteps(t *testing.T) {
	tr := NewTrace("LRU", 1, 3)
	tr.Record(NewStepRecord(1, 1, []PageID{1}, true, nil))
	tr.Record(NewStepRecord(2, 1, []PageID{1}, false, nil))
	tr.Record(NewStepRecord(3, 2, []PageID{2}, true, pagePtr(1)))

	got := tr.FaultSteps()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("FaultSteps() = %v, want [1 3]", got)
	}
}

func TestTrace_NilSafe(t *testing.T) {
	var tr *Trace
	if tr.Len() != 0 {
		t.Error("expected 0 length for nil trace")
	}
	if len(tr.FaultSteps()) != 0 {
		t.Error("expected no fault steps for nil trace")
	}
	if tr.Final() != nil {
		t.Error("expected nil final set for nil trace")
	}
}

func TestTrace_Fingerprint_EqualForIdenticalContent(t *testing.T) {
	// GIVEN two independently built traces with the same content
	build := func() *Trace {
		tr := NewTrace("Optimal", 2, 2)
		tr.Record(NewStepRecord(1, 4, []PageID{4}, true, nil))
		tr.Record(NewStepRecord(2, 5, []PageID{4, 5}, true, nil))
		return tr
	}

	// THEN their fingerprints match
	if build().Fingerprint() != build().Fingerprint() {
		t.Error("identical traces must have identical fingerprints")
	}
}

func TestTrace_Fingerprint_SensitiveToContent(t *testing.T) {
	base := NewTrace("FIFO", 2, 1)
	base.Record(NewStepRecord(1, 4, []PageID{4}, true, nil))

	otherPolicy := NewTrace("LRU", 2, 1)
	otherPolicy.Record(NewStepRecord(1, 4, []PageID{4}, true, nil))

	otherFault := NewTrace("FIFO", 2, 1)
	otherFault.Record(NewStepRecord(1, 4, []PageID{4}, false, nil))

	otherEvict := NewTrace("FIFO", 2, 1)
	otherEvict.Record(NewStepRecord(1, 4, []PageID{4}, true, pagePtr(3)))

	for name, tr := range map[string]*Trace{"policy": otherPolicy, "fault": otherFault, "evicted": otherEvict} {
		if tr.Fingerprint() == base.Fingerprint() {
			t.Errorf("fingerprint did not change when %s changed", name)
		}
	}
}
