// Package testutil provides shared test infrastructure for the simulator.
// It holds the golden dataset types and trace assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// GoldenDataset represents the structure of testdata/goldentraces.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single pinned simulation.
// FaultSteps and Resident are optional; cases that only pin a fault count omit them.
type GoldenTestCase struct {
	Name       string           `json:"name"`
	Policy     string           `json:"policy"`
	Capacity   int              `json:"capacity"`
	Sequence   []trace.PageID   `json:"sequence"`
	FaultCount int              `json:"fault_count"`
	FaultSteps []int            `json:"fault_steps,omitempty"`
	Resident   [][]trace.PageID `json:"resident,omitempty"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldentraces.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertTraceInvariants checks properties every trace must satisfy:
// one record per reference, 1-based steps, the referenced page is resident
// after its step, and the resident set is bounded and duplicate-free.
func AssertTraceInvariants(t *testing.T, refs []trace.PageID, tr *trace.Trace) {
	t.Helper()
	if tr.Len() != len(refs) {
		t.Fatalf("%s: trace length %d, want %d", tr.Policy, tr.Len(), len(refs))
	}
	for i, r := range tr.Records {
		if r.Step != i+1 {
			t.Errorf("%s: record %d has step %d", tr.Policy, i, r.Step)
		}
		if r.Page != refs[i] {
			t.Errorf("%s step %d: page %d, want %d", tr.Policy, r.Step, r.Page, refs[i])
		}
		if len(r.Resident) > tr.Capacity {
			t.Errorf("%s step %d: %d resident pages exceed capacity %d", tr.Policy, r.Step, len(r.Resident), tr.Capacity)
		}
		seen := make(map[trace.PageID]bool, len(r.Resident))
		found := false
		for _, p := range r.Resident {
			if seen[p] {
				t.Errorf("%s step %d: duplicate resident page %d", tr.Policy, r.Step, p)
			}
			seen[p] = true
			if p == r.Page {
				found = true
			}
		}
		if !found {
			t.Errorf("%s step %d: referenced page %d not resident after step", tr.Policy, r.Step, r.Page)
		}
	}
}
