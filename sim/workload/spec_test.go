package workload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpec_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
policy: LRU
frames: 3
sequence: [1, 2, 3, 4, 1, 2, 5]
`)
	spec, err := LoadSpec(path)
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	assert.Equal(t, "LRU", spec.Policy)
	assert.Equal(t, 3, spec.Frames)
	assert.Equal(t, []trace.PageID{1, 2, 3, 4, 1, 2, 5}, spec.Sequence)
	assert.Equal(t, []string{"LRU"}, spec.Policies())
}

func TestLoadSpec_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a key
	path := writeTempYAML(t, `
policy: FIFO
frame: 3
`)
	// THEN strict parsing rejects it
	_, err := LoadSpec(path)
	assert.Error(t, err)
}

func TestLoadSpec_LowercasePolicyNormalized(t *testing.T) {
	path := writeTempYAML(t, `
policy: optimal
frames: 2
sequence: [1]
`)
	spec, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "Optimal", spec.Policy)
}

func TestLoadSpec_NonexistentFile(t *testing.T) {
	_, err := LoadSpec("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadSpec_MalformedYAML(t *testing.T) {
	path := writeTempYAML(t, "{{invalid yaml")
	_, err := LoadSpec(path)
	assert.Error(t, err)
}

func TestSpec_EmptyPolicy_AllPolicies(t *testing.T) {
	spec := &Spec{Frames: 3, Sequence: []trace.PageID{1}}
	require.NoError(t, spec.Validate())
	assert.Equal(t, sim.PolicyNames(), spec.Policies())
}

func TestSpec_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		target error
	}{
		{"unknown policy", Spec{Policy: "Clock", Frames: 3}, sim.ErrInvalidAlgorithm},
		{"zero frames", Spec{Policy: "FIFO", Frames: 0}, sim.ErrInvalidCapacity},
		{"negative page", Spec{Frames: 1, Sequence: []trace.PageID{1, -2}}, ErrMalformedSequence},
		{"both sources", Spec{Frames: 1, Sequence: []trace.PageID{1}, Random: &RandomSpec{Length: 3, MaxPage: 2}}, nil},
		{"negative random length", Spec{Frames: 1, Random: &RandomSpec{Length: -1}}, nil},
		{"negative max page", Spec{Frames: 1, Random: &RandomSpec{Length: 1, MaxPage: -1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "got %v", err)
			}
		})
	}
}

func TestSpec_References_Random_Deterministic(t *testing.T) {
	spec := &Spec{Frames: 3, Random: &RandomSpec{Length: 20, MaxPage: 4, Seed: 11}}
	require.NoError(t, spec.Validate())

	a, err := spec.References()
	require.NoError(t, err)
	b, err := spec.References()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 20)
}

func TestSpec_References_CopiesSequence(t *testing.T) {
	spec := &Spec{Frames: 1, Sequence: []trace.PageID{5, 6}}
	refs, err := spec.References()
	require.NoError(t, err)
	refs[0] = 0
	assert.Equal(t, trace.PageID(5), spec.Sequence[0])
}
