package sim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// Policy names accepted by NewPolicy and Simulate.
const (
	PolicyFIFO    = "FIFO"
	PolicyLRU     = "LRU"
	PolicyOptimal = "Optimal"
)

var (
	// ErrInvalidAlgorithm is returned when a policy name is outside the supported set.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
	// ErrInvalidCapacity is returned when capacity < 1.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// ValidPolicies is the set of recognized policy names.
// Shared by IsValidPolicy() and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{PolicyFIFO: true, PolicyLRU: true, PolicyOptimal: true}

// PolicyNames lists the policies in canonical comparison order.
func PolicyNames() []string {
	return []string{PolicyFIFO, PolicyLRU, PolicyOptimal}
}

// IsValidPolicy returns true if name is a recognized policy (case-sensitive).
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// CanonicalPolicyName maps a case-insensitive spelling ("lru", "OPTIMAL")
// to its canonical name. Unknown names are returned unchanged.
func CanonicalPolicyName(name string) string {
	for _, p := range PolicyNames() {
		if strings.EqualFold(p, strings.TrimSpace(name)) {
			return p
		}
	}
	return name
}

// Policy replays a reference sequence against a bounded resident set.
// Implementations are pure: the same input always yields an identical Trace,
// and the caller's slice is never modified.
type Policy interface {
	Name() string
	Simulate(refs []trace.PageID, capacity int) (*trace.Trace, error)
}

// NewPolicy creates a policy by name.
// Valid names are defined in ValidPolicies.
func NewPolicy(name string) (Policy, error) {
	if !IsValidPolicy(name) {
		return nil, fmt.Errorf("%w: %q; valid policies: [%s]", ErrInvalidAlgorithm, name, strings.Join(PolicyNames(), ", "))
	}
	switch name {
	case PolicyFIFO:
		return FIFO{}, nil
	case PolicyLRU:
		return LRU{}, nil
	case PolicyOptimal:
		return Optimal{}, nil
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}

// Simulate runs the named policy over refs with the given capacity.
// The policy name is checked before the capacity.
func Simulate(name string, refs []trace.PageID, capacity int) (*trace.Trace, error) {
	p, err := NewPolicy(name)
	if err != nil {
		return nil, err
	}
	return p.Simulate(refs, capacity)
}

// validateCapacity is shared by every policy so a bad capacity fails before
// any step is recorded.
func validateCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidCapacity, capacity)
	}
	return nil
}

// cloneRefs gives a policy a private copy of the sequence.
func cloneRefs(refs []trace.PageID) []trace.PageID {
	out := make([]trace.PageID, len(refs))
	copy(out, refs)
	return out
}
