package workload

import (
	"fmt"
	"math/rand"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// Defaults for random sequences: 15 references over pages 0..9.
const (
	DefaultRandomLength  = 15
	DefaultRandomMaxPage = 9
)

// RandomSequence draws length page identifiers uniformly from [0, maxPage].
// The same rng state always yields the same sequence.
func RandomSequence(rng *rand.Rand, length, maxPage int) ([]trace.PageID, error) {
	if length < 0 {
		return nil, fmt.Errorf("random sequence length must be non-negative, got %d", length)
	}
	if maxPage < 0 {
		return nil, fmt.Errorf("random sequence max page must be non-negative, got %d", maxPage)
	}
	refs := make([]trace.PageID, length)
	for i := range refs {
		refs[i] = trace.PageID(rng.Intn(maxPage + 1))
	}
	return refs, nil
}

// RandomSequenceFromSeed is RandomSequence with a fresh source seeded by seed.
func RandomSequenceFromSeed(seed int64, length, maxPage int) ([]trace.PageID, error) {
	return RandomSequence(newRandFromSeed(seed), length, maxPage)
}

// newRandFromSeed creates a new *rand.Rand from a seed (avoids importing math/rand in callers).
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
