package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// Spec describes one simulation run, loadable from a YAML file.
//
//	policy: LRU          # FIFO, LRU, Optimal; empty compares all three
//	frames: 3
//	sequence: [1, 2, 3, 4, 1, 2, 5]
//
// Instead of an explicit sequence, a spec may ask for a seeded random one:
//
//	random: {length: 15, max_page: 9, seed: 7}
type Spec struct {
	Policy   string         `yaml:"policy"`
	Frames   int            `yaml:"frames"`
	Sequence []trace.PageID `yaml:"sequence,omitempty"`
	Random   *RandomSpec    `yaml:"random,omitempty"`
}

// RandomSpec configures a generated reference sequence.
type RandomSpec struct {
	Length  int   `yaml:"length"`
	MaxPage int   `yaml:"max_page"`
	Seed    int64 `yaml:"seed"`
}

// LoadSpec reads and parses a YAML run specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run spec: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing run spec: %w", err)
	}
	NormalizePolicy(&spec)
	return &spec, nil
}

// NormalizePolicy maps case variants of a policy name ("lru", "optimal") to the
// canonical spelling in-place, logging a notice when it does.
func NormalizePolicy(spec *Spec) {
	canonical := sim.CanonicalPolicyName(spec.Policy)
	if canonical != spec.Policy {
		logrus.Warnf("policy %q auto-mapped to %q; update your spec to use the canonical name", spec.Policy, canonical)
		spec.Policy = canonical
	}
}

// Validate checks that all fields in the spec are valid.
func (s *Spec) Validate() error {
	if s.Policy != "" && !sim.IsValidPolicy(s.Policy) {
		return fmt.Errorf("%w: %q; valid: FIFO, LRU, Optimal, or empty for all", sim.ErrInvalidAlgorithm, s.Policy)
	}
	if s.Frames < 1 {
		return fmt.Errorf("%w: frames must be >= 1, got %d", sim.ErrInvalidCapacity, s.Frames)
	}
	if s.Random != nil {
		if len(s.Sequence) > 0 {
			return fmt.Errorf("sequence and random are mutually exclusive")
		}
		if s.Random.Length < 0 {
			return fmt.Errorf("random.length must be non-negative, got %d", s.Random.Length)
		}
		if s.Random.MaxPage < 0 {
			return fmt.Errorf("random.max_page must be non-negative, got %d", s.Random.MaxPage)
		}
	}
	for i, p := range s.Sequence {
		if p < 0 {
			return fmt.Errorf("%w: sequence[%d] = %d is negative", ErrMalformedSequence, i, p)
		}
	}
	return nil
}

// References returns the spec's reference sequence, generating it when the
// spec asks for a random one.
func (s *Spec) References() ([]trace.PageID, error) {
	if s.Random != nil {
		return RandomSequenceFromSeed(s.Random.Seed, s.Random.Length, s.Random.MaxPage)
	}
	refs := make([]trace.PageID, len(s.Sequence))
	copy(refs, s.Sequence)
	return refs, nil
}

// Policies returns the policies the spec asks to run: the named one, or all
// three when policy is empty.
func (s *Spec) Policies() []string {
	if s.Policy == "" {
		return sim.PolicyNames()
	}
	return []string{s.Policy}
}
