package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
	"github.com/SAI141003/VirtualMemoryManager/sim/workload"
)

// inputOptions is the flag state that selects a reference sequence, a capacity
// and a policy. The *Changed fields record whether the user set the flag, so
// preset and spec values only fill in what was not given explicitly.
type inputOptions struct {
	Policy        string
	PolicyChanged bool
	Frames        int
	FramesChanged bool

	Sequence     string
	SequenceFile string
	Preset       string
	Spec         string
	Random       bool
	RandomLength int
	RandomMax    int
	Seed         int64

	DefaultsPath string
}

// simInput is a validated simulation request.
// Policy is empty when a run spec leaves its policy unset and --policy was not
// given; Policies is the set a run spec asks for (nil for other sources).
type simInput struct {
	Refs     []trace.PageID
	Frames   int
	Policy   string
	Policies []string
	Source   string // human-readable origin of the sequence, for logs
}

// singlePolicy returns the policy for commands that simulate exactly one.
func (in *simInput) singlePolicy() (string, error) {
	if in.Policy == "" {
		return "", fmt.Errorf("%w: %s names no policy; set policy in the spec or pass --policy",
			sim.ErrInvalidAlgorithm, in.Source)
	}
	return in.Policy, nil
}

// comparePolicies picks the policies for a comparison: --policies when set,
// else the run spec's set, else all of them.
func (in *simInput) comparePolicies(flagged []string, flagChanged bool) []string {
	names := flagged
	if !flagChanged {
		names = sim.PolicyNames()
		if in.Policies != nil {
			names = in.Policies
		}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, sim.CanonicalPolicyName(n))
	}
	return out
}

func optionsFromFlags(cmd *cobra.Command) inputOptions {
	flags := cmd.Flags()
	return inputOptions{
		Policy:        policyName,
		PolicyChanged: flags.Changed("policy"),
		Frames:        frames,
		FramesChanged: flags.Changed("frames"),
		Sequence:      sequenceText,
		SequenceFile:  sequenceFile,
		Preset:        presetName,
		Spec:          specPath,
		Random:        useRandom,
		RandomLength:  randomLength,
		RandomMax:     randomMaxPage,
		Seed:          seed,
		DefaultsPath:  defaultsFilePath,
	}
}

// resolve picks the reference sequence from the first source given, in order:
// --spec, --sequence, --sequence-file, --preset, --random.
func (o inputOptions) resolve() (*simInput, error) {
	in := &simInput{Frames: o.Frames, Policy: o.Policy}

	cfg, err := loadDefaultsConfig(o.DefaultsPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logrus.Debugf("no defaults file at %s; using built-in defaults", o.DefaultsPath)
		cfg = nil
	}
	if cfg != nil {
		if !o.PolicyChanged && cfg.Defaults.Policy != "" {
			in.Policy = cfg.Defaults.Policy
		}
		if !o.FramesChanged && cfg.Defaults.Frames > 0 {
			in.Frames = cfg.Defaults.Frames
		}
	}

	switch {
	case o.Spec != "":
		spec, err := workload.LoadSpec(o.Spec)
		if err != nil {
			return nil, err
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid run spec %s: %w", o.Spec, err)
		}
		if in.Refs, err = spec.References(); err != nil {
			return nil, err
		}
		if !o.FramesChanged {
			in.Frames = spec.Frames
		}
		switch {
		case o.PolicyChanged:
			in.Policies = []string{o.Policy}
		case spec.Policy != "":
			in.Policy = spec.Policy
			in.Policies = spec.Policies()
		default:
			in.Policy = ""
			in.Policies = spec.Policies()
		}
		in.Source = "spec " + o.Spec
	case o.Sequence != "":
		if in.Refs, err = workload.ParseSequence(o.Sequence); err != nil {
			return nil, err
		}
		in.Source = "--sequence"
	case o.SequenceFile != "":
		if in.Refs, err = workload.LoadSequenceCSV(o.SequenceFile); err != nil {
			return nil, err
		}
		in.Source = "file " + o.SequenceFile
	case o.Preset != "":
		if cfg == nil {
			return nil, fmt.Errorf("preset %q requested but defaults file %s was not found", o.Preset, o.DefaultsPath)
		}
		p, ok := cfg.Presets[o.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q; check %s for available presets", o.Preset, o.DefaultsPath)
		}
		in.Refs = append([]trace.PageID(nil), p.Sequence...)
		if !o.FramesChanged && p.Frames > 0 {
			in.Frames = p.Frames
		}
		in.Source = "preset " + o.Preset
	case o.Random:
		if in.Refs, err = workload.RandomSequenceFromSeed(o.Seed, o.RandomLength, o.RandomMax); err != nil {
			return nil, err
		}
		in.Source = fmt.Sprintf("random seed=%d", o.Seed)
	default:
		return nil, fmt.Errorf("no reference sequence: use --sequence, --sequence-file, --preset, --spec or --random")
	}

	if in.Policy != "" {
		in.Policy = sim.CanonicalPolicyName(in.Policy)
		if !sim.IsValidPolicy(in.Policy) {
			return nil, fmt.Errorf("%w: %q; valid policies: FIFO, LRU, Optimal", sim.ErrInvalidAlgorithm, in.Policy)
		}
	}
	for i, name := range in.Policies {
		in.Policies[i] = sim.CanonicalPolicyName(name)
		if !sim.IsValidPolicy(in.Policies[i]) {
			return nil, fmt.Errorf("%w: %q; valid policies: FIFO, LRU, Optimal", sim.ErrInvalidAlgorithm, name)
		}
	}
	if in.Frames < 1 {
		return nil, fmt.Errorf("%w: frames must be >= 1, got %d", sim.ErrInvalidCapacity, in.Frames)
	}
	return in, nil
}
