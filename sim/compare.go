package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// ComparisonResult holds one trace per policy, all computed over the same input.
// Every trace has length len(Sequence).
type ComparisonResult struct {
	Capacity int
	Sequence []trace.PageID
	Traces   map[string]*trace.Trace
}

// Policies returns the policy names present in the result, in canonical order
// (FIFO, LRU, Optimal) so output is stable regardless of map iteration.
func (cr *ComparisonResult) Policies() []string {
	names := make([]string, 0, len(cr.Traces))
	for _, name := range PolicyNames() {
		if _, ok := cr.Traces[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Trace returns the trace for a policy, or nil if it was not part of the comparison.
func (cr *ComparisonResult) Trace(name string) *trace.Trace {
	return cr.Traces[name]
}

// FaultTable summarizes every trace, in canonical policy order.
func (cr *ComparisonResult) FaultTable() []trace.FaultStats {
	names := cr.Policies()
	table := make([]trace.FaultStats, 0, len(names))
	for _, name := range names {
		table = append(table, trace.Summarize(cr.Traces[name]))
	}
	return table
}

// Best returns the policy with the fewest faults; ties go to the earlier
// policy in canonical order. Returns "" for an empty result.
func (cr *ComparisonResult) Best() string {
	best := ""
	bestFaults := 0
	for _, s := range cr.FaultTable() {
		if best == "" || s.FaultCount < bestFaults {
			best = s.Policy
			bestFaults = s.FaultCount
		}
	}
	return best
}

// CompareAll runs FIFO, LRU and Optimal over refs with the same capacity.
func CompareAll(ctx context.Context, refs []trace.PageID, capacity int) (*ComparisonResult, error) {
	return Compare(ctx, refs, capacity, PolicyNames()...)
}

// Compare runs the named policies concurrently over independent copies of refs.
// Unknown names fail with ErrInvalidAlgorithm before any simulation starts;
// duplicate names are run once.
func Compare(ctx context.Context, refs []trace.PageID, capacity int, names ...string) (*ComparisonResult, error) {
	policies := make([]Policy, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		p, err := NewPolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}

	result := &ComparisonResult{
		Capacity: capacity,
		Sequence: cloneRefs(refs),
		Traces:   make(map[string]*trace.Trace, len(policies)),
	}
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range policies {
		p := p
		local := cloneRefs(refs)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			t, err := p.Simulate(local, capacity)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name(), err)
			}
			logrus.Debugf("compare: %s finished %d steps in %v", p.Name(), t.Len(), time.Since(start))
			mu.Lock()
			result.Traces[p.Name()] = t
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
