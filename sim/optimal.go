package sim

import "github.com/SAI141003/VirtualMemoryManager/sim/trace"

// Optimal evicts the resident page whose next reference lies furthest in the future
// (Belady's clairvoyant policy). It needs the whole sequence up front and cannot
// run online.
//
// Ties, including several pages that are never referenced again, go to the first
// page met when scanning the resident set in load order.
type Optimal struct{}

func (Optimal) Name() string { return PolicyOptimal }

// Simulate replays refs with clairvoyant eviction.
func (o Optimal) Simulate(refs []trace.PageID, capacity int) (*trace.Trace, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	rs, err := NewResidentSet(capacity)
	if err != nil {
		return nil, err
	}
	refs = cloneRefs(refs)
	t := trace.NewTrace(o.Name(), capacity, len(refs))

	next := nextOccurrences(refs)
	never := len(refs)
	// nextUse holds, for every resident page, the index of its next reference
	// after the most recent one (never if there is none).
	nextUse := make(map[trace.PageID]int, rs.Capacity())

	for i, page := range refs {
		if rs.Contains(page) {
			nextUse[page] = next[i]
			t.Record(trace.NewStepRecord(i+1, page, rs.Snapshot(), false, nil))
			continue
		}
		var evicted *trace.PageID
		if rs.Full() {
			victim := furthestNextUse(rs.Snapshot(), nextUse, never)
			rs.Evict(victim)
			delete(nextUse, victim)
			evicted = &victim
		}
		rs.Load(page)
		nextUse[page] = next[i]
		t.Record(trace.NewStepRecord(i+1, page, rs.Snapshot(), true, evicted))
	}
	return t, nil
}

// nextOccurrences returns, for each position i, the index of the next reference
// to refs[i] after i, or len(refs) if refs[i] is never referenced again.
func nextOccurrences(refs []trace.PageID) []int {
	next := make([]int, len(refs))
	seen := make(map[trace.PageID]int)
	for i := len(refs) - 1; i >= 0; i-- {
		if j, ok := seen[refs[i]]; ok {
			next[i] = j
		} else {
			next[i] = len(refs)
		}
		seen[refs[i]] = i
	}
	return next
}

// furthestNextUse scans frames in order and keeps the first maximum.
func furthestNextUse(frames []trace.PageID, nextUse map[trace.PageID]int, never int) trace.PageID {
	victim := frames[0]
	best := -1
	for _, p := range frames {
		d, ok := nextUse[p]
		if !ok {
			d = never
		}
		if d > best {
			best = d
			victim = p
		}
	}
	return victim
}
