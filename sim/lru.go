package sim

import "github.com/SAI141003/VirtualMemoryManager/sim/trace"

// LRU evicts the least recently used page.
// Every access, hit or fault, moves the page to the most-recently-used end,
// so the resident snapshot is in recency order (least recent first).
type LRU struct{}

func (LRU) Name() string { return PolicyLRU }

// Simulate replays refs with least-recently-used eviction.
func (l LRU) Simulate(refs []trace.PageID, capacity int) (*trace.Trace, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	rs, err := NewResidentSet(capacity)
	if err != nil {
		return nil, err
	}
	refs = cloneRefs(refs)
	t := trace.NewTrace(l.Name(), capacity, len(refs))

	for i, page := range refs {
		if rs.Touch(page) {
			t.Record(trace.NewStepRecord(i+1, page, rs.Snapshot(), false, nil))
			continue
		}
		var evicted *trace.PageID
		if rs.Full() {
			victim, _ := rs.EvictOldest()
			evicted = &victim
		}
		rs.Load(page)
		t.Record(trace.NewStepRecord(i+1, page, rs.Snapshot(), true, evicted))
	}
	return t, nil
}
