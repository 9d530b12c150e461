package sim

import "github.com/SAI141003/VirtualMemoryManager/sim/trace"

// FIFO evicts the page that has been resident the longest.
// Hits do not refresh a page's position.
type FIFO struct{}

func (FIFO) Name() string { return PolicyFIFO }

// Simulate replays refs with first-in-first-out eviction.
func (f FIFO) Simulate(refs []trace.PageID, capacity int) (*trace.Trace, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	rs, err := NewResidentSet(capacity)
	if err != nil {
		return nil, err
	}
	refs = cloneRefs(refs)
	t := trace.NewTrace(f.Name(), capacity, len(refs))

	for i, page := range refs {
		if rs.Contains(page) {
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
