package sim

import (
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// ResidentSet is the bounded, order-preserving set of pages held during a simulation.
// It is backed by an indexed list, so membership checks are O(1) while the
// iteration order stays observable:
//   - Contains never reorders (FIFO and Optimal keep load order)
//   - Touch moves a page to the newest end (LRU keeps recency order)
//
// Thread-safety: NOT thread-safe. Each simulation owns its own ResidentSet.
type ResidentSet struct {
	capacity int
	frames   *simplelru.LRU
}

// NewResidentSet creates an empty ResidentSet holding at most capacity pages.
func NewResidentSet(capacity int) (*ResidentSet, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	frames, err := simplelru.NewLRU(capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("creating resident set: %w", err)
	}
	return &ResidentSet{capacity: capacity, frames: frames}, nil
}

// Capacity returns the maximum number of resident pages.
func (rs *ResidentSet) Capacity() int { return rs.capacity }

// Len returns the number of resident pages.
func (rs *ResidentSet) Len() int { return rs.frames.Len() }

// Full reports whether loading another page requires an eviction.
func (rs *ResidentSet) Full() bool { return rs.frames.Len() >= rs.capacity }

// Contains reports membership without changing the order.
func (rs *ResidentSet) Contains(page trace.PageID) bool {
	return rs.frames.Contains(page)
}

// Touch marks page as most recently used. Returns false if page is not resident.
func (rs *ResidentSet) Touch(page trace.PageID) bool {
	_, ok := rs.frames.Get(page)
	return ok
}

// Load places page at the newest end. The caller must make room first;
// loading into a full set or loading a resident page is a programming error.
func (rs *ResidentSet) Load(page trace.PageID) {
	if rs.frames.Contains(page) {
		panic(fmt.Sprintf("page %d is already resident", page))
	}
	if rs.Full() {
		panic(fmt.Sprintf("resident set full (capacity %d) while loading page %d", rs.capacity, page))
	}
	rs.frames.Add(page, struct{}{})
}

// EvictOldest removes the page at the oldest end (first loaded, or least recently used).
func (rs *ResidentSet) EvictOldest() (trace.PageID, bool) {
	key, _, ok := rs.frames.RemoveOldest()
	if !ok {
		return 0, false
	}
	return key.(trace.PageID), true
}

// Evict removes a specific page. Returns false if it was not resident.
func (rs *ResidentSet) Evict(page trace.PageID) bool {
	return rs.frames.Remove(page)
}

// Snapshot returns the resident pages from oldest to newest end.
func (rs *ResidentSet) Snapshot() []trace.PageID {
	keys := rs.frames.Keys()
	pages := make([]trace.PageID, len(keys))
	for i, k := range keys {
		pages[i] = k.(trace.PageID)
	}
	return pages
}
