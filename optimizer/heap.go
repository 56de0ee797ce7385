package optimizer

import (
	"container/heap"

	"github.com/hunterforge/core/hunters"
)

// topEntry pairs a ranking metric with the BuildResult it came from
// and a monotonic insertion sequence, mirroring the reference
// optimizer's (metric_value, id(build_result), build_result) heap
// tuples: the sequence breaks ties deterministically instead of
// relying on Go's unstable pointer-identity ordering.
type topEntry struct {
	metric float64
	seq    int64
	result hunters.BuildResult
}

// topKHeap is a fixed-capacity min-heap keyed on metric, so the root
// is always the current worst of the top-K kept so far. Pushing past
// capacity evicts the root when the new entry beats it.
type topKHeap struct {
	entries  []topEntry
	capacity int
	seq      int64
}

func newTopKHeap(capacity int) *topKHeap {
	h := &topKHeap{capacity: capacity}
	heap.Init(h)
	return h
}

// Offer inserts result under the given metric if the heap has room or
// result beats the current worst kept entry.
func (h *topKHeap) Offer(metric float64, result hunters.BuildResult) {
	entry := topEntry{metric: metric, seq: h.seq, result: result}
	h.seq++
	if h.Len() < h.capacity {
		heap.Push(h, entry)
		return
	}
	if h.Len() > 0 && metric > h.entries[0].metric {
		heap.Pop(h)
		heap.Push(h, entry)
	}
}

// Results returns the kept entries sorted best-first.
func (h *topKHeap) Results() []hunters.BuildResult {
	sorted := make([]topEntry, len(h.entries))
	copy(sorted, h.entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].metric < sorted[j].metric; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	out := make([]hunters.BuildResult, len(sorted))
	for i, e := range sorted {
		out[i] = e.result
	}
	return out
}

func (h *topKHeap) Len() int            { return len(h.entries) }
func (h *topKHeap) Less(i, j int) bool  { return h.entries[i].metric < h.entries[j].metric }
func (h *topKHeap) Swap(i, j int)       { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }
func (h *topKHeap) Push(x any)          { h.entries = append(h.entries, x.(topEntry)) }
func (h *topKHeap) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[:n-1]
	return item
}
