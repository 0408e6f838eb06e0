package beamheap

import "container/heap"

// item is a single beam entry: a caller-supplied payload scored for
// ordering. It tracks its own index within each of the two backing heaps
// so eviction from one side can immediately remove it from the other
// without a linear scan.
type item struct {
	score   float64
	payload interface{}
	minIdx  int
	maxIdx  int
}

type minOrder []*item

func (h minOrder) Len() int            { return len(h) }
func (h minOrder) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h minOrder) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].minIdx = i; h[j].minIdx = j }
func (h *minOrder) Push(x interface{}) { it := x.(*item); it.minIdx = len(*h); *h = append(*h, it) }
func (h *minOrder) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

type maxOrder []*item

func (h maxOrder) Len() int            { return len(h) }
func (h maxOrder) Less(i, j int) bool  { return h[i].score > h[j].score }
func (h maxOrder) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].maxIdx = i; h[j].maxIdx = j }
func (h *maxOrder) Push(x interface{}) { it := x.(*item); it.maxIdx = len(*h); *h = append(*h, it) }
func (h *maxOrder) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Heap is a bounded double-ended priority queue: at most capacity
// entries survive at once, the worst-scored is evicted automatically
// when a better one arrives at capacity. Lower score is "better" (min).
type Heap struct {
	capacity int
	min      minOrder
	max      maxOrder
}

// New returns an empty Heap bounded at capacity entries. capacity must
// be at least 1.
func New(capacity int) *Heap {
	if capacity < 1 {
		capacity = 1
	}
	return &Heap{capacity: capacity}
}

// Len returns the number of entries currently held.
func (h *Heap) Len() int { return h.min.Len() }

// Full reports whether the Heap is at capacity.
func (h *Heap) Full() bool { return h.Len() >= h.capacity }

// Push inserts payload under score. If the Heap is already full, the
// current worst (max-score) entry is evicted first when score is
// strictly better; if score is not better than the current worst, Push
// is a no-op and reports false. Otherwise it reports true.
func (h *Heap) Push(score float64, payload interface{}) bool {
	if h.Len() < h.capacity {
		it := &item{score: score, payload: payload}
		heap.Push(&h.min, it)
		heap.Push(&h.max, it)
		return true
	}
	if h.max.Len() == 0 || score >= h.max[0].score {
		return false
	}
	h.removeWorst()
	it := &item{score: score, payload: payload}
	heap.Push(&h.min, it)
	heap.Push(&h.max, it)
	return true
}

func (h *Heap) removeWorst() {
	worst := h.max[0]
	heap.Remove(&h.max, 0)
	heap.Remove(&h.min, worst.minIdx)
}

func (h *Heap) removeBest() {
	best := h.min[0]
	heap.Remove(&h.min, 0)
	heap.Remove(&h.max, best.maxIdx)
}

// PopMin removes and returns the lowest-scored entry. ok is false if the
// Heap is empty.
func (h *Heap) PopMin() (payload interface{}, score float64, ok bool) {
	if h.Len() == 0 {
		return nil, 0, false
	}
	best := h.min[0]
	payload, score = best.payload, best.score
	h.removeBest()
	return payload, score, true
}

// PopMax removes and returns the highest-scored entry. ok is false if the
// Heap is empty.
func (h *Heap) PopMax() (payload interface{}, score float64, ok bool) {
	if h.Len() == 0 {
		return nil, 0, false
	}
	worst := h.max[0]
	payload, score = worst.payload, worst.score
	h.removeWorst()
	return payload, score, true
}

// PeekMin returns the lowest-scored entry without removing it.
func (h *Heap) PeekMin() (payload interface{}, score float64, ok bool) {
	if h.Len() == 0 {
		return nil, 0, false
	}
	return h.min[0].payload, h.min[0].score, true
}
