// Package beamheap implements a bounded double-ended priority queue used
// by the snake planner's beam searches: a frontier that keeps only its C
// best-scored entries, evicting the worst as better candidates arrive.
//
// The queue is built as two container/heap heaps, a min-heap and a
// max-heap, that each hold every entry; an entry records its index in
// both, so removing it from one side also removes it from the other
// without a scan. The min side serves PopMin and PeekMin, the max side
// serves PopMax and eviction of the worst entry. Push is O(log C); PopMin
// and PopMax are O(log C).
package beamheap
