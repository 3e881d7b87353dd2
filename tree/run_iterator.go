// Package tree implements the node flavors (C4), the run-length compressed
// tetrahedra/vertex arrays each node carries (C6), the four tree build
// criteria (C5), and the two-pass reindexer (C7).
//
// Grounded on tetrahedral_trees/node.h, node_t.h, node_v.h, run_iterator.h,
// p_tree.h/rt_tree.h/t_tree.h/pt_tree.h, and utilities/reindexer.h.
package tree

// RunIterator lazily expands a run-length compressed []int: a positive
// value v is a singleton element; a negative value -v is immediately
// followed by a run length k, expanding to the inclusive range [v, v+k].
// Grounded verbatim on run_iterator.h's NO_RUN/IN_RUN state machine.
//
// Every value actually stored in data is one greater than the logical id
// it encodes -- reserving 0 so that a singleton or run-header entry for id
// 0 is never mistaken for an absent/invalid slot. Value decodes back to
// the logical, 0-based id; callers never see the stored representation.
type RunIterator struct {
	data      []int
	pos       int
	current   int
	remaining int
	inRun     bool
}

// NewRunIterator returns a RunIterator positioned at the first element of
// data, or already Done if data is empty.
func NewRunIterator(data []int) *RunIterator {
	it := &RunIterator{data: data}
	it.updateElement()
	return it
}

// Done reports whether the iterator has consumed every element of data.
func (it *RunIterator) Done() bool { return it.pos >= len(it.data) }

// Value returns the current logical element; only valid when !Done().
func (it *RunIterator) Value() int { return it.current - 1 }

// Advance moves to the next logical element.
func (it *RunIterator) Advance() {
	if it.inRun {
		if it.remaining == 0 {
			it.inRun = false
			it.pos++
		} else {
			it.remaining--
		}
	} else {
		it.pos++
	}
	it.updateElement()
}

func (it *RunIterator) updateElement() {
	if it.Done() {
		return
	}
	if it.inRun {
		it.current = it.data[it.pos] - it.remaining - it.data[it.pos-1]
		return
	}
	v := it.data[it.pos]
	if v < 0 {
		it.inRun = true
		it.current = -v
		it.pos++
		it.remaining = it.data[it.pos]
		return
	}
	it.current = v
}

// Expand materializes every logical element of a run-length compressed
// array, in order.
func Expand(data []int) []int {
	out := make([]int, 0, len(data))
	for it := NewRunIterator(data); !it.Done(); it.Advance() {
		out = append(out, it.Value())
	}
	return out
}

// ElementCount counts the logical elements of a run-length compressed array
// by materializing the iterator, grounded on run_iterator.h's
// elementCount.
func ElementCount(data []int) int {
	count := 0
	for it := NewRunIterator(data); !it.Done(); it.Advance() {
		count++
	}
	return count
}

// ElementCountFast counts the logical elements of a run-length compressed
// array in a single O(len(data)) pass, without expanding any run, grounded
// on run_iterator.h's elementCountFast.
func ElementCountFast(data []int) int {
	count := 0
	for i := 0; i < len(data); i++ {
		if data[i] > 0 {
			count++
		} else {
			i++
			count += 1 + data[i]
		}
	}
	return count
}

// CompressRun run-length encodes a single ascending, contiguous run of ids
// [start, start+count-1]. A run of fewer than three ids is left as
// individual singleton entries -- folding only pays off once a run spans
// three or more consecutive ids -- matching the reindexer's
// compress_t_array threshold. The returned slice is in RunIterator's
// stored (id+1) representation; decode it with Expand/Value, not by hand.
func CompressRun(start, count int) []int {
	if count < 3 {
		out := make([]int, count)
		for i := 0; i < count; i++ {
			out[i] = start + i + 1
		}
		return out
	}
	return []int{-(start + 1), count - 1}
}
