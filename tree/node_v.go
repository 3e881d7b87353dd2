package tree

import "github.com/phil-mansfield/tetratree"

// NodeV is a node that indexes both vertices and tetrahedra, used by the PR
// (P) and PM (PT) tree builders. Grounded on node_v.h.
type NodeV struct {
	tArray
	vertices []int
	sons     []*NodeV
}

// IsLeaf reports whether n has no children.
func (n *NodeV) IsLeaf() bool { return n.sons == nil }

// InitSons allocates n's son slots, all nil.
func (n *NodeV) InitSons(sonNumber int) { n.sons = make([]*NodeV, sonNumber) }

// Son returns the i'th son, or nil if unset.
func (n *NodeV) Son(i int) *NodeV { return n.sons[i] }

// SetSon installs son at position i.
func (n *NodeV) SetSon(i int, son *NodeV) { n.sons[i] = son }

// AddVertex appends a raw, already-encoded entry to n's vertex array -- see
// tArray.AddTetrahedron's comment on the id+1 storage convention.
func (n *NodeV) AddVertex(id int) { n.vertices = append(n.vertices, id) }

// ClearVArray frees n's vertex array.
func (n *NodeV) ClearVArray() { n.vertices = nil }

// VArray returns n's raw vertex array.
func (n *NodeV) VArray() []int { return n.vertices }

// VArraySize returns the number of raw entries in n's vertex array.
func (n *NodeV) VArraySize() int { return len(n.vertices) }

// RealVArraySize returns the number of vertices n's array actually encodes.
func (n *NodeV) RealVArraySize() int { return ElementCountFast(n.vertices) }

// VArrayIterator returns a lazy iterator over n's vertices.
func (n *NodeV) VArrayIterator() *RunIterator { return NewRunIterator(n.vertices) }

// SetVRange collapses n's vertex array to the encoded range [start,end),
// after the reindexer has renumbered vertices so that every vertex n
// indexes is contiguous. Grounded on node_v.h's set_v_range: the range is
// stored as two entries, [-(start+1), end-start-1], in RunIterator's id+1
// representation.
func (n *NodeV) SetVRange(start, end int) {
	n.vertices = []int{-(start + 1), end - start - 1}
}

// VStart returns the first vertex id n indexes; only meaningful once
// SetVRange has been called.
func (n *NodeV) VStart() int {
	v := n.vertices[0]
	if v < 0 {
		return -v - 1
	}
	return v - 1
}

// VEnd returns the first vertex id past the range n indexes; only
// meaningful once SetVRange has been called.
func (n *NodeV) VEnd() int {
	return n.VStart() + n.vertices[1] + 1
}

// IndexesVertex reports whether vID falls within n's reindexed vertex range.
func (n *NodeV) IndexesVertex(vID int) bool {
	return vID >= n.VStart() && vID < n.VEnd()
}

// IndexesTetrahedronVertices reports whether at least one vertex of t falls
// within n's reindexed vertex range.
func (n *NodeV) IndexesTetrahedronVertices(t tetratree.Tetrahedron) bool {
	if n.VArraySize() == 0 {
		return false
	}
	for i := 0; i < 4; i++ {
		if n.IndexesVertex(t.TV(i)) {
			return true
		}
	}
	return false
}

// CompletelyIndexesTetrahedronVertices reports whether every vertex of t
// falls within n's reindexed vertex range.
func (n *NodeV) CompletelyIndexesTetrahedronVertices(t tetratree.Tetrahedron) bool {
	if n.VArraySize() == 0 {
		return false
	}
	for i := 0; i < 4; i++ {
		if !n.IndexesVertex(t.TV(i)) {
			return false
		}
	}
	return true
}
