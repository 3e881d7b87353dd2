package tree

import "github.com/phil-mansfield/tetratree"

// NodeT is a node that indexes only tetrahedra, used by the PMR (RT) and
// PM2 (T) tree builders. Grounded on node_t.h.
type NodeT struct {
	tArray
	sons []*NodeT
}

// IsLeaf reports whether n has no children.
func (n *NodeT) IsLeaf() bool { return n.sons == nil }

// InitSons allocates n's son slots, all nil.
func (n *NodeT) InitSons(sonNumber int) { n.sons = make([]*NodeT, sonNumber) }

// Son returns the i'th son, or nil if unset.
func (n *NodeT) Son(i int) *NodeT { return n.sons[i] }

// SetSon installs son at position i.
func (n *NodeT) SetSon(i int, son *NodeT) { n.sons[i] = son }

// IndexesVertex is the NodeT wrapper for flavors (T-node) that do not carry
// their own vertex array: the vertex range is supplied by the caller,
// typically computed once by the reindexer, grounded on node_t.h's
// indexes_vertex.
func (n *NodeT) IndexesVertex(vStart, vEnd, vID int) bool {
	return vID >= vStart && vID < vEnd
}

// VRange computes the contiguous range of vertex ids n completely contains
// within domain, valid only after the reindexer has already run its
// vertex pass so that geometrically coherent vertices share consecutive
// ids. ok is false if the node contains no vertex of domain. Grounded on
// node_t.cpp's get_v_range.
func (n *NodeT) VRange(domain tetratree.Box, mesh *tetratree.Mesh) (start, end int, ok bool) {
	start, end = -1, -1
	meshMax := mesh.Domain().Max
	for it := n.TArrayIterator(); !it.Done(); it.Advance() {
		t := mesh.Tetrahedron(it.Value())
		for v := 0; v < 4; v++ {
			vID := t.TV(v)
			if start != -1 && vID >= start && vID < end {
				continue
			}
			if !domain.ContainsRouting(mesh.Vertex(vID).Point, meshMax) {
				continue
			}
			if start == -1 || start > vID {
				start = vID
			}
			if end == -1 || end <= vID {
				end = vID + 1
			}
		}
	}
	return start, end, !(start == -1 && end == -1)
}
