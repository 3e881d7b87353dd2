package tree

import "github.com/phil-mansfield/tetratree"

// tArray is the run-length compressed tetrahedra array every node flavor
// carries, grounded on node.h's Node<N> base template. Go has no template
// base class standing in for both flavors' son-array element type, so
// NodeT and NodeV each embed tArray directly instead of sharing a generic
// base.
type tArray struct {
	tetrahedra []int
}

// AddTetrahedron appends a raw, already-encoded entry to the node's array --
// a genuine tetrahedron id must be offset by the caller first (RunIterator's
// stored representation reserves 0), while a run's length field is passed
// through unshifted; compressTArray is the only caller that does both.
func (a *tArray) AddTetrahedron(id int) { a.tetrahedra = append(a.tetrahedra, id) }

// TArray returns the node's raw, possibly run-length compressed tetrahedra
// array.
func (a *tArray) TArray() []int { return a.tetrahedra }

// ClearTArray frees the tetrahedra array, used once a node has been
// subdivided and no longer needs its own copy.
func (a *tArray) ClearTArray() { a.tetrahedra = nil }

// TArraySize returns the number of raw entries (counting a run as a single
// entry), matching get_t_array_size.
func (a *tArray) TArraySize() int { return len(a.tetrahedra) }

// RealTArraySize returns the number of tetrahedra the array actually
// encodes, expanding runs without materializing them.
func (a *tArray) RealTArraySize() int { return ElementCountFast(a.tetrahedra) }

// TArrayIterator returns a lazy iterator over the node's tetrahedra.
func (a *tArray) TArrayIterator() *RunIterator { return NewRunIterator(a.tetrahedra) }

// CompletelyIndexesTetrahedronVerticesDom reports whether every vertex of t
// lies within domain, per the mesh-max routing rule -- the domain-only
// vertex test both node flavors share, grounded on node.h's
// completely_indexes_tetrahedron_vertices_dom.
func CompletelyIndexesTetrahedronVerticesDom(t tetratree.Tetrahedron, domain tetratree.Box, mesh *tetratree.Mesh) bool {
	meshMax := mesh.Domain().Max
	for v := 0; v < 4; v++ {
		if !domain.ContainsRouting(mesh.Vertex(t.TV(v)).Point, meshMax) {
			return false
		}
	}
	return true
}

// IndexesTetrahedronVerticesDom reports whether at least one vertex of t
// lies within domain, grounded on node.h's indexes_tetrahedron_vertices_dom.
func IndexesTetrahedronVerticesDom(t tetratree.Tetrahedron, domain tetratree.Box, mesh *tetratree.Mesh) bool {
	meshMax := mesh.Domain().Max
	for v := 0; v < 4; v++ {
		if domain.ContainsRouting(mesh.Vertex(t.TV(v)).Point, meshMax) {
			return true
		}
	}
	return false
}

// GetRunBoundingBox reads a run starting at data[pos] (pos must point at a
// negative, run-start entry) and returns the bounding box of every
// tetrahedron in that run along with the run's [start,end] tetrahedron id
// range and the position just past the run. ok is false if data[pos] is not
// a run start. Grounded on node.h's get_run_bounding_box.
func GetRunBoundingBox(data []int, pos int, mesh *tetratree.Mesh) (bb tetratree.Box, runStart, runEnd, next int, ok bool) {
	if data[pos] >= 0 {
		return tetratree.Box{}, 0, 0, pos, false
	}
	runStart = -data[pos] - 1
	pos++
	runEnd = runStart + data[pos]

	bb = tetratree.EmptyBox()
	for tID := runStart; tID <= runEnd; tID++ {
		t := mesh.Tetrahedron(tID)
		for i := 0; i < 4; i++ {
			bb = bb.ResizeToInclude(mesh.Vertex(t.TV(i)).Point)
		}
	}
	return bb, runStart, runEnd, pos + 1, true
}
