package query

import (
	"sort"

	"github.com/phil-mansfield/tetratree"
)

// faceTuple names one triangular face of a tetrahedron: the face's three
// vertex ids (already sorted, via Tetrahedron.TF), the tetrahedron it
// belongs to, and the position within that tetrahedron the face is
// opposite to. Grounded on utilities/sorting_structure.h's
// triangle_tetrahedron_tuple.
type faceTuple struct {
	Face     [3]int
	TID      int
	Position int
}

// newFaceTuple builds the faceTuple for tetrahedron tID's face opposite
// position pos.
func newFaceTuple(mesh *tetratree.Mesh, tID, pos int) faceTuple {
	t := mesh.Tetrahedron(tID)
	a, b, c := t.TF(pos)
	return faceTuple{Face: [3]int{a, b, c}, TID: tID, Position: pos}
}

// incidentFaceTuples returns the three faceTuples for the faces of
// tetrahedron tID incident to the vertex at position vPos -- every face
// except the one opposite vPos itself. Grounded on border_checker.cpp's
// get_incident_triangles.
func incidentFaceTuples(mesh *tetratree.Mesh, tID, vPos int) [3]faceTuple {
	var out [3]faceTuple
	i := 0
	for pos := 0; pos < 4; pos++ {
		if pos == vPos {
			continue
		}
		out[i] = newFaceTuple(mesh, tID, pos)
		i++
	}
	return out
}

// sortFaceTuples orders tuples lexicographically by face, so that two
// tuples naming the same face (shared by the two tetrahedra that meet
// there) land adjacent to each other. Grounded on sorting.h's
// sorting_faces, backed by triangle_tetrahedron_tuple::operator<.
func sortFaceTuples(tuples []faceTuple) {
	sort.Slice(tuples, func(i, j int) bool {
		return lessFace(tuples[i].Face, tuples[j].Face)
	})
}

func lessFace(a, b [3]int) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
