package geom

import (
	"log"

	"github.com/phil-mansfield/tetratree"
)

// OrderMeshFaces canonicalizes the winding order of every tetrahedron in
// mesh in place, then marks the mesh as face-ordered. This is a
// precondition for LineInTetra's ordered-face assumption (package query's
// line queries) and must run before any border-checking pass, since
// reordering discards whatever border-face sign bits a tetrahedron's
// vertex slots already carry -- grounded on geometry_wrapper.cpp's
// set_faces_ordering/set_face_orientation, which rebuilds each
// tetrahedron from absolute (sign-stripped) vertex ids.
func OrderMeshFaces(mesh *tetratree.Mesh) {
	for i := 0; i < mesh.NumTetrahedra(); i++ {
		t := mesh.Tetrahedron(i)
		orderTetrahedronFaces(&t, mesh)
		mesh.SetTetrahedron(i, t)
	}
	mesh.SetFacesOrdered()
}

func orderTetrahedronFaces(t *tetratree.Tetrahedron, mesh *tetratree.Mesh) {
	ids := [4]int{t.TV(0), t.TV(1), t.TV(2), t.TV(3)}
	pt := func(id int) tetratree.Point { return mesh.Vertex(id).Point }
	perms := [3][3]int{{0, 1, 2}, {1, 0, 2}, {2, 1, 0}}
	for _, perm := range perms {
		a, b, c := ids[perm[0]], ids[perm[1]], ids[perm[2]]
		if FourPointTurn(pt(ids[3]), pt(a), pt(b), pt(c)) == 1 {
			t.Vertices = [4]int{a, b, c, ids[3]}
			return
		}
	}
	log.Printf("geom: no right-turn face ordering for tetrahedron %v; left unchanged", ids)
}
