package geom

import (
	"github.com/phil-mansfield/tetratree"
)

// OrderFaces canonicalizes the winding of a tetrahedron's corner array with
// the same rule OrderMeshFaces (faces.go) applies in place to every
// tetrahedron of a mesh, which is the ordering LineInTetra relies on; it
// does not modify a mesh itself. Grounded on
// geometry_wrapper.h's set_face_orientation: it tries the identity
// ordering and the two transpositions that swap corner 0 with corner 1,
// then corner 0 with corner 2, keeping the first whose FourPointTurn
// against the fourth corner comes out a right turn. A cyclic permutation
// of three corners would never change the answer -- a 3-cycle is an even
// permutation, same parity as identity -- so only transpositions (odd
// permutations) can flip a left turn into a right one; identity plus any
// one transposition already covers both parities for a non-degenerate
// tetrahedron.
func OrderFaces(corners [4]tetratree.Point) [4]tetratree.Point {
	perms := [3][3]int{{0, 1, 2}, {1, 0, 2}, {2, 1, 0}}
	for _, perm := range perms {
		a, b, c := corners[perm[0]], corners[perm[1]], corners[perm[2]]
		if FourPointTurn(corners[3], a, b, c) == 1 {
			return [4]tetratree.Point{a, b, c, corners[3]}
		}
	}
	return corners
}

// GetTetrahedronCentroid returns the arithmetic mean of a tetrahedron's four
// corners.
func GetTetrahedronCentroid(corners [4]tetratree.Point) tetratree.Point {
	sum := corners[0].Add(corners[1]).Add(corners[2]).Add(corners[3])
	return sum.Scale(0.25)
}
