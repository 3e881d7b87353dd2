// Package geom implements the robust geometric predicates the spatial
// indexes build and query against: signed determinants, point/triangle/box
// and tetrahedron/box intersection tests, and the face-plane clipping
// line-in-tetrahedron test (LineInTetra, wrapper.go) used by line queries.
//
// Every predicate here is grounded on geometry/geometry.h and
// geometry/geometry.cpp: same tolerance, same case analysis, same
// closed/open face conventions. Coordinates are passed as tetratree.Point
// values rather than raw double arrays, and turn constants are named instead
// of the reference's bare -1/0/1, but the arithmetic is unchanged.
package geom

import (
	"math"

	"github.com/phil-mansfield/tetratree"
)

// Zero is the tolerance below which a determinant is treated as exactly
// zero, matching the reference's ZERO = 10E-14.
const Zero = 10e-14

// Turn classifies the sign of an orientation predicate.
type Turn int

const (
	LeftTurn  Turn = -1
	NoTurn    Turn = 0
	RightTurn Turn = 1
)

func det2D(a, b, c, d float64) float64 { return a*d - b*c }

func det3D(a1, a2, a3, b1, b2, b3, c1, c2, c3 float64) float64 {
	return a1*det2D(b2, b3, c2, c3) - a2*det2D(b1, b3, c1, c3) + a3*det2D(b1, b2, c1, c2)
}

func det4D(a1, a2, a3, a4, b1, b2, b3, b4, c1, c2, c3, c4, d1, d2, d3, d4 float64) float64 {
	return a1*det3D(b2, b3, b4, c2, c3, c4, d2, d3, d4) -
		a2*det3D(b1, b3, b4, c1, c3, c4, d1, d3, d4) +
		a3*det3D(b1, b2, b4, c1, c2, c4, d1, d2, d4) -
		a4*det3D(b1, b2, b3, c1, c2, c3, d1, d2, d3)
}

// DetSign2D returns the sign of the 2x2 determinant |a b; c d|, treating
// differences within Zero of each other as tied.
func DetSign2D(a, b, c, d float64) int {
	t1, t2 := a*d, b*c
	if t1 > t2+Zero {
		return 1
	}
	if t2 > t1+Zero {
		return -1
	}
	return 0
}

// DetSign3D returns the sign of the 3x3 determinant with the given rows.
func DetSign3D(a1, a2, a3, b1, b2, b3, c1, c2, c3 float64) int {
	d := det3D(a1, a2, a3, b1, b2, b3, c1, c2, c3)
	if math.Abs(d) <= Zero {
		return 0
	}
	if d > 0 {
		return 1
	}
	return -1
}

// DetSign4D returns the sign of the 4x4 determinant with the given rows.
func DetSign4D(a1, a2, a3, a4, b1, b2, b3, b4, c1, c2, c3, c4, d1, d2, d3, d4 float64) int {
	d := det4D(a1, a2, a3, a4, b1, b2, b3, b4, c1, c2, c3, c4, d1, d2, d3, d4)
	if math.Abs(d) <= Zero {
		return 0
	}
	if d > 0 {
		return 1
	}
	return -1
}

// PointTurn2D returns the sign of the turn from (x1,y1)->(x2,y2) as seen
// from (x,y).
func PointTurn2D(x, y, x1, y1, x2, y2 float64) int {
	return DetSign2D(x-x1, y-y1, x2-x1, y2-y1)
}

// FourPointTurn returns the sign of the orientation of points (x1,y1,z1),
// (x2,y2,z2), (x3,y3,z3) as seen from (x,y,z): negative if (x,y,z) is on the
// left of the oriented plane through the other three, positive if on the
// right, zero if coplanar.
func FourPointTurn(p, p1, p2, p3 tetratree.Point) int {
	return DetSign3D(
		p1.X-p.X, p1.Y-p.Y, p1.Z-p.Z,
		p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z,
		p3.X-p1.X, p3.Y-p1.Y, p3.Z-p1.Z)
}

// PointInTriangle2D reports whether (x,y) lies strictly inside the triangle
// (x1,y1) (x2,y2) (x3,y3), accepting either consistent winding.
func PointInTriangle2D(x, y, x1, y1, x2, y2, x3, y3 float64) bool {
	if PointTurn2D(x, y, x1, y1, x2, y2) == -1 &&
		PointTurn2D(x, y, x2, y2, x3, y3) == -1 &&
		PointTurn2D(x, y, x3, y3, x1, y1) == -1 {
		return true
	}
	if PointTurn2D(x, y, x1, y1, x2, y2) == 1 &&
		PointTurn2D(x, y, x2, y2, x3, y3) == 1 &&
		PointTurn2D(x, y, x3, y3, x1, y1) == 1 {
		return true
	}
	return false
}

// PointInTetra reports whether p lies within the closed tetrahedron with
// corners c0..c3: p exactly coincident with a corner counts as inside, and
// ties against the reference orientation (a face plane containing p) pass.
func PointInTetra(p, c0, c1, c2, c3 tetratree.Point) bool {
	if p == c0 || p == c1 || p == c2 || p == c3 {
		return true
	}
	orientation := detSign4DPoints(c0, c1, c2, c3)
	if d := detSign4DPoints(p, c1, c2, c3); d != orientation && d != 0 {
		return false
	}
	if d := detSign4DPoints(c0, p, c2, c3); d != orientation && d != 0 {
		return false
	}
	if d := detSign4DPoints(c0, c1, p, c3); d != orientation && d != 0 {
		return false
	}
	if d := detSign4DPoints(c0, c1, c2, p); d != orientation && d != 0 {
		return false
	}
	return true
}

// PointInTetraStrict reports whether p lies within the tetrahedron with
// corners c0..c3 without the coincident-corner shortcut PointInTetra takes,
// and without tolerating ties against the reference orientation: every one
// of the four signed volumes must agree exactly.
func PointInTetraStrict(p, c0, c1, c2, c3 tetratree.Point) bool {
	orientation := detSign4DPoints(c0, c1, c2, c3)
	if detSign4DPoints(p, c1, c2, c3) != orientation {
		return false
	}
	if detSign4DPoints(c0, p, c2, c3) != orientation {
		return false
	}
	if detSign4DPoints(c0, c1, p, c3) != orientation {
		return false
	}
	if detSign4DPoints(c0, c1, c2, p) != orientation {
		return false
	}
	return true
}

func detSign4DPoints(a, b, c, d tetratree.Point) int {
	return DetSign4D(
		a.X, a.Y, a.Z, 1,
		b.X, b.Y, b.Z, 1,
		c.X, c.Y, c.Z, 1,
		d.X, d.Y, d.Z, 1)
}
