package tetratree

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a location in 3D space. Ordering is strict lexicographic on
// (X, Y, Z), matching the reference's Point::operator< and operator>.
type Point struct {
	r3.Vec
}

// NewPoint builds a Point from three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{r3.Vec{X: x, Y: y, Z: z}}
}

func (p Point) coord(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Less reports whether p sorts strictly before q, comparing X, then Y, then
// Z in turn -- the reference's lexicographic operator<.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// Greater is the mirror of Less, matching the reference's operator>.
func (p Point) Greater(q Point) bool { return q.Less(p) }

// Norm3D returns the Euclidean norm of p treated as a vector from the
// origin.
func (p Point) Norm3D() float64 { return r3.Norm(p.Vec) }

// Norm3DTo returns the Euclidean distance between p and q.
func (p Point) Norm3DTo(q Point) float64 { return r3.Norm(r3.Sub(p.Vec, q.Vec)) }

// Cross3D returns the 3D cross product p x q.
func (p Point) Cross3D(q Point) Point { return Point{r3.Cross(p.Vec, q.Vec)} }

// Dot3D returns the 3D dot product p . q.
func (p Point) Dot3D(q Point) float64 { return r3.Dot(p.Vec, q.Vec) }

// EdgeDot3D returns the dot product of the two edge vectors (v1-p) and
// (v2-p), i.e. p treated as the shared anchor of both edges. Grounded on
// point.h's two-argument Point::cross_3D(v1, v2) overload, which despite its
// name computes this dot product rather than a cross product -- used by
// the 3D (field-free) trihedral-angle computation in the windowed
// distortion query.
func (p Point) EdgeDot3D(v1, v2 Point) float64 {
	return v1.Sub(p).Dot3D(v2.Sub(p))
}

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point { return Point{r3.Sub(p.Vec, q.Vec)} }

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point { return Point{r3.Add(p.Vec, q.Vec)} }

// Scale returns p scaled componentwise by s.
func (p Point) Scale(s float64) Point { return Point{r3.Scale(s, p.Vec)} }

// Distance3D is the Euclidean distance between two points, grounded on the
// reference's free-standing distance_3D helper.
func Distance3D(p, q Point) float64 { return p.Norm3DTo(q) }

// Dimension is always 3 for this mesh representation; kept as a method for
// symmetry with the reference's get_dimension().
func (p Point) Dimension() int { return 3 }

func fMin(a, b float64) float64 { return math.Min(a, b) }
func fMax(a, b float64) float64 { return math.Max(a, b) }
