package tetratree

import "math"

// Vertex is a mesh Point carrying a scalar field value, following
// basic_types/vertex.h. Distance and dot-product between vertices are taken
// in the 4D space formed by appending the field value as a fourth
// coordinate -- this is what the windowed-distortion trihedral-angle
// computation (query.VertexDistortion) needs.
type Vertex struct {
	Point
	Field float64
}

// NewVertex builds a Vertex from coordinates and a field value.
func NewVertex(x, y, z, field float64) Vertex {
	return Vertex{Point: NewPoint(x, y, z), Field: field}
}

// Norm4D is the reference's norm(v): the Euclidean length of v in the 4D
// space (x, y, z, field).
func (v Vertex) Norm4D() float64 {
	return Distance4D(Vertex{}, v)
}

// Distance4D is the reference's norm(v1, v2): Euclidean distance between two
// vertices in the 4D space (x, y, z, field).
func Distance4D(v1, v2 Vertex) float64 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	dz := v1.Z - v2.Z
	df := v1.Field - v2.Field
	return sqrtSumSq(dx, dy, dz, df)
}

// ScalarProduct4D is the reference's scalar_product(v1, v2): the 4D dot
// product of the two vectors (v1 - origin) and (v2 - origin) -- used with
// vectors already anchored at a shared vertex, i.e. v1 and v2 are edge
// vectors, not absolute positions.
func ScalarProduct4D(v1, v2 Vertex) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z + v1.Field*v2.Field
}

// EdgeVertex4D returns v - apex as a 4D vector (spatial delta plus field
// delta), for use with ScalarProduct4D/Norm4D when measuring an angle
// anchored at a shared vertex -- the windowed-distortion trihedral-angle
// computation's edge vectors.
func EdgeVertex4D(apex, v Vertex) Vertex {
	return Vertex{Point: v.Point.Sub(apex.Point), Field: v.Field - apex.Field}
}

func sqrtSumSq(vs ...float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v * v
	}
	return math.Sqrt(sum)
}
