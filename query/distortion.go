package query

import (
	"math"

	"github.com/phil-mansfield/tetratree"
)

// getCos returns the cosine of the planar angle at a vertex between two
// edges of the given lengths and dot product, per geometry_distortion.cpp's
// getCos.
func getCos(scalarProduct, norm1, norm2 float64) float64 {
	return scalarProduct / (norm1 * norm2)
}

func getSin(cos float64) float64 {
	return math.Sqrt(1 - cos*cos)
}

// getDihedralAngle returns the dihedral angle opposite the face whose own
// planar angle has cosine cosOpposite, given the cosines and sines of the
// trihedral angle's other two planar angles -- the spherical law of
// cosines, grounded on geometry_distortion.cpp's getDihedralAngle.
func getDihedralAngle(cosOpposite, cosAdj1, cosAdj2, sinAdj1, sinAdj2 float64) float64 {
	return math.Acos((cosOpposite - cosAdj1*cosAdj2) / (sinAdj1 * sinAdj2))
}

// computeTrihedralAngle returns the spherical excess (A+B+C-pi) of the
// trihedral angle whose three planar face angles have the given edge dot
// products and edge norms, grounded on geometry_distortion.cpp's
// computeTrihedralAngle.
func computeTrihedralAngle(prod12, prod13, prod23, norm1, norm2, norm3 float64) float64 {
	cos12 := getCos(prod12, norm1, norm2)
	cos13 := getCos(prod13, norm1, norm3)
	cos23 := getCos(prod23, norm2, norm3)
	sin12 := getSin(cos12)
	sin13 := getSin(cos13)
	sin23 := getSin(cos23)

	a := getDihedralAngle(cos23, cos12, cos13, sin12, sin13)
	b := getDihedralAngle(cos13, cos12, cos23, sin12, sin23)
	c := getDihedralAngle(cos12, cos13, cos23, sin13, sin23)
	return a + b + c - math.Pi
}

// getTrihedralAngle is the 4D, field-aware trihedral angle at apex spanned
// by v1, v2, v3 -- the three other corners of a tetrahedron sharing apex as
// a vertex. Grounded on geometry_distortion.cpp's get_trihedral_angle.
func getTrihedralAngle(apex, v1, v2, v3 tetratree.Vertex) float64 {
	e1 := tetratree.EdgeVertex4D(apex, v1)
	e2 := tetratree.EdgeVertex4D(apex, v2)
	e3 := tetratree.EdgeVertex4D(apex, v3)
	return computeTrihedralAngle(
		tetratree.ScalarProduct4D(e1, e2),
		tetratree.ScalarProduct4D(e1, e3),
		tetratree.ScalarProduct4D(e2, e3),
		e1.Norm4D(), e2.Norm4D(), e3.Norm4D())
}

// getTrihedralAngle3D is the pure-3D (field-free) trihedral angle at apex
// spanned by v1, v2, v3, grounded on geometry_distortion.cpp's
// get_trihedral_angle_3D.
func getTrihedralAngle3D(apex, v1, v2, v3 tetratree.Point) float64 {
	return computeTrihedralAngle(
		apex.EdgeDot3D(v1, v2), apex.EdgeDot3D(v1, v3), apex.EdgeDot3D(v2, v3),
		apex.Norm3DTo(v1), apex.Norm3DTo(v2), apex.Norm3DTo(v3))
}

// trihedralAngleAt returns the trihedral angle tetrahedron tID subtends at
// vertex vID, using the 4D field-aware computation when use4D is set, the
// pure-3D one otherwise.
func trihedralAngleAt(mesh *tetratree.Mesh, tID, vID int, use4D bool) float64 {
	t := mesh.Tetrahedron(tID)
	vPos := 0
	for p := 0; p < 4; p++ {
		if t.TV(p) == vID {
			vPos = p
			break
		}
	}
	var others [3]int
	i := 0
	for p := 0; p < 4; p++ {
		if p == vPos {
			continue
		}
		others[i] = t.TV(p)
		i++
	}
	if use4D {
		apex := mesh.Vertex(vID)
		return getTrihedralAngle(apex, mesh.Vertex(others[0]), mesh.Vertex(others[1]), mesh.Vertex(others[2]))
	}
	apex := mesh.Vertex(vID).Point
	return getTrihedralAngle3D(apex, mesh.Vertex(others[0]).Point, mesh.Vertex(others[1]).Point, mesh.Vertex(others[2]).Point)
}

// VertexDistortion returns a curvature-like distortion measure at vertex
// vID, given the ids of every tetrahedron incident to it (as produced by a
// windowed VT query) and whether the border checker (CalcMeshBordersT/V)
// has flagged vID as lying on the mesh boundary.
//
// An interior vertex's incident tetrahedra close up into a full solid
// angle, so its distortion is the spherical angular defect 4*pi minus the
// sum of their (4D, field-aware) trihedral angles -- zero for a vertex
// whose neighbourhood is locally flat in the embedding 4D sense. A border
// vertex's incident tetrahedra only span an open fan, not a full solid
// angle, so the reference instead sums both the field-free (3D) and the
// 4D trihedral angles over the fan and reports S3D - S4D, per
// finalize_Distortion_Leaf (topological_queries.cpp). Grounded on
// topological_queries_windowed.h's windowed_Distortion_Leaf.
func VertexDistortion(mesh *tetratree.Mesh, vID int, incidentTetrahedra []int, border bool) float64 {
	sum4D := 0.0
	for _, tID := range incidentTetrahedra {
		sum4D += trihedralAngleAt(mesh, tID, vID, true)
	}
	if !border {
		return 4*math.Pi - sum4D
	}

	sum3D := 0.0
	for _, tID := range incidentTetrahedra {
		sum3D += trihedralAngleAt(mesh, tID, vID, false)
	}
	return sum3D - sum4D
}
