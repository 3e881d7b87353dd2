package geom

import "github.com/phil-mansfield/tetratree"

// orderedTF returns the three vertex ids of tetrahedron t's face at position
// pos, in the fixed per-position winding ordered_TF relies on. Valid only
// after OrderMeshFaces has canonicalized every tetrahedron's corner order.
// Grounded verbatim on geometry_wrapper.cpp's ordered_TF.
func orderedTF(t tetratree.Tetrahedron, pos int) (a, b, c int) {
	switch pos {
	case 0:
		return t.TV(0), t.TV(1), t.TV(2)
	case 1:
		return t.TV(1), t.TV(3), t.TV(2)
	case 2:
		return t.TV(3), t.TV(0), t.TV(2)
	default:
		return t.TV(1), t.TV(0), t.TV(3)
	}
}

// PointInTetraMesh reports whether p lies within tetrahedron tID of mesh,
// wrapping PointInTetra with the tetrahedron's actual corners. Grounded on
// geometry_wrapper.cpp's point_in_tetra.
func PointInTetraMesh(tID int, p tetratree.Point, mesh *tetratree.Mesh) bool {
	c := mesh.TetraCorners(tID)
	return PointInTetra(p, c[0], c[1], c[2], c[3])
}

// TetraInBoxQuery reports whether tetrahedron tID of mesh intersects the
// query box [min,max], using the open-face query-time test. Grounded on
// geometry_wrapper.cpp's tetra_in_box, which calls tetra_in_box_strict with
// no face-closing overrides -- every box face is open.
func TetraInBoxQuery(tID int, min, max tetratree.Point, mesh *tetratree.Mesh) bool {
	c := mesh.TetraCorners(tID)
	return TetraInBoxStrict(min, max, c)
}

// LineInBox reports whether segment p1-p2 at least partially intersects the
// closed-min/open-max box domain, the per-node pruning test used by line
// queries while descending the tree. Grounded on geometry_wrapper.cpp's
// line_in_box, which wraps ClipLine3D_middle.
func LineInBox(p1, p2 tetratree.Point, domain tetratree.Box) bool {
	return ClipLine3DMiddle(domain.Min, domain.Max, p1, p2)
}

// LineInBoundingBox reports whether segment p1-p2 intersects the closed
// bounding box bb of a compressed run, the per-run pruning test line queries
// use before testing individual tetrahedra. Grounded on
// geometry_wrapper.cpp's line_in_bounding_box, which wraps the plain
// (fully closed) ClipLine3D.
func LineInBoundingBox(p1, p2 tetratree.Point, bb tetratree.Box) bool {
	return ClipLine3D(bb.Min, bb.Max, p1, p2)
}

// LineInTetra reports whether segment v1-v2 intersects tetrahedron tID of
// mesh, via the face-plane entry/exit clipping test of Geometry_Wrapper's
// line_in_tetra: each of the tetrahedron's four faces (read in the fixed
// ordered_TF winding, which requires OrderMeshFaces to have already run)
// supplies an outward face normal; the segment's parametric range is
// clipped against the half-space each face defines, exactly as
// ClipLine3D clips against a box's six faces. This supersedes an earlier,
// unused Plucker-coordinate line/tetrahedron test (see DESIGN.md) since it
// is the algorithm the rest of this port's query pipeline actually depends
// on via the ordered-face precondition.
func LineInTetra(v1, v2 tetratree.Point, tID int, mesh *tetratree.Mesh) bool {
	t := mesh.Tetrahedron(tID)
	d := v2.Sub(v1)
	tFirst, tLast := 0.0, 1.0

	for i := 0; i < 4; i++ {
		fa, fb, fc := orderedTF(t, i)
		a := mesh.Vertex(fa).Point
		b := mesh.Vertex(fb).Point
		c := mesh.Vertex(fc).Point

		subBA := b.Sub(a)
		subCA := c.Sub(a)
		n := subBA.Cross3D(subCA)

		subV1A := v1.Sub(a)
		num := -subV1A.Dot3D(n)
		den := d.Dot3D(n)

		switch {
		case den == 0:
			if num < 0 {
				return false
			}
		case den < 0:
			t := num / den
			if t > tFirst {
				tFirst = t
			}
			if tFirst > tLast {
				return false
			}
		default:
			t := num / den
			if t < tLast {
				tLast = t
			}
			if tLast < tFirst {
				return false
			}
		}
	}
	return true
}
