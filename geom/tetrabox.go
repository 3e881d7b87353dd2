package geom

import "github.com/phil-mansfield/tetratree"

// rotatedFace returns the three corners of corners starting at i, in the
// cyclic order used by geometry.cpp's tetra_in_box loops: (c[i], c[i+1],
// c[i+2]) mod 4, which is the face opposite corner i+3.
func rotatedFace(corners [4]tetratree.Point, i int) [3]tetratree.Point {
	return [3]tetratree.Point{
		corners[i%4], corners[(i+1)%4], corners[(i+2)%4],
	}
}

// TetraInBox reports whether the closed box [min,max] intersects the closed
// tetrahedron with the given corners -- the build-time test every tree
// inserter uses (tetra_in_box_build in the reference): every face of the box
// is treated as closed, so a tetrahedron merely touching the box counts.
func TetraInBox(min, max tetratree.Point, corners [4]tetratree.Point) bool {
	for i := 0; i < 4; i++ {
		p := corners[i]
		if p.X >= min.X && p.X <= max.X &&
			p.Y >= min.Y && p.Y <= max.Y &&
			p.Z >= min.Z && p.Z <= max.Z {
			return true
		}
	}

	boxCorners := [8]tetratree.Point{
		tetratree.NewPoint(min.X, min.Y, min.Z),
		tetratree.NewPoint(min.X, min.Y, max.Z),
		tetratree.NewPoint(min.X, max.Y, min.Z),
		tetratree.NewPoint(max.X, min.Y, min.Z),
		tetratree.NewPoint(max.X, max.Y, max.Z),
		tetratree.NewPoint(max.X, max.Y, min.Z),
		tetratree.NewPoint(max.X, min.Y, max.Z),
		tetratree.NewPoint(min.X, max.Y, max.Z),
	}
	for _, bc := range boxCorners {
		if PointInTetra(bc, corners[0], corners[1], corners[2], corners[3]) {
			return true
		}
	}

	for i := 0; i < 4; i++ {
		if ClipTriangle3D(min, max, rotatedFace(corners, i)) {
			return true
		}
	}
	return false
}

// TetraInBoxStrict is the query-time tetrahedron/box test (tetra_in_box in
// geometry.cpp): every box face is open, a vertex exactly on the box
// boundary does not by itself count, and a tetrahedron face coplanar with a
// box face is checked via its 2D overlap.
func TetraInBoxStrict(min, max tetratree.Point, corners [4]tetratree.Point) bool {
	for j := 0; j < 3; j++ {
		allMin, allMax := true, true
		for _, p := range corners {
			if coordAt(p, j) > coordAt(min, j) {
				allMin = false
			}
			if coordAt(p, j) < coordAt(max, j) {
				allMax = false
			}
		}
		if allMin || allMax {
			return false
		}
	}

	for _, p := range corners {
		if inOpenBox(p, min, max) {
			return true
		}
	}

	boxCorners := [8]tetratree.Point{
		tetratree.NewPoint(min.X, min.Y, min.Z),
		tetratree.NewPoint(min.X, min.Y, max.Z),
		tetratree.NewPoint(min.X, max.Y, min.Z),
		tetratree.NewPoint(max.X, min.Y, min.Z),
		tetratree.NewPoint(max.X, max.Y, max.Z),
		tetratree.NewPoint(max.X, max.Y, min.Z),
		tetratree.NewPoint(max.X, min.Y, max.Z),
		tetratree.NewPoint(min.X, max.Y, max.Z),
	}
	for _, bc := range boxCorners {
		if PointInTetraStrict(bc, corners[0], corners[1], corners[2], corners[3]) {
			return true
		}
	}
	center := tetratree.NewPoint(0.5*(min.X+max.X), 0.5*(min.Y+max.Y), 0.5*(min.Z+max.Z))
	if PointInTetraStrict(center, corners[0], corners[1], corners[2], corners[3]) {
		return true
	}

	for i := 0; i < 4; i++ {
		if ClipTriangle3DStrictTangentFree(min, max, rotatedFace(corners, i)) {
			return true
		}
	}

	for i := 0; i < 4; i++ {
		face := rotatedFace(corners, i)
		opposite := corners[(i+3)%4]
		for axis := 0; axis < 3; axis++ {
			a1, a2 := (axis+1)%3, (axis+2)%3
			if coordAt(face[0], axis) == coordAt(min, axis) &&
				coordAt(face[1], axis) == coordAt(min, axis) &&
				coordAt(face[2], axis) == coordAt(min, axis) {
				if ClipTriangle2DStrict(coordAt(min, a1), coordAt(min, a2), coordAt(max, a1), coordAt(max, a2),
					[3]float64{coordAt(face[0], a1), coordAt(face[1], a1), coordAt(face[2], a1)},
					[3]float64{coordAt(face[0], a2), coordAt(face[1], a2), coordAt(face[2], a2)}) &&
					coordAt(opposite, axis) > coordAt(min, axis) {
					return true
				}
			}
			if coordAt(face[0], axis) == coordAt(max, axis) &&
				coordAt(face[1], axis) == coordAt(max, axis) &&
				coordAt(face[2], axis) == coordAt(max, axis) {
				if ClipTriangle2DStrict(coordAt(min, a1), coordAt(min, a2), coordAt(max, a1), coordAt(max, a2),
					[3]float64{coordAt(face[0], a1), coordAt(face[1], a1), coordAt(face[2], a1)},
					[3]float64{coordAt(face[0], a2), coordAt(face[1], a2), coordAt(face[2], a2)}) &&
					coordAt(opposite, axis) < coordAt(max, axis) {
					return true
				}
			}
		}
	}
	return false
}

// coordAt returns p's i'th coordinate (0=X, 1=Y, 2=Z); tetratree.Point's own
// coord accessor is unexported, so the box-face sweeps in this package use
// this local equivalent instead.
func coordAt(p tetratree.Point, i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
