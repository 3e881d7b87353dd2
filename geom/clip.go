package geom

import "github.com/phil-mansfield/tetratree"

// clipTest restricts [u1,u2] by intersecting it with the half-line solution
// of u*p <= q, reporting whether the resulting interval is still non-empty.
// This is the reference's ClipTest3D (and, with strict tie-breaking,
// ClipTest3D_strict) generalized over one boundary comparator.
func clipTest(p, q float64, u1, u2 *float64, strict bool) bool {
	switch {
	case p < 0:
		r := q / p
		if strict {
			if r >= *u2 {
				return false
			}
		} else if r > *u2 {
			return false
		}
		if r > *u1 {
			*u1 = r
		}
	case p > 0:
		r := q / p
		if strict {
			if r <= *u1 {
				return false
			}
		} else if r < *u1 {
			return false
		}
		if r < *u2 {
			*u2 = r
		}
	default:
		if strict {
			if q <= 0 {
				return false
			}
		} else if q < 0 {
			return false
		}
	}
	return true
}

// ClipLine3D reports whether segment p1-p2 is at least partially inside the
// closed box [min,max], using the Liang-Barsky line-clipping algorithm.
func ClipLine3D(min, max, p1, p2 tetratree.Point) bool {
	return clipLine3D(min, max, p1, p2, false)
}

// ClipLine3DStrict is ClipLine3D with every boundary treated as open: a
// segment merely touching a face of the box does not count.
func ClipLine3DStrict(min, max, p1, p2 tetratree.Point) bool {
	return clipLine3D(min, max, p1, p2, true)
}

func clipLine3D(min, max, p1, p2 tetratree.Point, strict bool) bool {
	u1, u2 := 0.0, 1.0
	dx, dy, dz := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	return clipTest(-dx, p1.X-min.X, &u1, &u2, strict) &&
		clipTest(dx, max.X-p1.X, &u1, &u2, strict) &&
		clipTest(-dy, p1.Y-min.Y, &u1, &u2, strict) &&
		clipTest(dy, max.Y-p1.Y, &u1, &u2, strict) &&
		clipTest(-dz, p1.Z-min.Z, &u1, &u2, strict) &&
		clipTest(dz, max.Z-p1.Z, &u1, &u2, strict)
}

// ClipLine3DMiddle is the reference's ClipLine3D_middle: the three faces
// incident to min are closed, the three faces incident to max are open.
func ClipLine3DMiddle(min, max, p1, p2 tetratree.Point) bool {
	u1, u2 := 0.0, 1.0
	dx, dy, dz := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	return clipTest(-dx, p1.X-min.X, &u1, &u2, false) &&
		clipTest(dx, max.X-p1.X, &u1, &u2, true) &&
		clipTest(-dy, p1.Y-min.Y, &u1, &u2, false) &&
		clipTest(dy, max.Y-p1.Y, &u1, &u2, true) &&
		clipTest(-dz, p1.Z-min.Z, &u1, &u2, false) &&
		clipTest(dz, max.Z-p1.Z, &u1, &u2, true)
}

// FaceFlags selects which of a box's six faces ClipLine3DMiddleFlagged
// actually tests; a face with its flag false is treated as absent (always
// passing), used when the box sits against the outer edge of the mesh
// domain and that face should be treated as closed instead of open.
type FaceFlags struct {
	MinX, MaxX, MinY, MaxY, MinZ, MaxZ bool
}

// ClipLine3DMiddleFlagged is the six-flag overload of ClipLine3D_middle: for
// each face whose flag is set, apply the closed (min faces) or open (max
// faces) clip test; faces with a false flag are skipped entirely.
func ClipLine3DMiddleFlagged(min, max, p1, p2 tetratree.Point, f FaceFlags) bool {
	u1, u2 := 0.0, 1.0
	dx, dy, dz := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	if f.MinX && !clipTest(-dx, p1.X-min.X, &u1, &u2, false) {
		return false
	}
	if f.MaxX && !clipTest(dx, max.X-p1.X, &u1, &u2, true) {
		return false
	}
	if f.MinY && !clipTest(-dy, p1.Y-min.Y, &u1, &u2, false) {
		return false
	}
	if f.MaxY && !clipTest(dy, max.Y-p1.Y, &u1, &u2, true) {
		return false
	}
	if f.MinZ && !clipTest(-dz, p1.Z-min.Z, &u1, &u2, false) {
		return false
	}
	if f.MaxZ && !clipTest(dz, max.Z-p1.Z, &u1, &u2, true) {
		return false
	}
	return true
}

// clipTest2D is ClipTest2D_strict: always strict, used only by
// ClipLine2DStrict/ClipTriangle2DStrict.
func clipTest2D(p, q float64, u1, u2 *float64) bool {
	return clipTest(p, q, u1, u2, true)
}

// ClipLine2DStrict reports whether segment (x1,y1)-(x2,y2) is at least
// partially inside the open box [minX,maxX]x[minY,maxY].
func ClipLine2DStrict(minX, minY, maxX, maxY, x1, y1, x2, y2 float64) bool {
	u1, u2 := 0.0, 1.0
	dx, dy := x2-x1, y2-y1
	return clipTest2D(-dx, x1-minX, &u1, &u2) &&
		clipTest2D(dx, maxX-x1, &u1, &u2) &&
		clipTest2D(-dy, y1-minY, &u1, &u2) &&
		clipTest2D(dy, maxY-y1, &u1, &u2)
}

// overlapXSegment reports whether edge (x1,y1)-(x2,y2) overlaps the edge
// lying on x=x0 between y01 and y02.
func overlapXSegment(x1, y1, x2, y2, x0, y01, y02 float64) bool {
	if x1 != x0 || x2 != x0 {
		return false
	}
	if y1 <= y01 && y2 <= y01 {
		return false
	}
	if y1 >= y02 && y2 >= y02 {
		return false
	}
	return true
}

// ClipTriangle2DStrict reports whether the open box [minX,maxX]x[minY,maxY]
// and the triangle (x[i],y[i]) intersect with non-empty 2D interior overlap.
func ClipTriangle2DStrict(minX, minY, maxX, maxY float64, x, y [3]float64) bool {
	if x[0] <= minX && x[1] <= minX && x[2] <= minX {
		return false
	}
	if x[0] >= maxX && x[1] >= maxX && x[2] >= maxX {
		return false
	}
	if y[0] <= minY && y[1] <= minY && y[2] <= minY {
		return false
	}
	if y[0] >= maxY && y[1] >= maxY && y[2] >= maxY {
		return false
	}

	for i := 0; i < 3; i++ {
		if x[i] < maxX && x[i] > minX && y[i] < maxY && y[i] > minY {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if ClipLine2DStrict(minX, minY, maxX, maxY, x[i], y[i], x[j], y[j]) {
			return true
		}
	}
	if PointInTriangle2D(0.5*(minX+maxX), 0.5*(minY+maxY), x[0], y[0], x[1], y[1], x[2], y[2]) {
		return true
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3
		if overlapXSegment(x[i], y[i], x[j], y[j], minX, minY, maxY) && x[k] > minX {
			return true
		}
		if overlapXSegment(x[i], y[i], x[j], y[j], maxX, minY, maxY) && x[k] < maxX {
			return true
		}
		if overlapXSegment(y[i], x[i], y[j], x[j], minY, minX, maxX) && y[k] > minY {
			return true
		}
		if overlapXSegment(y[i], x[i], y[j], x[j], maxY, minX, maxX) && y[k] < maxY {
			return true
		}
	}
	return false
}

// ClipTriangle3D reports whether the closed box [min,max] and the triangle
// p[0..2] intersect, tangency included.
func ClipTriangle3D(min, max tetratree.Point, p [3]tetratree.Point) bool {
	for i := 0; i < 3; i++ {
		if inOpenBox(p[i], min, max) {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		if ClipLine3D(min, max, p[i], p[(i+1)%3]) {
			return true
		}
	}
	return inOpenBox(p[0], min, max)
}

func inOpenBox(p, min, max tetratree.Point) bool {
	return p.X < max.X && p.X > min.X &&
		p.Y < max.Y && p.Y > min.Y &&
		p.Z < max.Z && p.Z > min.Z
}

// EdgeIntersectTriangleStrict reports whether edge p1-p2 pierces the plane
// of the triangle strictly between its endpoints' opposite orientations.
func EdgeIntersectTriangleStrict(p1, p2 tetratree.Point, tri [3]tetratree.Point) bool {
	turn1 := FourPointTurn(p1, tri[0], tri[1], tri[2])
	turn2 := FourPointTurn(p2, tri[0], tri[1], tri[2])
	return turn1 == -turn2 && turn1 != 0
}

// ClipTriangle3DStrict reports whether the box [min,max] and triangle p[0..2]
// intersect with the box faces named by closedFaces treated as closed (and
// every other box face treated as open); a tangent triangle lying only on an
// open face reports no intersection.
//
// closedFaces.MinX/MinY/MinZ close the box's own min faces (the faces the
// spatial index always treats as closed); MaxX/MaxY/MaxZ close a max face
// only when the box sits against that coordinate of the whole mesh domain.
func ClipTriangle3DStrict(min, max tetratree.Point, p [3]tetratree.Point, closedFaces FaceFlags) bool {
	for i := 0; i < 3; i++ {
		if inOpenBox(p[i], min, max) {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		if ClipLine3DStrict(min, max, p[i], p[(i+1)%3]) {
			return true
		}
	}

	if edgeCutsTriangle(tetratree.NewPoint(min.X, min.Y, min.Z), tetratree.NewPoint(max.X, min.Y, min.Z), p) &&
		PointInTriangle2D(min.Y, min.Z, p[0].Y, p[0].Z, p[1].Y, p[1].Z, p[2].Y, p[2].Z) {
		return true
	}
	if edgeCutsTriangle(tetratree.NewPoint(min.X, min.Y, min.Z), tetratree.NewPoint(min.X, max.Y, min.Z), p) &&
		PointInTriangle2D(min.X, min.Z, p[0].X, p[0].Z, p[1].X, p[1].Z, p[2].X, p[2].Z) {
		return true
	}
	if edgeCutsTriangle(tetratree.NewPoint(min.X, min.Y, min.Z), tetratree.NewPoint(min.X, min.Y, max.Z), p) &&
		PointInTriangle2D(min.X, min.Y, p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y) {
		return true
	}

	if closedFaces.MinX && p[0].X == min.X && p[1].X == min.X && p[2].X == min.X {
		if ClipTriangle2DStrict(min.Y, min.Z, max.Y, max.Z, [3]float64{p[0].Y, p[1].Y, p[2].Y}, [3]float64{p[0].Z, p[1].Z, p[2].Z}) {
			return true
		}
	}
	if closedFaces.MinY && p[0].Y == min.Y && p[1].Y == min.Y && p[2].Y == min.Y {
		if ClipTriangle2DStrict(min.X, min.Z, max.X, max.Z, [3]float64{p[0].X, p[1].X, p[2].X}, [3]float64{p[0].Z, p[1].Z, p[2].Z}) {
			return true
		}
	}
	if closedFaces.MinZ && p[0].Z == min.Z && p[1].Z == min.Z && p[2].Z == min.Z {
		if ClipTriangle2DStrict(min.X, min.Y, max.X, max.Y, [3]float64{p[0].X, p[1].X, p[2].X}, [3]float64{p[0].Y, p[1].Y, p[2].Y}) {
			return true
		}
	}
	if closedFaces.MaxX && p[0].X == max.X && p[1].X == max.X && p[2].X == max.X {
		if ClipTriangle2DStrict(min.Y, min.Z, max.Y, max.Z, [3]float64{p[0].Y, p[1].Y, p[2].Y}, [3]float64{p[0].Z, p[1].Z, p[2].Z}) {
			return true
		}
	}
	if closedFaces.MaxY && p[0].Y == max.Y && p[1].Y == max.Y && p[2].Y == max.Y {
		if ClipTriangle2DStrict(min.X, min.Z, max.X, max.Z, [3]float64{p[0].X, p[1].X, p[2].X}, [3]float64{p[0].Z, p[1].Z, p[2].Z}) {
			return true
		}
	}
	if closedFaces.MaxZ && p[0].Z == max.Z && p[1].Z == max.Z && p[2].Z == max.Z {
		if ClipTriangle2DStrict(min.X, min.Y, max.X, max.Y, [3]float64{p[0].X, p[1].X, p[2].X}, [3]float64{p[0].Y, p[1].Y, p[2].Y}) {
			return true
		}
	}
	return false
}

func edgeCutsTriangle(a, b tetratree.Point, tri [3]tetratree.Point) bool {
	s1 := detSign4DPoints(a, tri[0], tri[1], tri[2])
	s2 := detSign4DPoints(b, tri[0], tri[1], tri[2])
	return s1 != 0 && s1 == -s2
}

// ClipTriangle3DStrictTangentFree is the no-flag overload of
// ClipTriangle3D_strict: every box face is treated as open, and a triangle
// lying exactly on a face (with the rest of the tetrahedron strictly inside)
// is still detected via the centroid test and the box-edge/triangle
// intersection sweep, rather than via face coplanarity.
func ClipTriangle3DStrictTangentFree(min, max tetratree.Point, p [3]tetratree.Point) bool {
	if p[0].X <= min.X && p[1].X <= min.X && p[2].X <= min.X {
		return false
	}
	if p[0].Y <= min.Y && p[1].Y <= min.Y && p[2].Y <= min.Y {
		return false
	}
	if p[0].Z <= min.Z && p[1].Z <= min.Z && p[2].Z <= min.Z {
		return false
	}
	if p[0].X >= max.X && p[1].X >= max.X && p[2].X >= max.X {
		return false
	}
	if p[0].Y >= max.Y && p[1].Y >= max.Y && p[2].Y >= max.Y {
		return false
	}
	if p[0].Z >= max.Z && p[1].Z >= max.Z && p[2].Z >= max.Z {
		return false
	}

	for i := 0; i < 3; i++ {
		if inOpenBox(p[i], min, max) {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		if ClipLine3DStrict(min, max, p[i], p[(i+1)%3]) {
			return true
		}
	}

	cx := (p[0].X + p[1].X + p[2].X) / 3.0
	cy := (p[0].Y + p[1].Y + p[2].Y) / 3.0
	cz := (p[0].Z + p[1].Z + p[2].Z) / 3.0
	if cx > min.X && cx < max.X && cy > min.Y && cy < max.Y && cz > min.Z && cz < max.Z {
		return true
	}

	boxEdges := []struct {
		a, b tetratree.Point
		test func() bool
	}{
		{tetratree.NewPoint(min.X, min.Y, min.Z), tetratree.NewPoint(max.X, min.Y, min.Z),
			func() bool { return PointInTriangle2D(min.Y, min.Z, p[0].Y, p[0].Z, p[1].Y, p[1].Z, p[2].Y, p[2].Z) }},
		{tetratree.NewPoint(min.X, max.Y, min.Z), tetratree.NewPoint(max.X, max.Y, min.Z),
			func() bool { return PointInTriangle2D(max.Y, min.Z, p[0].Y, p[0].Z, p[1].Y, p[1].Z, p[2].Y, p[2].Z) }},
		{tetratree.NewPoint(min.X, max.Y, max.Z), tetratree.NewPoint(max.X, max.Y, max.Z),
			func() bool { return PointInTriangle2D(max.Y, max.Z, p[0].Y, p[0].Z, p[1].Y, p[1].Z, p[2].Y, p[2].Z) }},
		{tetratree.NewPoint(min.X, min.Y, max.Z), tetratree.NewPoint(max.X, min.Y, max.Z),
			func() bool { return PointInTriangle2D(min.Y, max.Z, p[0].Y, p[0].Z, p[1].Y, p[1].Z, p[2].Y, p[2].Z) }},
		{tetratree.NewPoint(min.X, min.Y, min.Z), tetratree.NewPoint(min.X, max.Y, min.Z),
			func() bool { return PointInTriangle2D(min.X, min.Z, p[0].X, p[0].Z, p[1].X, p[1].Z, p[2].X, p[2].Z) }},
		{tetratree.NewPoint(min.X, min.Y, max.Z), tetratree.NewPoint(min.X, max.Y, max.Z),
			func() bool { return PointInTriangle2D(min.X, max.Z, p[0].X, p[0].Z, p[1].X, p[1].Z, p[2].X, p[2].Z) }},
		{tetratree.NewPoint(max.X, min.Y, min.Z), tetratree.NewPoint(max.X, max.Y, min.Z),
			func() bool { return PointInTriangle2D(max.X, min.Z, p[0].X, p[0].Z, p[1].X, p[1].Z, p[2].X, p[2].Z) }},
		{tetratree.NewPoint(max.X, min.Y, max.Z), tetratree.NewPoint(max.X, max.Y, max.Z),
			func() bool { return PointInTriangle2D(max.X, max.Z, p[0].X, p[0].Z, p[1].X, p[1].Z, p[2].X, p[2].Z) }},
		{tetratree.NewPoint(min.X, min.Y, min.Z), tetratree.NewPoint(min.X, min.Y, max.Z),
			func() bool { return PointInTriangle2D(min.X, min.Y, p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y) }},
		{tetratree.NewPoint(min.X, max.Y, min.Z), tetratree.NewPoint(min.X, max.Y, max.Z),
			func() bool { return PointInTriangle2D(min.X, max.Y, p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y) }},
		{tetratree.NewPoint(max.X, min.Y, min.Z), tetratree.NewPoint(max.X, min.Y, max.Z),
			func() bool { return PointInTriangle2D(max.X, min.Y, p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y) }},
		{tetratree.NewPoint(max.X, max.Y, min.Z), tetratree.NewPoint(max.X, max.Y, max.Z),
			func() bool { return PointInTriangle2D(max.X, max.Y, p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y) }},
	}
	for _, e := range boxEdges {
		if EdgeIntersectTriangleStrict(e.a, e.b, p) && e.test() {
			return true
		}
	}
	return false
}
