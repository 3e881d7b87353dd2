package tetratree

// Box is an axis-aligned bounding box, grounded on basic_types/box.h.
// Invariant: Min.c <= Max.c componentwise.
type Box struct {
	Min, Max Point
}

// NewBox builds a Box from two corners, reordering componentwise if needed
// so that the invariant Min <= Max holds.
func NewBox(a, b Point) Box {
	return Box{
		Min: NewPoint(fMin(a.X, b.X), fMin(a.Y, b.Y), fMin(a.Z, b.Z)),
		Max: NewPoint(fMax(a.X, b.X), fMax(a.Y, b.Y), fMax(a.Z, b.Z)),
	}
}

// EmptyBox returns a Box that ResizeToInclude can grow from: Min at +Inf,
// Max at -Inf on every axis.
func EmptyBox() Box {
	const inf = 1.0e300
	return Box{Min: NewPoint(inf, inf, inf), Max: NewPoint(-inf, -inf, -inf)}
}

// ResizeToInclude grows b (in place on the receiver's copy; callers keep the
// returned value) so that p lies within the all-closed interior.
func (b Box) ResizeToInclude(p Point) Box {
	return Box{
		Min: NewPoint(fMin(b.Min.X, p.X), fMin(b.Min.Y, p.Y), fMin(b.Min.Z, p.Z)),
		Max: NewPoint(fMax(b.Max.X, p.X), fMax(b.Max.Y, p.Y), fMax(b.Max.Z, p.Z)),
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: NewPoint(fMin(b.Min.X, o.Min.X), fMin(b.Min.Y, o.Min.Y), fMin(b.Min.Z, o.Min.Z)),
		Max: NewPoint(fMax(b.Max.X, o.Max.X), fMax(b.Max.Y, o.Max.Y), fMax(b.Max.Z, o.Max.Z)),
	}
}

// Diagonal returns the Euclidean length of the box's diagonal.
func (b Box) Diagonal() float64 { return Distance3D(b.Min, b.Max) }

// ContainsAllClosed reports whether p lies within b, treating every face as
// closed (inclusive). Used for domain resizing and for "is p in the mesh
// domain".
func (b Box) ContainsAllClosed(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsRouting reports whether p lies within b using the half-open
// routing semantics the tree descent and partition invariants rely on: the
// three faces incident to Min are closed, the three faces incident to Max
// are open, *unless* the corresponding coordinate of meshMax equals b's own
// Max coordinate on that axis, in which case that face is closed too. This
// lets boxes adjacent to the outer edge of the whole mesh domain still claim
// points exactly on that edge, while internal split faces hand ownership to
// exactly one child.
func (b Box) ContainsRouting(p Point, meshMax Point) bool {
	return inRange(p.X, b.Min.X, b.Max.X, meshMax.X) &&
		inRange(p.Y, b.Min.Y, b.Max.Y, meshMax.Y) &&
		inRange(p.Z, b.Min.Z, b.Max.Z, meshMax.Z)
}

func inRange(c, min, max, domMax float64) bool {
	if c < min {
		return false
	}
	if c < max {
		return true
	}
	if c == max && max == domMax {
		return true
	}
	return false
}

// Intersects reports whether b and o share any point, both closed.
func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// CompletelyContains reports whether o lies entirely within b's open
// interior -- every face of b is strict, so o merely touching a face of b
// does not count. Grounded on box.h's completely_contains: a box that only
// shares a boundary with the query box must still have its contents tested
// individually, since tetra_in_box_strict itself excludes face-touching
// tetrahedra.
func (b Box) CompletelyContains(o Box) bool {
	return b.Min.X < o.Min.X && b.Max.X > o.Max.X &&
		b.Min.Y < o.Min.Y && b.Max.Y > o.Max.Y &&
		b.Min.Z < o.Min.Z && b.Max.Z > o.Max.Z
}

// Center returns the box's geometric centre.
func (b Box) Center() Point {
	return NewPoint((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2, (b.Min.Z+b.Max.Z)/2)
}
