package tetratree

// teFaces is TE's lookup table: the pair of corner positions forming edge k,
// grounded verbatim on tetrahedron.cpp's explicit switch over pos.
var teFaces = [6][2]int{
	{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
}

// Tetrahedron is four vertex indices into a Mesh's vertex slice, 0-based
// internally. A negative value at position p means "the face opposite
// position p is a mesh boundary face" -- the border checker (see package
// query) sets this bit. A flagged index v is stored as -(v+1), so vertex 0
// can carry the flag too; Vertices[p] is the stored value, TV(p) the
// decoded vertex index.
type Tetrahedron struct {
	Vertices [4]int
}

// NewTetrahedron builds a Tetrahedron from four 0-based, non-negative vertex
// indices.
func NewTetrahedron(v0, v1, v2, v3 int) Tetrahedron {
	return Tetrahedron{Vertices: [4]int{v0, v1, v2, v3}}
}

// TV returns the decoded (flag-stripped) vertex index at position p.
func (t Tetrahedron) TV(p int) int {
	v := t.Vertices[p]
	if v < 0 {
		return -v - 1
	}
	return v
}

// SetTV rewrites the vertex index at position p to v, preserving whatever
// border-face sign bit that position already carries. Used by the
// reindexer (package tree) to rewrite vertex ids in place after a
// spatial-coherence permutation.
func (t *Tetrahedron) SetTV(p, v int) {
	if t.IsBorderFace(p) {
		t.Vertices[p] = -v - 1
	} else {
		t.Vertices[p] = v
	}
}

// IsBorderFace reports whether the face opposite position p has been
// flagged as a mesh boundary face by the border checker.
func (t Tetrahedron) IsBorderFace(p int) bool { return t.Vertices[p] < 0 }

// SetBorderFace flags (or unflags) the face opposite position p as a mesh
// boundary face, by storing the vertex index at p as -(v+1) (or restoring
// it to v). Idempotent.
func (t *Tetrahedron) SetBorderFace(p int, border bool) {
	v := t.TV(p)
	if border {
		t.Vertices[p] = -v - 1
	} else {
		t.Vertices[p] = v
	}
}

// TE returns the canonical (sorted) pair of vertex indices forming edge k,
// k in [0,6), via the fixed lookup table teFaces.
func (t Tetrahedron) TE(k int) (a, b int) {
	pair := teFaces[k]
	a, b = t.TV(pair[0]), t.TV(pair[1])
	if a > b {
		a, b = b, a
	}
	return a, b
}

// TF returns the canonical (sorted) triple of vertex indices forming the
// face opposite position p.
func (t Tetrahedron) TF(p int) (a, b, c int) {
	v0 := t.TV((p + 1) % 4)
	v1 := t.TV((p + 2) % 4)
	v2 := t.TV((p + 3) % 4)
	return sort3(v0, v1, v2)
}

func sort3(a, b, c int) (int, int, int) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c
}

// HasVertex reports whether v (absolute index) is one of t's four corners.
func (t Tetrahedron) HasVertex(v int) bool {
	for i := 0; i < 4; i++ {
		if t.TV(i) == v {
			return true
		}
	}
	return false
}

// VerticesNum is always 4; kept for symmetry with the reference.
func (t Tetrahedron) VerticesNum() int { return 4 }

// Equal reports permutation-invariant equality of two tetrahedra's vertex
// sets (ignoring border-face sign bits).
func (t Tetrahedron) Equal(o Tetrahedron) bool {
	a := [4]int{t.TV(0), t.TV(1), t.TV(2), t.TV(3)}
	b := [4]int{o.TV(0), o.TV(1), o.TV(2), o.TV(3)}
	for i := 0; i < 4; i++ {
		found := false
		for j := 0; j < 4; j++ {
			if a[i] == b[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
