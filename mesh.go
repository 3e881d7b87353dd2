package tetratree

import "fmt"

// Mesh owns a tetrahedral mesh: an ordered vertex array, an ordered
// tetrahedron array, and the axis-aligned domain enclosing every vertex.
// Grounded on basic_types/mesh.h; unlike the reference, indices into
// Vertices/Tetrahedra are 0-based (the reference is 1-based throughout,
// mapping mesh id i to vertices[i-1]).
//
// A Mesh is built once and treated as immutable afterwards, except that the
// border checker (package query) may flip Tetrahedra[].Vertices sign bits,
// and the reindexer (package tree) may permute both arrays and rewrite every
// tetrahedron's vertex indices in place.
type Mesh struct {
	Vertices    []Vertex
	Tetrahedra  []Tetrahedron
	domain      Box
	facesOrdered bool
}

// NewMesh builds a Mesh from vertex and tetrahedron slices, computing the
// domain as the all-closed bounding box of every vertex. Indices in
// tetrahedra must already be 0-based and in range.
func NewMesh(vertices []Vertex, tetrahedra []Tetrahedron) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("tetratree: mesh has zero vertices")
	}
	if len(tetrahedra) == 0 {
		return nil, fmt.Errorf("tetratree: mesh has zero tetrahedra")
	}

	m := &Mesh{Vertices: vertices, Tetrahedra: tetrahedra}
	dom := EmptyBox()
	for _, v := range vertices {
		dom = dom.ResizeToInclude(v.Point)
	}
	m.domain = dom

	for ti, t := range tetrahedra {
		for p := 0; p < 4; p++ {
			idx := t.TV(p)
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf(
					"tetratree: tetrahedron %d references out-of-range vertex %d",
					ti, idx)
			}
		}
	}

	return m, nil
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumTetrahedra returns the number of tetrahedra in the mesh.
func (m *Mesh) NumTetrahedra() int { return len(m.Tetrahedra) }

// Domain returns the mesh's axis-aligned bounding box.
func (m *Mesh) Domain() Box { return m.domain }

// Vertex returns the vertex at 0-based index id.
func (m *Mesh) Vertex(id int) Vertex { return m.Vertices[id] }

// Tetrahedron returns the tetrahedron at 0-based index id.
func (m *Mesh) Tetrahedron(id int) Tetrahedron { return m.Tetrahedra[id] }

// SetTetrahedron replaces the tetrahedron at 0-based index id, used by the
// border checker to persist sign-flipped vertex indices and by the
// reindexer to rewrite vertex ids after a permutation.
func (m *Mesh) SetTetrahedron(id int, t Tetrahedron) { m.Tetrahedra[id] = t }

// FacesOrdered reports whether Geometry_Wrapper-style face ordering (see
// package geom, OrderMeshFaces) has been run on this mesh -- a precondition for
// line queries.
func (m *Mesh) FacesOrdered() bool { return m.facesOrdered }

// SetFacesOrdered records that face ordering has completed.
func (m *Mesh) SetFacesOrdered() { m.facesOrdered = true }

// TetraCorners returns the four vertex positions of tetrahedron t_id in
// corner order, a convenience used throughout package geom/tree/query.
func (m *Mesh) TetraCorners(tID int) [4]Point {
	t := m.Tetrahedra[tID]
	var pts [4]Point
	for i := 0; i < 4; i++ {
		pts[i] = m.Vertices[t.TV(i)].Point
	}
	return pts
}
