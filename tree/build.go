package tree

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/phil-mansfield/tetratree/subdivision"
)

// tetraInBoxBuild gates tree insertion of a tetrahedron into a node's
// domain: the closed, all-faces-inclusive box/tetrahedron overlap test,
// grounded on geometry_wrapper.h's tetra_in_box_build. Every add_tetrahedron
// across all four builders calls this before doing anything else.
func tetraInBoxBuild(mesh *tetratree.Mesh, domain tetratree.Box, tID int) bool {
	return geom.TetraInBox(domain.Min, domain.Max, mesh.TetraCorners(tID))
}

// maxSharedVertexCount counts, for every vertex incident to at least one
// of the tetrahedra named by tIDs, how many of those tetrahedra share it,
// and reports the largest such count. Grounded on t_tree.h/pt_tree.h's
// is_full: both sort a vertex_tetrahedron_pair vector built from all four
// corners of every listed tetrahedron and scan for adjacent-equal runs. A
// map achieves the same count without needing sorting_vertices' comparator.
func maxSharedVertexCount(mesh *tetratree.Mesh, tIDs []int) int {
	counts := make(map[int]int, len(tIDs)*4)
	best := 0
	for _, tID := range tIDs {
		t := mesh.Tetrahedron(tID)
		for p := 0; p < 4; p++ {
			v := t.TV(p)
			counts[v]++
			if counts[v] > best {
				best = counts[v]
			}
		}
	}
	return best
}

// Builder is implemented by every tree-build criterion (PR, PMR, PM2, PM).
// BuildTree performs the full two-phase insertion (vertices then
// tetrahedra, when the flavor carries vertices at all); the concrete node
// tree is then reached through each builder's own Root accessor, since the
// node flavor (NodeT vs NodeV) differs by criterion and Go has no template
// base standing in for tree.h's Tree<N,D>.
type Builder interface {
	BuildTree()
	Mesh() *tetratree.Mesh
	Decomposition() subdivision.Strategy
}
