package query

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
	"github.com/stretchr/testify/require"
)

// gridMesh builds an n x n x n lattice of unit cubes, each split into six
// tetrahedra, mirroring package tree's own fixture of the same name (kept
// local since that one is unexported in package tree).
func gridMesh(t *testing.T, n int) *tetratree.Mesh {
	t.Helper()
	var vertices []tetratree.Vertex
	index := func(x, y, z int) int { return (x*(n+1)+y)*(n+1) + z }
	for x := 0; x <= n; x++ {
		for y := 0; y <= n; y++ {
			for z := 0; z <= n; z++ {
				vertices = append(vertices, tetratree.NewVertex(
					float64(x), float64(y), float64(z), float64(x+y+z)))
			}
		}
	}

	var tetrahedra []tetratree.Tetrahedron
	corners := func(x, y, z int) [8]int {
		return [8]int{
			index(x, y, z), index(x+1, y, z), index(x, y+1, z), index(x+1, y+1, z),
			index(x, y, z+1), index(x+1, y, z+1), index(x, y+1, z+1), index(x+1, y+1, z+1),
		}
	}
	sixTetra := [6][4]int{
		{0, 1, 3, 7}, {0, 3, 2, 7}, {0, 2, 6, 7},
		{0, 6, 4, 7}, {0, 4, 5, 7}, {0, 5, 1, 7},
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				c := corners(x, y, z)
				for _, tt := range sixTetra {
					tetrahedra = append(tetrahedra, tetratree.NewTetrahedron(
						c[tt[0]], c[tt[1]], c[tt[2]], c[tt[3]]))
				}
			}
		}
	}

	mesh, err := tetratree.NewMesh(vertices, tetrahedra)
	require.NoError(t, err)
	geom.OrderMeshFaces(mesh)
	return mesh
}

// buildPMRTree builds and reindexes a Node_T (PMR) tree over an n x n x n
// grid mesh, ready for the C8/C9 queries under test.
func buildPMRTree(t *testing.T, n, tetrahedraPerLeaf int) (*tree.PMRTree, *tetratree.Mesh) {
	t.Helper()
	mesh := gridMesh(t, n)
	tr := tree.NewPMRTree(mesh, subdivision.Octree{}, tetrahedraPerLeaf)
	tr.BuildTree()
	tree.NewReindexer().ReindexTree(tr)
	return tr, mesh
}

// buildPRTree builds and reindexes a Node_V (PR) tree over an n x n x n grid
// mesh.
func buildPRTree(t *testing.T, n, verticesPerLeaf int) (*tree.PRTree, *tetratree.Mesh) {
	t.Helper()
	mesh := gridMesh(t, n)
	tr := tree.NewPRTree(mesh, subdivision.Octree{}, verticesPerLeaf)
	tr.BuildTree()
	tree.NewReindexer().ReindexVTree(tr)
	return tr, mesh
}
