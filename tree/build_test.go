package tree

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridMesh builds an n x n x n lattice of unit cubes, each split into six
// tetrahedra, giving the tree builders enough tetrahedra to exercise more
// than one split.
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
	// Six-tetrahedra decomposition of a cube, corners named by their
	// (dx,dy,dz) offset from (x,y,z).
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
	return mesh
}

// countTLeaves walks a NodeT tree counting real tetrahedron occurrences
// summed across every leaf (a tetrahedron reachable from multiple leaves is
// counted once per leaf it reaches, matching the multi-indexing invariant).
func countTLeaves(n *NodeT) int {
	if n.IsLeaf() {
		return n.RealTArraySize()
	}
	total := 0
	for i := 0; i < len(n.sons); i++ {
		total += countTLeaves(n.Son(i))
	}
	return total
}

func countVLeaves(n *NodeV) int {
	if n.IsLeaf() {
		return n.RealVArraySize()
	}
	total := 0
	for i := 0; i < len(n.sons); i++ {
		total += countVLeaves(n.Son(i))
	}
	return total
}

func countTLeavesV(n *NodeV) int {
	if n.IsLeaf() {
		return n.RealTArraySize()
	}
	total := 0
	for i := 0; i < len(n.sons); i++ {
		total += countTLeavesV(n.Son(i))
	}
	return total
}

func TestPMRTreeIndexesEveryTetrahedronAtLeastOnce(t *testing.T) {
	mesh := gridMesh(t, 3)
	tr := NewPMRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()
	assert.GreaterOrEqual(t, countTLeaves(tr.Root()), mesh.NumTetrahedra())
}

func TestPM2TreeIndexesEveryTetrahedronAtLeastOnce(t *testing.T) {
	mesh := gridMesh(t, 3)
	tr := NewPM2Tree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()
	assert.GreaterOrEqual(t, countTLeaves(tr.Root()), mesh.NumTetrahedra())
}

func TestPM2TreeDoesNotSplitOnCommonVertexCluster(t *testing.T) {
	// A fan of tetrahedra all sharing vertex 0 can never be resolved by
	// splitting; is_full must report false however many pile up.
	mesh, err := tetratree.NewMesh(
		[]tetratree.Vertex{
			tetratree.NewVertex(0, 0, 0, 0),
			tetratree.NewVertex(1, 0, 0, 0),
			tetratree.NewVertex(0, 1, 0, 0),
			tetratree.NewVertex(0, 0, 1, 0),
			tetratree.NewVertex(-1, 0, 0, 0),
			tetratree.NewVertex(0, -1, 0, 0),
			tetratree.NewVertex(0, 0, -1, 0),
		},
		[]tetratree.Tetrahedron{
			tetratree.NewTetrahedron(0, 1, 2, 3),
			tetratree.NewTetrahedron(0, 1, 2, 4),
			tetratree.NewTetrahedron(0, 1, 2, 5),
			tetratree.NewTetrahedron(0, 1, 2, 6),
		},
	)
	require.NoError(t, err)

	n := &NodeT{}
	for i := 0; i < mesh.NumTetrahedra(); i++ {
		n.AddTetrahedron(i + 1)
	}
	tr := NewPM2Tree(mesh, subdivision.Octree{}, 1)
	assert.False(t, tr.isFull(n))
}

func TestPRTreeRespectsVertexThreshold(t *testing.T) {
	mesh := gridMesh(t, 3)
	tr := NewPRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()
	assert.Equal(t, mesh.NumVertices(), countVLeaves(tr.Root()))
	assert.GreaterOrEqual(t, countTLeavesV(tr.Root()), mesh.NumTetrahedra())
}

func TestPMTreeCombinesBothThresholds(t *testing.T) {
	mesh := gridMesh(t, 3)
	tr := NewPMTree(mesh, subdivision.Octree{}, 8, 8)
	tr.BuildTree()
	assert.Equal(t, mesh.NumVertices(), countVLeaves(tr.Root()))
	assert.GreaterOrEqual(t, countTLeavesV(tr.Root()), mesh.NumTetrahedra())
}

func TestPMRTreeSplitDoesNotCascadeInOneEvent(t *testing.T) {
	mesh := gridMesh(t, 2)
	tr := NewPMRTree(mesh, subdivision.KD{}, 2)
	tr.BuildTree()
	// With a very low threshold every leaf should still terminate: the
	// invariant under test is that BuildTree completes without looping
	// forever chasing a cascading split.
	assert.GreaterOrEqual(t, countTLeaves(tr.Root()), mesh.NumTetrahedra())
}
