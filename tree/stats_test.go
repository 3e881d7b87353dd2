package tree

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsGridMesh(t *testing.T, n int) *tetratree.Mesh {
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
	return mesh
}

func TestComputeStatsTCoversEveryTetrahedron(t *testing.T) {
	mesh := statsGridMesh(t, 3)
	tr := NewPMRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()

	s := ComputeStatsT(tr)
	assert.Greater(t, s.NumNode, 0)
	assert.Equal(t, mesh.NumTetrahedra(),
		s.NumTin1Leaf+s.NumTin2Leaf+s.NumTin3Leaf+s.NumTin4Leaf+s.NumTinMoreLeaf)
	assert.GreaterOrEqual(t, s.RealTListLength, mesh.NumTetrahedra())
	assert.GreaterOrEqual(t, s.MaxTreeDepth, s.MinTreeDepth)
}

func TestComputeStatsVTracksVertexCountsInFullLeaves(t *testing.T) {
	mesh := statsGridMesh(t, 3)
	tr := NewPRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()

	s := ComputeStatsV(tr)
	assert.Greater(t, s.NumFullLeaf, 0)
	assert.GreaterOrEqual(t, s.MaxVertexInFullLeaf, s.MinVertexInFullLeaf)
	assert.Greater(t, s.AvgVertexInFullLeaf, 0.0)
}
