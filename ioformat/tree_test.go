package ioformat

import (
	"bytes"
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGridMesh(t *testing.T, n int) *tetratree.Mesh {
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

func tetraSet(n *tree.NodeT) map[int]bool {
	set := map[int]bool{}
	for it := n.TArrayIterator(); !it.Done(); it.Advance() {
		set[it.Value()] = true
	}
	return set
}

func TestWriteReadTreeTRoundTrips(t *testing.T) {
	mesh := smallGridMesh(t, 2)
	tr := tree.NewPMRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()

	var buf bytes.Buffer
	require.NoError(t, WriteTreeT(&buf, tr))

	root2 := &tree.NodeT{}
	require.NoError(t, ReadTreeT(&buf, root2, subdivision.Octree{}))

	var collectLeaves func(n *tree.NodeT) []map[int]bool
	collectLeaves = func(n *tree.NodeT) []map[int]bool {
		if n.IsLeaf() {
			return []map[int]bool{tetraSet(n)}
		}
		var out []map[int]bool
		for i := 0; i < 8; i++ {
			out = append(out, collectLeaves(n.Son(i))...)
		}
		return out
	}

	want := collectLeaves(tr.Root())
	got := collectLeaves(root2)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestWriteReadTreeVRoundTrips(t *testing.T) {
	mesh := smallGridMesh(t, 2)
	tr := tree.NewPRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()

	var buf bytes.Buffer
	require.NoError(t, WriteTreeV(&buf, tr))

	root2 := &tree.NodeV{}
	require.NoError(t, ReadTreeV(&buf, root2, subdivision.Octree{}))

	var countLeaves func(n *tree.NodeV) (leaves, totalV, totalT int)
	countLeaves = func(n *tree.NodeV) (int, int, int) {
		if n.IsLeaf() {
			return 1, n.RealVArraySize(), n.RealTArraySize()
		}
		leaves, v, tt := 0, 0, 0
		for i := 0; i < 8; i++ {
			l, vv, ttt := countLeaves(n.Son(i))
			leaves += l
			v += vv
			tt += ttt
		}
		return leaves, v, tt
	}

	wantLeaves, wantV, wantT := countLeaves(tr.Root())
	gotLeaves, gotV, gotT := countLeaves(root2)
	assert.Equal(t, wantLeaves, gotLeaves)
	assert.Equal(t, wantV, gotV)
	assert.Equal(t, wantT, gotT)
}
