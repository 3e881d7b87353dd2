package tree

import (
	"testing"

	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/stretchr/testify/assert"
)

func collectTIDs(n *NodeT) map[int]bool {
	ids := map[int]bool{}
	if n.IsLeaf() {
		for _, id := range Expand(n.TArray()) {
			ids[id] = true
		}
		return ids
	}
	for i := 0; i < len(n.sons); i++ {
		for id := range collectTIDs(n.Son(i)) {
			ids[id] = true
		}
	}
	return ids
}

func collectTIDsV(n *NodeV) map[int]bool {
	ids := map[int]bool{}
	if n.IsLeaf() {
		for _, id := range Expand(n.TArray()) {
			ids[id] = true
		}
		return ids
	}
	for i := 0; i < len(n.sons); i++ {
		for id := range collectTIDsV(n.Son(i)) {
			ids[id] = true
		}
	}
	return ids
}

func TestReindexTreePreservesEveryTetrahedronID(t *testing.T) {
	mesh := gridMesh(t, 3)
	n := mesh.NumTetrahedra()
	tr := NewPM2Tree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()

	NewReindexer().ReindexTree(tr)

	assert.Equal(t, n, mesh.NumTetrahedra())
	ids := collectTIDs(tr.Root())
	for id := 0; id < n; id++ {
		assert.True(t, ids[id], "tetrahedron %d missing after reindex", id)
	}
}

func TestReindexTreeCompressesRuns(t *testing.T) {
	mesh := gridMesh(t, 2)
	tr := NewPMRTree(mesh, subdivision.Octree{}, 8)
	tr.BuildTree()

	before := 0
	var rawBefore func(n *NodeT)
	rawBefore = func(n *NodeT) {
		if n.IsLeaf() {
			before += n.TArraySize()
			return
		}
		for i := 0; i < len(n.sons); i++ {
			rawBefore(n.Son(i))
		}
	}
	rawBefore(tr.Root())

	NewReindexer().ReindexTree(tr)

	after := 0
	var rawAfter func(n *NodeT)
	rawAfter = func(n *NodeT) {
		if n.IsLeaf() {
			after += n.TArraySize()
			return
		}
		for i := 0; i < len(n.sons); i++ {
			rawAfter(n.Son(i))
		}
	}
	rawAfter(tr.Root())

	assert.LessOrEqual(t, after, before)
}

func TestReindexVTreePreservesEveryTetrahedronID(t *testing.T) {
	mesh := gridMesh(t, 3)
	n := mesh.NumTetrahedra()
	tr := NewPRTree(mesh, subdivision.KD{}, 8)
	tr.BuildTree()

	NewReindexer().ReindexVTree(tr)

	assert.Equal(t, n, mesh.NumTetrahedra())
	ids := collectTIDsV(tr.Root())
	for id := 0; id < n; id++ {
		assert.True(t, ids[id], "tetrahedron %d missing after reindex", id)
	}
}

func TestReindexVTreeVertexRangesCoverAllVertices(t *testing.T) {
	mesh := gridMesh(t, 3)
	nv := mesh.NumVertices()
	tr := NewPMTree(mesh, subdivision.Octree{}, 8, 8)
	tr.BuildTree()

	NewReindexer().ReindexVTree(tr)

	assert.Equal(t, 0, tr.Root().VStart())
	assert.Equal(t, nv, tr.Root().VEnd())
}
