package query

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/stretchr/testify/assert"
)

func TestExecBoxQueryTFullDomainReturnsEveryTetrahedron(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	got := ExecBoxQueryT(tr, mesh.Domain(), stats)
	assert.Len(t, got, mesh.NumTetrahedra())
}

func TestExecBoxQueryTFindsTetrahedronByItsOwnBoundingBox(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	for tID := 0; tID < mesh.NumTetrahedra(); tID++ {
		corners := mesh.TetraCorners(tID)
		bb := tetratree.EmptyBox()
		for _, c := range corners {
			bb = bb.ResizeToInclude(c)
		}
		stats.resetCheckTetra()
		got := ExecBoxQueryT(tr, bb, stats)
		assert.Contains(t, got, tID)
	}
}

func TestExecBoxQueryTEmptyBoxOutsideDomainFindsNothing(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	far := mesh.Domain().Max.Add(tetratree.NewPoint(10, 10, 10))
	b := tetratree.NewBox(far, far.Add(tetratree.NewPoint(1, 1, 1)))
	got := ExecBoxQueryT(tr, b, stats)
	assert.Empty(t, got)
}

func TestExecBoxQueryVMatchesExecBoxQueryT(t *testing.T) {
	trT, meshT := buildPMRTree(t, 2, 8)
	trV, meshV := buildPRTree(t, 2, 8)
	statsT := NewStatistics(meshT.NumTetrahedra())
	statsV := NewStatistics(meshV.NumTetrahedra())

	gotT := ExecBoxQueryT(trT, meshT.Domain(), statsT)
	gotV := ExecBoxQueryV(trV, meshV.Domain(), statsV)
	assert.Len(t, gotT, meshT.NumTetrahedra())
	assert.Len(t, gotV, meshV.NumTetrahedra())
}

func TestExecBoxQueriesTResetsDedupBetweenQueries(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	boxes := []tetratree.Box{mesh.Domain(), mesh.Domain()}
	results, _ := ExecBoxQueriesT(tr, boxes)
	assert.Len(t, results[0], mesh.NumTetrahedra())
	assert.Len(t, results[1], mesh.NumTetrahedra())
}

func TestTetraInBoxQueryAgreesWithBoxQuery(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	half := tetratree.NewBox(mesh.Domain().Min, mesh.Domain().Center())
	got := ExecBoxQueryT(tr, half, stats)
	for _, tID := range got {
		assert.True(t, geom.TetraInBoxQuery(tID, half.Min, half.Max, mesh))
	}
}
