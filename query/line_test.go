package query

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/stretchr/testify/assert"
)

func TestExecLineQueryTFindsTetrahedronAlongDiagonal(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	got := ExecLineQueryT(tr, mesh.Domain().Min, mesh.Domain().Max, stats)
	assert.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "ExecLineQueryT result must be sorted and deduplicated")
	}
}

func TestExecLineQueryTMissesLineOutsideDomain(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	far := mesh.Domain().Max.Add(tetratree.NewPoint(10, 10, 10))
	got := ExecLineQueryT(tr, far, far.Add(tetratree.NewPoint(1, 1, 1)), stats)
	assert.Empty(t, got)
}

func TestExecLineQueryVMatchesExecLineQueryTNonEmptiness(t *testing.T) {
	trT, meshT := buildPMRTree(t, 2, 8)
	trV, meshV := buildPRTree(t, 2, 8)
	statsT := NewStatistics(meshT.NumTetrahedra())
	statsV := NewStatistics(meshV.NumTetrahedra())

	gotT := ExecLineQueryT(trT, meshT.Domain().Min, meshT.Domain().Max, statsT)
	gotV := ExecLineQueryV(trV, meshV.Domain().Min, meshV.Domain().Max, statsV)
	assert.NotEmpty(t, gotT)
	assert.NotEmpty(t, gotV)
}

func TestExecLineQueriesTBatch(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	segments := [][2]tetratree.Point{
		{mesh.Domain().Min, mesh.Domain().Max},
		{mesh.Domain().Min, mesh.Domain().Center()},
	}
	results, _ := ExecLineQueriesT(tr, segments)
	assert.Len(t, results, 2)
	assert.NotEmpty(t, results[0])
	assert.NotEmpty(t, results[1])
}
