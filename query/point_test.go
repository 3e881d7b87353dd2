package query

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/stretchr/testify/assert"
)

func TestExecPointQueryTFindsCentroid(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	for tID := 0; tID < mesh.NumTetrahedra(); tID++ {
		centroid := geom.GetTetrahedronCentroid(mesh.TetraCorners(tID))
		_, ok := ExecPointQueryT(tr, centroid, stats)
		assert.True(t, ok, "centroid of tetrahedron %d not located", tID)
	}
}

func TestExecPointQueryTMissesOutsideDomain(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	stats := NewStatistics(mesh.NumTetrahedra())

	outside := mesh.Domain().Max.Add(mesh.Domain().Max).Add(tetratree.NewPoint(1, 1, 1))
	_, ok := ExecPointQueryT(tr, outside, stats)
	assert.False(t, ok)
}

func TestExecPointQueryVMatchesExecPointQueryT(t *testing.T) {
	trT, meshT := buildPMRTree(t, 2, 8)
	trV, meshV := buildPRTree(t, 2, 8)
	statsT := NewStatistics(meshT.NumTetrahedra())
	statsV := NewStatistics(meshV.NumTetrahedra())

	for tID := 0; tID < meshT.NumTetrahedra(); tID++ {
		centroid := geom.GetTetrahedronCentroid(meshT.TetraCorners(tID))
		_, okT := ExecPointQueryT(trT, centroid, statsT)
		_, okV := ExecPointQueryV(trV, centroid, statsV)
		assert.Equal(t, okT, okV)
	}
}

func TestExecPointLocationsTBatchFindsEveryCentroid(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	points := make([]tetratree.Point, mesh.NumTetrahedra())
	for tID := range points {
		points[tID] = geom.GetTetrahedronCentroid(mesh.TetraCorners(tID))
	}

	ids, found, _ := ExecPointLocationsT(tr, points)
	for i := range points {
		assert.True(t, found[i])
		assert.GreaterOrEqual(t, ids[i], 0)
	}
}
