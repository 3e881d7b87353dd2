package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowedVTTFullDomainCoversEveryVertex(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	vt := WindowedVTT(tr, mesh.Domain())
	assert.Len(t, vt, mesh.NumVertices())
	for _, incident := range vt {
		assert.NotEmpty(t, incident)
	}
}

func TestWindowedTTTEveryInteriorFaceHasTwoNeighbors(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)
	CalcMeshBordersT(tr)

	tt := WindowedTTT(tr, mesh.Domain())
	for tID := 0; tID < mesh.NumTetrahedra(); tID++ {
		tetra := mesh.Tetrahedron(tID)
		interiorFaces := 0
		for pos := 0; pos < 4; pos++ {
			if !tetra.IsBorderFace(pos) {
				interiorFaces++
			}
		}
		assert.Equal(t, interiorFaces, len(tt[tID]), "tetrahedron %d", tID)
	}
}

func TestLinearizedTTTFindsAdjacencyAlongDiagonal(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	tt := LinearizedTTT(tr, mesh.Domain().Min, mesh.Domain().Max)
	assert.NotEmpty(t, tt)
}

func TestBatchedVTReportsMaxRowWidth(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	vt := WindowedVTT(tr, mesh.Domain())
	max := BatchedVT(vt)
	for _, incident := range vt {
		assert.LessOrEqual(t, len(incident), max)
	}
}

func TestBatchedTTReportsMaxRowWidth(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)

	tt := WindowedTTT(tr, mesh.Domain())
	max := BatchedTT(tt)
	for _, neighbors := range tt {
		assert.LessOrEqual(t, len(neighbors), max)
	}
	assert.LessOrEqual(t, max, 4)
}
