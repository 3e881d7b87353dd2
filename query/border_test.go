package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcMeshBordersTFlagsOuterFacesOnly(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)
	CalcMeshBordersT(tr)

	borderFaces := 0
	interiorFaces := 0
	for tID := 0; tID < mesh.NumTetrahedra(); tID++ {
		tt := mesh.Tetrahedron(tID)
		for pos := 0; pos < 4; pos++ {
			if tt.IsBorderFace(pos) {
				borderFaces++
			} else {
				interiorFaces++
			}
		}
	}
	assert.Greater(t, borderFaces, 0, "a finite grid mesh must have some boundary faces")
	assert.Greater(t, interiorFaces, 0, "a multi-cell grid mesh must have some interior faces")
}

func TestCalcMeshBordersVAgreesWithCalcMeshBordersT(t *testing.T) {
	trT, meshT := buildPMRTree(t, 2, 8)
	trV, meshV := buildPRTree(t, 2, 8)

	CalcMeshBordersT(trT)
	CalcMeshBordersV(trV)

	borderT := 0
	for tID := 0; tID < meshT.NumTetrahedra(); tID++ {
		tt := meshT.Tetrahedron(tID)
		for pos := 0; pos < 4; pos++ {
			if tt.IsBorderFace(pos) {
				borderT++
			}
		}
	}
	borderV := 0
	for tID := 0; tID < meshV.NumTetrahedra(); tID++ {
		tt := meshV.Tetrahedron(tID)
		for pos := 0; pos < 4; pos++ {
			if tt.IsBorderFace(pos) {
				borderV++
			}
		}
	}
	assert.Equal(t, borderT, borderV)
}
