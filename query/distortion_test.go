package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexDistortionInteriorVertexIsFinite(t *testing.T) {
	tr, mesh := buildPMRTree(t, 3, 8)
	CalcMeshBordersT(tr)
	vt := WindowedVTT(tr, mesh.Domain())

	// A vertex strictly inside the grid (not on any face of the domain) is
	// never flagged as a border vertex by CalcMeshBordersT; locate one by
	// its incident tetrahedra all having every face interior.
	var interiorVID = -1
	for vID, incident := range vt {
		allInterior := true
		for _, tID := range incident {
			tt := mesh.Tetrahedron(tID)
			for pos := 0; pos < 4; pos++ {
				if tt.IsBorderFace(pos) {
					allInterior = false
				}
			}
		}
		if allInterior {
			interiorVID = vID
			break
		}
	}
	if interiorVID < 0 {
		t.Skip("grid too small to contain a fully-interior vertex")
	}

	d := VertexDistortion(mesh, interiorVID, vt[interiorVID], false)
	assert.False(t, math.IsNaN(d))
	assert.False(t, math.IsInf(d, 0))
}

func TestVertexDistortionBorderVertexIsFinite(t *testing.T) {
	tr, mesh := buildPMRTree(t, 2, 8)
	CalcMeshBordersT(tr)
	vt := WindowedVTT(tr, mesh.Domain())

	var borderVID = -1
	for vID, incident := range vt {
		isBorder := false
		for _, tID := range incident {
			tt := mesh.Tetrahedron(tID)
			for pos := 0; pos < 4; pos++ {
				if tt.IsBorderFace(pos) {
					isBorder = true
				}
			}
		}
		if isBorder {
			borderVID = vID
			break
		}
	}
	if borderVID < 0 {
		t.Skip("grid too small to contain a border vertex")
	}

	d := VertexDistortion(mesh, borderVID, vt[borderVID], true)
	assert.False(t, math.IsNaN(d))
	assert.False(t, math.IsInf(d, 0))
}
