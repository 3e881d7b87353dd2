package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMesh = `5 2
0 0 0 0
1 0 0 1
0 1 0 1
0 0 1 1
1 1 1 4
0 1 2 3
1 2 3 4
`

func TestReadMeshParsesVerticesAndTetrahedra(t *testing.T) {
	mesh, err := ReadMesh(strings.NewReader(sampleMesh))
	require.NoError(t, err)

	assert.Equal(t, 5, mesh.NumVertices())
	assert.Equal(t, 2, mesh.NumTetrahedra())

	v1 := mesh.Vertex(1)
	assert.Equal(t, 1.0, v1.X)
	assert.Equal(t, 1.0, v1.Field)

	tt := mesh.Tetrahedron(0)
	assert.Equal(t, 0, tt.TV(0))
	assert.Equal(t, 3, tt.TV(3))
}

func TestReadMeshRejectsZeroCounts(t *testing.T) {
	_, err := ReadMesh(strings.NewReader("0 0\n"))
	assert.Error(t, err)
}

func TestWriteMeshRoundTrips(t *testing.T) {
	mesh, err := ReadMesh(strings.NewReader(sampleMesh))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMesh(&buf, mesh))

	mesh2, err := ReadMesh(&buf)
	require.NoError(t, err)
	assert.Equal(t, mesh.NumVertices(), mesh2.NumVertices())
	assert.Equal(t, mesh.NumTetrahedra(), mesh2.NumTetrahedra())
	for i := 0; i < mesh.NumTetrahedra(); i++ {
		assert.Equal(t, mesh.Tetrahedron(i), mesh2.Tetrahedron(i))
	}
}
