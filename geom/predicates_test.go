package geom

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/stretchr/testify/assert"
)

func unitTetra() [4]tetratree.Point {
	return [4]tetratree.Point{
		tetratree.NewPoint(0, 0, 0),
		tetratree.NewPoint(1, 0, 0),
		tetratree.NewPoint(0, 1, 0),
		tetratree.NewPoint(0, 0, 1),
	}
}

func unitTetraMesh(t *testing.T) *tetratree.Mesh {
	t.Helper()
	c := unitTetra()
	vertices := make([]tetratree.Vertex, 4)
	for i, p := range c {
		vertices[i] = tetratree.NewVertex(p.X, p.Y, p.Z, 0)
	}
	mesh, err := tetratree.NewMesh(vertices, []tetratree.Tetrahedron{tetratree.NewTetrahedron(0, 1, 2, 3)})
	if err != nil {
		t.Fatal(err)
	}
	OrderMeshFaces(mesh)
	return mesh
}

func TestDetSign2D(t *testing.T) {
	assert.Equal(t, 1, DetSign2D(1, 0, 0, 1))
	assert.Equal(t, -1, DetSign2D(0, 1, 1, 0))
	assert.Equal(t, 0, DetSign2D(1, 1, 1, 1))
}

func TestPointInTetra(t *testing.T) {
	c := unitTetra()
	assert.True(t, PointInTetra(tetratree.NewPoint(0.1, 0.1, 0.1), c[0], c[1], c[2], c[3]))
	assert.True(t, PointInTetra(c[0], c[0], c[1], c[2], c[3]))
	assert.False(t, PointInTetra(tetratree.NewPoint(2, 2, 2), c[0], c[1], c[2], c[3]))
}

func TestPointInTetraStrict(t *testing.T) {
	c := unitTetra()
	assert.True(t, PointInTetraStrict(tetratree.NewPoint(0.1, 0.1, 0.1), c[0], c[1], c[2], c[3]))
	assert.False(t, PointInTetraStrict(tetratree.NewPoint(2, 2, 2), c[0], c[1], c[2], c[3]))
}

func TestTetraInBox(t *testing.T) {
	c := unitTetra()
	min := tetratree.NewPoint(-1, -1, -1)
	max := tetratree.NewPoint(0.5, 0.5, 0.5)
	assert.True(t, TetraInBox(min, max, c))

	far := tetratree.NewPoint(10, 10, 10)
	farMax := tetratree.NewPoint(11, 11, 11)
	assert.False(t, TetraInBox(far, farMax, c))
}

func TestTetraInBoxStrictExcludesTouchingOnly(t *testing.T) {
	c := unitTetra()
	min := tetratree.NewPoint(1, 0, 0)
	max := tetratree.NewPoint(2, 1, 1)
	assert.False(t, TetraInBoxStrict(min, max, c))
}

func TestLineInTetraHitsInterior(t *testing.T) {
	mesh := unitTetraMesh(t)
	p1 := tetratree.NewPoint(0.1, 0.1, -1)
	p2 := tetratree.NewPoint(0.1, 0.1, 1)
	assert.True(t, LineInTetra(p1, p2, 0, mesh))
}

func TestLineInTetraMisses(t *testing.T) {
	mesh := unitTetraMesh(t)
	p1 := tetratree.NewPoint(5, 5, -1)
	p2 := tetratree.NewPoint(5, 5, 1)
	assert.False(t, LineInTetra(p1, p2, 0, mesh))
}

func TestOrderFacesProducesRightTurn(t *testing.T) {
	c := unitTetra()
	ordered := OrderFaces(c)
	assert.Equal(t, 1, FourPointTurn(ordered[3], ordered[0], ordered[1], ordered[2]))
}
