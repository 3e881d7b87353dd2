package ioformat

import (
	"math/rand"
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePointsRandomStaysInRegionAndIsDistinct(t *testing.T) {
	region := tetratree.NewBox(tetratree.NewPoint(0, 0, 0), tetratree.NewPoint(10, 10, 10))
	rng := rand.New(rand.NewSource(1))

	points, err := GeneratePoints(region, nil, ModeRandom, 20, rng)
	require.NoError(t, err)
	assert.Len(t, points, 20)

	seen := map[tetratree.Point]bool{}
	for _, p := range points {
		assert.True(t, region.ContainsAllClosed(p))
		assert.False(t, seen[p], "generated points must be distinct")
		seen[p] = true
	}
}

func TestGeneratePointsNearUsesTetrahedronCentroids(t *testing.T) {
	mesh := smallGridMesh(t, 2)
	rng := rand.New(rand.NewSource(2))

	points, err := GeneratePoints(mesh.Domain(), mesh, ModeNear, 5, rng)
	require.NoError(t, err)
	assert.Len(t, points, 5)
}

func TestGeneratePointsNearWithoutMeshFails(t *testing.T) {
	region := tetratree.NewBox(tetratree.NewPoint(0, 0, 0), tetratree.NewPoint(1, 1, 1))
	_, err := GeneratePoints(region, nil, ModeNear, 3, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestGenerateBoxesHaveRatioScaledEdge(t *testing.T) {
	region := tetratree.NewBox(tetratree.NewPoint(0, 0, 0), tetratree.NewPoint(10, 10, 10))
	rng := rand.New(rand.NewSource(3))

	boxes, err := GenerateBoxes(region, nil, ModeRandom, 0.1, 10, rng)
	require.NoError(t, err)
	assert.Len(t, boxes, 10)

	edge := region.Diagonal() * 0.1
	for _, b := range boxes {
		assert.InDelta(t, edge, b.Max.X-b.Min.X, 1e-9)
	}
}

func TestGenerateLinesStayInRegion(t *testing.T) {
	region := tetratree.NewBox(tetratree.NewPoint(0, 0, 0), tetratree.NewPoint(10, 10, 10))
	rng := rand.New(rand.NewSource(4))

	segments, err := GenerateLines(region, nil, ModeRandom, 0.2, 8, rng)
	require.NoError(t, err)
	assert.Len(t, segments, 8)
	for _, s := range segments {
		assert.True(t, region.ContainsAllClosed(s.P1))
		assert.True(t, region.ContainsAllClosed(s.P2))
	}
}
