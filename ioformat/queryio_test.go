package ioformat

import (
	"bytes"
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsRoundTrip(t *testing.T) {
	points := []tetratree.Point{
		tetratree.NewPoint(0, 0, 0),
		tetratree.NewPoint(1.5, 2.5, 3.5),
	}
	var buf bytes.Buffer
	require.NoError(t, WritePoints(&buf, points))

	got, err := ReadPoints(&buf)
	require.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestBoxesRoundTrip(t *testing.T) {
	boxes := []tetratree.Box{
		tetratree.NewBox(tetratree.NewPoint(0, 0, 0), tetratree.NewPoint(1, 1, 1)),
		tetratree.NewBox(tetratree.NewPoint(-1, -2, -3), tetratree.NewPoint(4, 5, 6)),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteBoxes(&buf, boxes))

	got, err := ReadBoxes(&buf)
	require.NoError(t, err)
	assert.Equal(t, boxes, got)
}

func TestLinesRoundTrip(t *testing.T) {
	segments := []Segment{
		{P1: tetratree.NewPoint(0, 0, 0), P2: tetratree.NewPoint(1, 1, 1)},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, segments))

	got, err := ReadLines(&buf)
	require.NoError(t, err)
	assert.Equal(t, segments, got)
}

func TestReadPointsEmptyFile(t *testing.T) {
	got, err := ReadPoints(bytes.NewReader([]byte("0\n")))
	require.NoError(t, err)
	assert.Empty(t, got)
}
