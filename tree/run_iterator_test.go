package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunIteratorExpandsRun(t *testing.T) {
	data := []int{-6, 3}
	assert.Equal(t, []int{5, 6, 7, 8}, Expand(data))
}

func TestRunIteratorExpandsRunStartingAtIDZero(t *testing.T) {
	data := []int{-1, 2}
	assert.Equal(t, []int{0, 1, 2}, Expand(data))
}

func TestRunIteratorMixedSingletonsAndRuns(t *testing.T) {
	data := []int{2, -11, 2, 21}
	assert.Equal(t, []int{1, 10, 11, 12, 20}, Expand(data))
}

func TestElementCountMatchesFast(t *testing.T) {
	data := []int{2, -11, 2, 21, -101, 1}
	assert.Equal(t, ElementCount(data), ElementCountFast(data))
}

func TestElementCountFastHandlesSingletonIDZero(t *testing.T) {
	data := []int{1}
	assert.Equal(t, 1, ElementCountFast(data))
	assert.Equal(t, []int{0}, Expand(data))
}

func TestCompressRunFoldsThreeOrMore(t *testing.T) {
	assert.Equal(t, []int{-6, 2}, CompressRun(5, 3))
	assert.Equal(t, []int{8, 9}, CompressRun(7, 2))
	assert.Equal(t, []int{10}, CompressRun(9, 1))
}

func TestCompressRunRoundTrips(t *testing.T) {
	encoded := CompressRun(100, 7)
	assert.Equal(t, []int{100, 101, 102, 103, 104, 105, 106}, Expand(encoded))
}

func TestCompressRunHandlesIDZero(t *testing.T) {
	encoded := CompressRun(0, 3)
	assert.Equal(t, []int{0, 1, 2}, Expand(encoded))
}
