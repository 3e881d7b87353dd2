package subdivision

import (
	"testing"

	"github.com/phil-mansfield/tetratree"
	"github.com/stretchr/testify/assert"
)

func unitBox() tetratree.Box {
	return tetratree.NewBox(tetratree.NewPoint(0, 0, 0), tetratree.NewPoint(2, 2, 2))
}

func TestOctreeSonNumber(t *testing.T) {
	assert.Equal(t, 8, Octree{}.SonNumber())
}

func TestOctreeChildrenPartitionParent(t *testing.T) {
	o := Octree{}
	box := unitBox()
	var union tetratree.Box
	for i := 0; i < 8; i++ {
		child := o.ComputeDomain(box, 0, i)
		assert.True(t, box.ContainsAllClosed(child.Min) && box.ContainsAllClosed(child.Max))
		if i == 0 {
			union = child
		} else {
			union = union.Union(child)
		}
	}
	assert.Equal(t, box.Min, union.Min)
	assert.Equal(t, box.Max, union.Max)
}

func TestKDSonNumber(t *testing.T) {
	assert.Equal(t, 2, KD{}.SonNumber())
}

func TestKDAlternatesAxisByLevel(t *testing.T) {
	kd := KD{}
	box := unitBox()

	c0 := kd.ComputeDomain(box, 0, 0)
	assert.Equal(t, 1.0, c0.Max.X)
	assert.Equal(t, 2.0, c0.Max.Y)

	c1 := kd.ComputeDomain(box, 1, 0)
	assert.Equal(t, 2.0, c1.Max.X)
	assert.Equal(t, 1.0, c1.Max.Y)
}

func TestKDChildrenPartitionParent(t *testing.T) {
	kd := KD{}
	box := unitBox()
	lo := kd.ComputeDomain(box, 0, 0)
	hi := kd.ComputeDomain(box, 0, 1)
	assert.Equal(t, lo.Max.X, hi.Min.X)
	assert.Equal(t, box.Min, lo.Min)
	assert.Equal(t, box.Max, hi.Max)
}
