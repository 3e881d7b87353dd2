// Package subdivision implements the two strategies a tree builder uses to
// split a node's box domain into its children's box domains: octree
// (arity 8) and kd-tree (arity 2). Grounded on
// tetrahedral_trees/subdivision.h, ok_subdivision.h/.cpp and
// kd_subdivision.h/.cpp.
package subdivision

import "github.com/phil-mansfield/tetratree"

// Strategy computes a node's box domain from its parent's, the strategy's
// own fixed child arity, and a child index.
type Strategy interface {
	// SonNumber is the fixed number of children every node of this
	// strategy has: 8 for Octree, 2 for KD.
	SonNumber() int
	// ComputeDomain returns childInd's box domain given its parent's
	// domain, the parent's depth in the tree, and childInd in
	// [0, SonNumber()).
	ComputeDomain(parentDom tetratree.Box, level, childInd int) tetratree.Box
}

// Octree splits a box into its eight octants. The bit-to-octant mapping
// below intentionally does not follow the "bit i of child_ind selects the
// upper half on axis i" rule a dynamic_bitset reading would suggest; it
// instead follows the reference's literal case list, preserved verbatim
// because downstream reindexing depends on the exact visitation order it
// produces.
type Octree struct{}

// SonNumber is always 8 for an octree node.
func (Octree) SonNumber() int { return 8 }

// ComputeDomain returns the box domain of child childInd of a node whose own
// domain is parentDom. level is accepted for interface symmetry with KD but
// unused: octree subdivision is not level-dependent.
func (Octree) ComputeDomain(parentDom tetratree.Box, level, childInd int) tetratree.Box {
	pMin, pMax := parentDom.Min, parentDom.Max
	var xmin, xmax, ymin, ymax, zmin, zmax float64

	switch childInd {
	case 0, 1, 4, 5:
		xmin = pMin.X + (pMax.X-pMin.X)/2.0
		xmax = pMax.X
	default: // 2, 3, 6, 7
		xmin = pMin.X
		xmax = pMin.X + (pMax.X-pMin.X)/2.0
	}

	switch childInd {
	case 0, 2, 4, 6:
		ymin = pMin.Y + (pMax.Y-pMin.Y)/2.0
		ymax = pMax.Y
	default: // 1, 3, 5, 7
		ymin = pMin.Y
		ymax = pMin.Y + (pMax.Y-pMin.Y)/2.0
	}

	switch childInd {
	case 0, 1, 2, 3:
		zmin = pMin.Z
		zmax = pMin.Z + (pMax.Z-pMin.Z)/2.0
	default: // 4, 5, 6, 7
		zmin = pMin.Z + (pMax.Z-pMin.Z)/2.0
		zmax = pMax.Z
	}

	return tetratree.NewBox(
		tetratree.NewPoint(xmin, ymin, zmin),
		tetratree.NewPoint(xmax, ymax, zmax))
}

// KD splits a box in two along one axis, alternating axis by tree depth:
// level 0 splits X, level 1 splits Y, level 2 splits Z, level 3 splits X
// again, and so on.
type KD struct{}

// SonNumber is always 2 for a kd-tree node.
func (KD) SonNumber() int { return 2 }

// ComputeDomain returns the box domain of child childInd (0 = lower half,
// 1 = upper half along the level's axis) of a node at depth level whose own
// domain is parentDom.
func (KD) ComputeDomain(parentDom tetratree.Box, level, childInd int) tetratree.Box {
	axis := level % 3
	mid := coord(parentDom.Min, axis) + (coord(parentDom.Max, axis)-coord(parentDom.Min, axis))/2.0

	son := parentDom
	switch childInd {
	case 0:
		son.Max = setCoord(son.Max, axis, mid)
	case 1:
		son.Min = setCoord(son.Min, axis, mid)
	}
	return son
}

func coord(p tetratree.Point, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func setCoord(p tetratree.Point, axis int, v float64) tetratree.Point {
	switch axis {
	case 0:
		return tetratree.NewPoint(v, p.Y, p.Z)
	case 1:
		return tetratree.NewPoint(p.X, v, p.Z)
	default:
		return tetratree.NewPoint(p.X, p.Y, v)
	}
}
