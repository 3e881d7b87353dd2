package query

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
)

// pointQueryLeaf returns the first tetrahedron in data containing p, per
// run bounding-box pre-check before testing any tetrahedron individually.
// Grounded on spatial_queries.h's exec_point_query_leaf: a point query only
// ever wants one containing tetrahedron, so it stops at the first hit
// rather than collecting every one (a point interior to the mesh belongs
// to exactly one tetrahedron; on a shared face it belongs to several, and
// reporting the first one found is by design, not an oversight).
func pointQueryLeaf(data []int, mesh *tetratree.Mesh, p tetratree.Point, stats *Statistics) (int, bool) {
	pos := 0
	for pos < len(data) {
		if data[pos] >= 0 {
			tID := data[pos] - 1
			stats.NumGeometricTest++
			if geom.PointInTetraMesh(tID, p, mesh) {
				stats.AccessPerTetra++
				return tID, true
			}
			pos++
			continue
		}

		bb, runStart, runEnd, next, ok := tree.GetRunBoundingBox(data, pos, mesh)
		if !ok {
			pos++
			continue
		}
		if bb.ContainsAllClosed(p) {
			for tID := runStart; tID <= runEnd; tID++ {
				stats.NumGeometricTest++
				if geom.PointInTetraMesh(tID, p, mesh) {
					stats.AccessPerTetra++
					return tID, true
				}
			}
		} else {
			stats.AvoidedTetraGeomTestsNum += runEnd - runStart + 1
		}
		pos = next
	}
	return 0, false
}

// ExecPointQueryT locates the tetrahedron of a NodeT tree (PMR/PM2)
// containing p, if any. Grounded on spatial_queries.h's exec_point_query:
// unlike box/line queries, descent picks exactly one child per level, via
// the same routing rule (Box.ContainsRouting) the builders use to hand
// ownership of a boundary point to a single child.
func ExecPointQueryT(tr tree.TTreeBuilder, p tetratree.Point, stats *Statistics) (int, bool) {
	mesh := tr.Mesh()
	return execPointNodeT(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, p, stats)
}

func execPointNodeT(n *tree.NodeT, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, p tetratree.Point, stats *Statistics) (int, bool) {
	stats.NumNode++
	if n.IsLeaf() {
		stats.NumLeaf++
		return pointQueryLeaf(n.TArray(), mesh, p, stats)
	}
	meshMax := mesh.Domain().Max
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		if sonDom.ContainsRouting(p, meshMax) {
			return execPointNodeT(n.Son(i), sonDom, level+1, decomp, mesh, p, stats)
		}
	}
	return 0, false
}

// ExecPointQueryV locates the tetrahedron of a NodeV tree (PR/PM)
// containing p, if any.
func ExecPointQueryV(tr tree.VTreeBuilder, p tetratree.Point, stats *Statistics) (int, bool) {
	mesh := tr.Mesh()
	return execPointNodeV(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, p, stats)
}

func execPointNodeV(n *tree.NodeV, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, p tetratree.Point, stats *Statistics) (int, bool) {
	stats.NumNode++
	if n.IsLeaf() {
		stats.NumLeaf++
		return pointQueryLeaf(n.TArray(), mesh, p, stats)
	}
	meshMax := mesh.Domain().Max
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		if sonDom.ContainsRouting(p, meshMax) {
			return execPointNodeV(n.Son(i), sonDom, level+1, decomp, mesh, p, stats)
		}
	}
	return 0, false
}

// ExecPointLocationsT runs a batch of point-location queries over a NodeT
// tree, grounded on spatial_queries.h's exec_point_locations.
func ExecPointLocationsT(tr tree.TTreeBuilder, points []tetratree.Point) ([]int, []bool, *Statistics) {
	stats := NewStatistics(tr.Mesh().NumTetrahedra())
	ids := make([]int, len(points))
	found := make([]bool, len(points))
	for i, p := range points {
		ids[i], found[i] = ExecPointQueryT(tr, p, stats)
	}
	return ids, found, stats
}

// ExecPointLocationsV runs a batch of point-location queries over a NodeV
// tree.
func ExecPointLocationsV(tr tree.VTreeBuilder, points []tetratree.Point) ([]int, []bool, *Statistics) {
	stats := NewStatistics(tr.Mesh().NumTetrahedra())
	ids := make([]int, len(points))
	found := make([]bool, len(points))
	for i, p := range points {
		ids[i], found[i] = ExecPointQueryV(tr, p, stats)
	}
	return ids, found, stats
}
