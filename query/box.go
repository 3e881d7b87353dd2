package query

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
)

// addTetra records tID as a box (or line) query result, deduping against
// stats and counting it once towards AccessPerTetra. Grounded on
// spatial_queries.h's add_tetrahedra_to_box_query_result, generalized to a
// single id so line queries can reuse it too.
func addTetra(tID int, stats *Statistics, result *[]int) {
	if stats.markChecked(tID) {
		return
	}
	*result = append(*result, tID)
	stats.AccessPerTetra++
}

// addAllInArray reports every tetrahedron a node's raw array encodes,
// without any further test -- used once a query box has already been shown
// to completely contain the node's own domain.
func addAllInArray(data []int, stats *Statistics, result *[]int) {
	for it := tree.NewRunIterator(data); !it.Done(); it.Advance() {
		addTetra(it.Value(), stats, result)
	}
}

// boxQueryLeaf tests a leaf's tetrahedra against box b, grounded on
// spatial_queries.h's exec_box_query_leaf_test: if b completely contains
// the leaf's own domain, every tetrahedron the leaf indexes is added
// untested; otherwise a lone entry goes straight to the atomic
// per-tetrahedron test (TetraInBoxQuery, i.e. tetra_in_box), and each run is
// first compared against its own bounding box, promoting the whole run
// untested if b completely contains it, skipping it untested if b and the
// run's bbox don't even intersect, and falling through to the atomic test
// only for the runs b partially overlaps.
func boxQueryLeaf(data []int, mesh *tetratree.Mesh, dom, b tetratree.Box, stats *Statistics, result *[]int) {
	stats.NumLeaf++
	if b.CompletelyContains(dom) {
		stats.BoxCompletelyContainsLeafNum++
		addAllInArray(data, stats, result)
		return
	}

	pos := 0
	for pos < len(data) {
		if data[pos] >= 0 {
			tID := data[pos] - 1
			stats.NumGeometricTest++
			if geom.TetraInBoxQuery(tID, b.Min, b.Max, mesh) {
				addTetra(tID, stats, result)
			}
			pos++
			continue
		}

		bb, runStart, runEnd, next, ok := tree.GetRunBoundingBox(data, pos, mesh)
		if !ok {
			pos++
			continue
		}
		switch {
		case b.CompletelyContains(bb):
			stats.BoxCompletelyContainsBBoxNum++
			for tID := runStart; tID <= runEnd; tID++ {
				addTetra(tID, stats, result)
			}
		case b.Intersects(bb):
			stats.BoxIntersectBBoxNum++
			for tID := runStart; tID <= runEnd; tID++ {
				stats.BoxIntersectBBoxGeomTestsNum++
				stats.NumGeometricTest++
				if geom.TetraInBoxQuery(tID, b.Min, b.Max, mesh) {
					addTetra(tID, stats, result)
				}
			}
		default:
			stats.BoxNoIntersectBBoxNum++
			stats.AvoidedTetraGeomTestsNum += runEnd - runStart + 1
		}
		pos = next
	}
}

// ExecBoxQueryT runs a box query over a NodeT tree (PMR/PM2), returning the
// ids of every tetrahedron intersecting b. Grounded on
// spatial_queries.h's exec_box_query.
func ExecBoxQueryT(tr tree.TTreeBuilder, b tetratree.Box, stats *Statistics) []int {
	mesh := tr.Mesh()
	var result []int
	execBoxNodeT(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, b, stats, &result)
	return result
}

func execBoxNodeT(n *tree.NodeT, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, b tetratree.Box, stats *Statistics, result *[]int) {
	if !dom.Intersects(b) {
		return
	}
	stats.NumNode++
	if n.IsLeaf() {
		boxQueryLeaf(n.TArray(), mesh, dom, b, stats, result)
		return
	}
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		execBoxNodeT(n.Son(i), sonDom, level+1, decomp, mesh, b, stats, result)
	}
}

// ExecBoxQueryV runs a box query over a NodeV tree (PR/PM).
func ExecBoxQueryV(tr tree.VTreeBuilder, b tetratree.Box, stats *Statistics) []int {
	mesh := tr.Mesh()
	var result []int
	execBoxNodeV(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, b, stats, &result)
	return result
}

func execBoxNodeV(n *tree.NodeV, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, b tetratree.Box, stats *Statistics, result *[]int) {
	if !dom.Intersects(b) {
		return
	}
	stats.NumNode++
	if n.IsLeaf() {
		boxQueryLeaf(n.TArray(), mesh, dom, b, stats, result)
		return
	}
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		execBoxNodeV(n.Son(i), sonDom, level+1, decomp, mesh, b, stats, result)
	}
}

// ExecBoxQueriesT runs a batch of box queries over a NodeT tree, resetting
// the dedup table between queries but accumulating every other Statistics
// counter across the whole batch -- grounded on spatial_queries.h's
// exec_box_queries.
func ExecBoxQueriesT(tr tree.TTreeBuilder, boxes []tetratree.Box) ([][]int, *Statistics) {
	stats := NewStatistics(tr.Mesh().NumTetrahedra())
	results := make([][]int, len(boxes))
	for i, b := range boxes {
		stats.resetCheckTetra()
		results[i] = ExecBoxQueryT(tr, b, stats)
	}
	return results, stats
}

// ExecBoxQueriesV runs a batch of box queries over a NodeV tree.
func ExecBoxQueriesV(tr tree.VTreeBuilder, boxes []tetratree.Box) ([][]int, *Statistics) {
	stats := NewStatistics(tr.Mesh().NumTetrahedra())
	results := make([][]int, len(boxes))
	for i, b := range boxes {
		stats.resetCheckTetra()
		results[i] = ExecBoxQueryV(tr, b, stats)
	}
	return results, stats
}
