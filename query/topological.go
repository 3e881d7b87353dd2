package query

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
)

// collectCandidatesT gathers the ids of every tetrahedron of a NodeT tree
// whose bounding box might intersect b, pruning on the node domain and then
// on each run's own bounding box -- the same candidate-gathering shape a
// box query uses, but without the final atomic TetraInBoxQuery test, since
// a windowed VT/TT query wants tetrahedra that merely reach into the
// window, not ones fully verified to intersect it.
func collectCandidatesT(tr tree.TTreeBuilder, b tetratree.Box) []int {
	mesh := tr.Mesh()
	seen := make([]bool, mesh.NumTetrahedra())
	var out []int
	collectCandidatesNodeT(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, b, seen, &out)
	return out
}

func collectCandidatesNodeT(n *tree.NodeT, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, b tetratree.Box, seen []bool, out *[]int) {
	if !dom.Intersects(b) {
		return
	}
	if n.IsLeaf() {
		collectRunCandidates(n.TArray(), mesh, b, seen, out)
		return
	}
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		collectCandidatesNodeT(n.Son(i), sonDom, level+1, decomp, mesh, b, seen, out)
	}
}

// collectCandidatesV is collectCandidatesT's NodeV counterpart.
func collectCandidatesV(tr tree.VTreeBuilder, b tetratree.Box) []int {
	mesh := tr.Mesh()
	seen := make([]bool, mesh.NumTetrahedra())
	var out []int
	collectCandidatesNodeV(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, b, seen, &out)
	return out
}

func collectCandidatesNodeV(n *tree.NodeV, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, b tetratree.Box, seen []bool, out *[]int) {
	if !dom.Intersects(b) {
		return
	}
	if n.IsLeaf() {
		collectRunCandidates(n.TArray(), mesh, b, seen, out)
		return
	}
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		collectCandidatesNodeV(n.Son(i), sonDom, level+1, decomp, mesh, b, seen, out)
	}
}

func collectRunCandidates(data []int, mesh *tetratree.Mesh, b tetratree.Box, seen []bool, out *[]int) {
	pos := 0
	for pos < len(data) {
		if data[pos] >= 0 {
			addSeen(data[pos]-1, seen, out)
			pos++
			continue
		}
		bb, runStart, runEnd, next, ok := tree.GetRunBoundingBox(data, pos, mesh)
		if !ok {
			pos++
			continue
		}
		if b.Intersects(bb) {
			for tID := runStart; tID <= runEnd; tID++ {
				addSeen(tID, seen, out)
			}
		}
		pos = next
	}
}

func addSeen(tID int, seen []bool, out *[]int) {
	if seen[tID] {
		return
	}
	seen[tID] = true
	*out = append(*out, tID)
}

// collectCandidatesLineT is collectCandidatesT's line-pruned counterpart,
// used by LinearizedTT: a tetrahedron is a candidate if segment p1-p2
// might cross it, pruned the same way a line query prunes (LineInBox at
// node entry, LineInBoundingBox per run).
func collectCandidatesLineT(tr tree.TTreeBuilder, p1, p2 tetratree.Point) []int {
	mesh := tr.Mesh()
	seen := make([]bool, mesh.NumTetrahedra())
	var out []int
	collectCandidatesLineNodeT(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, p1, p2, seen, &out)
	return out
}

func collectCandidatesLineNodeT(n *tree.NodeT, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, p1, p2 tetratree.Point, seen []bool, out *[]int) {
	if !geom.LineInBox(p1, p2, dom) {
		return
	}
	if n.IsLeaf() {
		collectRunCandidatesLine(n.TArray(), mesh, p1, p2, seen, out)
		return
	}
	for i := 0; i < decomp.SonNumber(); i++ {
		sonDom := decomp.ComputeDomain(dom, level, i)
		collectCandidatesLineNodeT(n.Son(i), sonDom, level+1, decomp, mesh, p1, p2, seen, out)
	}
}

func collectRunCandidatesLine(data []int, mesh *tetratree.Mesh, p1, p2 tetratree.Point, seen []bool, out *[]int) {
	pos := 0
	for pos < len(data) {
		if data[pos] >= 0 {
			addSeen(data[pos]-1, seen, out)
			pos++
			continue
		}
		bb, runStart, runEnd, next, ok := tree.GetRunBoundingBox(data, pos, mesh)
		if !ok {
			pos++
			continue
		}
		if geom.LineInBoundingBox(p1, p2, bb) {
			for tID := runStart; tID <= runEnd; tID++ {
				addSeen(tID, seen, out)
			}
		}
		pos = next
	}
}

// buildVT turns a candidate tetrahedron list into a vertex -> incident
// tetrahedra table, restricted to vertices that actually lie within b.
// Grounded on topological_queries_windowed.h's windowed_VT_Leaf: the
// reference restricts by per-node vertex ownership as it descends (its own
// reindexed v_range for NodeV, an explicit domain test for NodeT); since
// this port gathers every reachable candidate up front instead, the same
// restriction is applied once here, against the query box itself.
func buildVT(ids []int, mesh *tetratree.Mesh, b tetratree.Box) map[int][]int {
	vt := map[int][]int{}
	for _, tID := range ids {
		t := mesh.Tetrahedron(tID)
		for p := 0; p < 4; p++ {
			vID := t.TV(p)
			if !b.ContainsAllClosed(mesh.Vertex(vID).Point) {
				continue
			}
			vt[vID] = append(vt[vID], tID)
		}
	}
	return vt
}

// WindowedVTT returns the vertex -> incident-tetrahedra table for every
// vertex of a NodeT tree lying within box b.
func WindowedVTT(tr tree.TTreeBuilder, b tetratree.Box) map[int][]int {
	return buildVT(collectCandidatesT(tr, b), tr.Mesh(), b)
}

// WindowedVTV is WindowedVTT's NodeV counterpart.
func WindowedVTV(tr tree.VTreeBuilder, b tetratree.Box) map[int][]int {
	return buildVT(collectCandidatesV(tr, b), tr.Mesh(), b)
}

// buildTT pairs up adjacent tetrahedra among a candidate set by sorting
// every one of their faces and matching consecutive equal faces, grounded
// on topological_queries.cpp's add_faces/pair_adjacent_tetrahedra.
func buildTT(ids []int, mesh *tetratree.Mesh) map[int][]int {
	var tuples []faceTuple
	for _, tID := range ids {
		for pos := 0; pos < 4; pos++ {
			tuples = append(tuples, newFaceTuple(mesh, tID, pos))
		}
	}
	sortFaceTuples(tuples)

	tt := map[int][]int{}
	i := 0
	for i < len(tuples) {
		if i+1 < len(tuples) && tuples[i].Face == tuples[i+1].Face {
			a, b := tuples[i].TID, tuples[i+1].TID
			tt[a] = append(tt[a], b)
			tt[b] = append(tt[b], a)
			i += 2
			continue
		}
		i++
	}
	return tt
}

// WindowedTTT returns the tetrahedron -> face-adjacent-tetrahedra table for
// every tetrahedron of a NodeT tree reaching into box b.
func WindowedTTT(tr tree.TTreeBuilder, b tetratree.Box) map[int][]int {
	return buildTT(collectCandidatesT(tr, b), tr.Mesh())
}

// WindowedTTV is WindowedTTT's NodeV counterpart.
func WindowedTTV(tr tree.VTreeBuilder, b tetratree.Box) map[int][]int {
	return buildTT(collectCandidatesV(tr, b), tr.Mesh())
}

// LinearizedTTT is WindowedTTT's line-pruned counterpart, grounded on
// topological_queries_windowed.h's linearized_TT: the same face-adjacency
// pairing, but over the tetrahedra a line query's pruning would reach
// rather than a box query's, letting a caller trace adjacency along a
// ray through the mesh instead of within a volume.
func LinearizedTTT(tr tree.TTreeBuilder, p1, p2 tetratree.Point) map[int][]int {
	return buildTT(collectCandidatesLineT(tr, p1, p2), tr.Mesh())
}

// BatchedVT returns only the largest VT entry (the most tetrahedra any
// single vertex within b is incident to) instead of the full table,
// grounded on topological_queries.cpp's batched_VT_leaf: a
// memory-footprint benchmark that never needed the table itself, only its
// worst-case row width.
func BatchedVT(vt map[int][]int) (maxEntries int) {
	for _, tetrahedra := range vt {
		if len(tetrahedra) > maxEntries {
			maxEntries = len(tetrahedra)
		}
	}
	return maxEntries
}

// BatchedTT is BatchedVT's tetrahedron-tetrahedron counterpart, grounded on
// topological_queries.cpp's batched_VT_no_reindex_leaf generalized to TT.
func BatchedTT(tt map[int][]int) (maxEntries int) {
	for _, neighbors := range tt {
		if len(neighbors) > maxEntries {
			maxEntries = len(neighbors)
		}
	}
	return maxEntries
}
