package tree

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
)

// TTreeBuilder is satisfied by the two Node_T-based builders, PMRTree and
// PM2Tree.
type TTreeBuilder interface {
	Mesh() *tetratree.Mesh
	Decomposition() subdivision.Strategy
	Root() *NodeT
}

// VTreeBuilder is satisfied by the two Node_V-based builders, PRTree and
// PMTree.
type VTreeBuilder interface {
	Mesh() *tetratree.Mesh
	Decomposition() subdivision.Strategy
	Root() *NodeV
}

// leafRange is the half-open vertex-id range a leaf completely contains,
// used as the grouping key for tetrahedron reindexing.
type leafRange struct{ start, end int }

// Reindexer exploits the spatial coherence a built tree already encodes to
// permute a mesh's vertex and tetrahedron arrays so that entities indexed
// by the same leaf end up contiguous, then compresses each leaf's
// tetrahedra array via run-length encoding. Grounded on reindexer.h and
// reindexer.cpp. coherentIndices assigns new, 0-based mesh ids (-1 is the
// "not yet assigned" sentinel, mirroring the reference's -1); those ids
// are offset by one only where they cross into a node's run-length
// compressed array, via compressTArray and AddVertex/AddTetrahedron's
// callers, never in coherentIndices or the mesh itself.
type Reindexer struct {
	coherentIndices       []int
	indicesCounter        int
	tetraLeavesAssociation [][]leafRange
}

// NewReindexer returns a ready-to-use Reindexer.
func NewReindexer() *Reindexer { return &Reindexer{} }

func (r *Reindexer) reset() {
	r.coherentIndices = nil
	r.indicesCounter = 0
}

// ReindexTree performs the full two-pass reindex-and-compress on a
// Node_T-based tree (PMR or PM2), grounded on reindexer.h's
// reindex_tree_and_mesh(T&).
func (r *Reindexer) ReindexTree(tree TTreeBuilder) {
	mesh := tree.Mesh()

	r.coherentIndices = newSentinelSlice(mesh.NumVertices())
	r.reindexVerticesT(tree.Root(), mesh.Domain(), 0, tree.Decomposition(), mesh)
	r.updateMeshVertices(mesh)
	r.reset()

	r.coherentIndices = newSentinelSlice(mesh.NumTetrahedra())
	r.tetraLeavesAssociation = make([][]leafRange, mesh.NumTetrahedra())
	r.extractTetraLeavesAssociationT(tree.Root(), mesh.Domain(), 0, tree.Decomposition(), mesh)
	r.extractLeavesTetraAssociation(mesh)

	r.reindexTetrahedraT(tree.Root(), tree.Decomposition())
	r.updateMeshTetrahedra(mesh)
	r.reset()
}

// ReindexVTree performs the full two-pass reindex-and-compress on a
// Node_V-based tree (PR or PM), grounded on reindexer.h's
// reindex_tree_and_mesh(P_Tree<D>&)/(PT_Tree<D>&) (identical bodies).
func (r *Reindexer) ReindexVTree(tree VTreeBuilder) {
	mesh := tree.Mesh()

	r.coherentIndices = newSentinelSlice(mesh.NumVertices())
	r.reindexVerticesV(tree.Root(), tree.Decomposition())
	r.updateMeshVertices(mesh)
	r.reset()

	r.coherentIndices = newSentinelSlice(mesh.NumTetrahedra())
	r.tetraLeavesAssociation = make([][]leafRange, mesh.NumTetrahedra())
	r.extractTetraLeavesAssociationV(tree.Root(), tree.Decomposition(), mesh)
	r.extractLeavesTetraAssociation(mesh)

	r.reindexTetrahedraV(tree.Root(), tree.Decomposition())
	r.updateMeshTetrahedra(mesh)
	r.reset()
}

func newSentinelSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = -1
	}
	return s
}

// reindexVerticesT assigns coherent ids to every vertex geometrically
// contained by a Node_T leaf's domain, in ascending vertex-id order within
// each leaf (mirroring std::set's iteration order), grounded on
// reindexer.h's reindex_vertices(Node_T&, ...).
func (r *Reindexer) reindexVerticesT(n *NodeT, domain tetratree.Box, level int, division subdivision.Strategy, mesh *tetratree.Mesh) {
	if n.IsLeaf() {
		meshMax := mesh.Domain().Max
		seen := map[int]bool{}
		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			t := mesh.Tetrahedron(it.Value())
			for j := 0; j < 4; j++ {
				v := t.TV(j)
				if domain.ContainsRouting(mesh.Vertex(v).Point, meshMax) {
					seen[v] = true
				}
			}
		}
		ids := make([]int, 0, len(seen))
		for v := range seen {
			ids = append(ids, v)
		}
		sort.Ints(ids)
		for _, v := range ids {
			r.coherentIndices[v] = r.indicesCounter
			r.indicesCounter++
		}
		return
	}
	for i := 0; i < division.SonNumber(); i++ {
		son := n.Son(i)
		if son == nil {
			continue
		}
		sonDom := division.ComputeDomain(domain, level, i)
		r.reindexVerticesT(son, sonDom, level+1, division, mesh)
	}
}

// reindexVerticesV assigns coherent ids to every vertex a Node_V leaf
// holds, in its own array order, then collapses the leaf's vertex array to
// a range; internal nodes also record the full range their subtree spans.
// Grounded on reindexer.h's reindex_vertices(Node_V&, D&).
func (r *Reindexer) reindexVerticesV(n *NodeV, division subdivision.Strategy) {
	if n.IsLeaf() {
		if n.RealVArraySize() == 0 {
			return
		}
		start := r.indicesCounter
		for it := n.VArrayIterator(); !it.Done(); it.Advance() {
			r.coherentIndices[it.Value()] = r.indicesCounter
			r.indicesCounter++
		}
		end := r.indicesCounter
		n.ClearVArray()
		n.SetVRange(start, end)
		return
	}
	start := r.indicesCounter
	for i := 0; i < division.SonNumber(); i++ {
		son := n.Son(i)
		if son != nil {
			r.reindexVerticesV(son, division)
		}
	}
	end := r.indicesCounter
	n.SetVRange(start, end)
}

// updateMeshVertices permutes mesh's vertex slice according to
// coherentIndices and rewrites every tetrahedron's vertex references to
// match, grounded on reindexer.cpp's update_mesh_vertices.
func (r *Reindexer) updateMeshVertices(mesh *tetratree.Mesh) {
	newOrder := make([]tetratree.Vertex, mesh.NumVertices())
	for i := 0; i < mesh.NumVertices(); i++ {
		newOrder[r.coherentIndices[i]] = mesh.Vertex(i)
	}
	mesh.Vertices = newOrder

	for i := 0; i < mesh.NumTetrahedra(); i++ {
		t := mesh.Tetrahedron(i)
		for j := 0; j < 4; j++ {
			t.SetTV(j, r.coherentIndices[t.TV(j)])
		}
		mesh.SetTetrahedron(i, t)
	}
}

// updateMeshTetrahedra permutes mesh's tetrahedron slice according to
// coherentIndices, grounded on reindexer.cpp's update_mesh_tetrahedra.
func (r *Reindexer) updateMeshTetrahedra(mesh *tetratree.Mesh) {
	newOrder := make([]tetratree.Tetrahedron, mesh.NumTetrahedra())
	for i := 0; i < mesh.NumTetrahedra(); i++ {
		newOrder[r.coherentIndices[i]] = mesh.Tetrahedron(i)
	}
	mesh.Tetrahedra = newOrder
}

// extractTetraLeavesAssociationT records, for every tetrahedron a Node_T
// leaf indexes with at least one vertex, the leaf's (already reindexed)
// contained vertex range, grounded on reindexer.h's
// extract_tetra_leaves_association(Node_T&, ...).
func (r *Reindexer) extractTetraLeavesAssociationT(n *NodeT, dom tetratree.Box, level int, division subdivision.Strategy, mesh *tetratree.Mesh) {
	if n.IsLeaf() {
		start, end, ok := n.VRange(dom, mesh)
		if !ok {
			return
		}
		leaf := leafRange{start, end}
		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			tID := it.Value()
			t := mesh.Tetrahedron(tID)
			if IndexesTetrahedronVerticesDom(t, dom, mesh) {
				r.tetraLeavesAssociation[tID] = append(r.tetraLeavesAssociation[tID], leaf)
			}
		}
		return
	}
	for i := 0; i < division.SonNumber(); i++ {
		son := n.Son(i)
		if son == nil {
			continue
		}
		sonDom := division.ComputeDomain(dom, level, i)
		r.extractTetraLeavesAssociationT(son, sonDom, level+1, division, mesh)
	}
}

// extractTetraLeavesAssociationV is extractTetraLeavesAssociationT's
// Node_V counterpart, grounded on reindexer.h's
// extract_tetra_leaves_association(Node_V&, ...).
func (r *Reindexer) extractTetraLeavesAssociationV(n *NodeV, division subdivision.Strategy, mesh *tetratree.Mesh) {
	if n.IsLeaf() {
		if n.VArraySize() == 0 {
			return
		}
		leaf := leafRange{n.VStart(), n.VEnd()}
		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			tID := it.Value()
			t := mesh.Tetrahedron(tID)
			if n.IndexesTetrahedronVertices(t) {
				r.tetraLeavesAssociation[tID] = append(r.tetraLeavesAssociation[tID], leaf)
			}
		}
		return
	}
	for i := 0; i < division.SonNumber(); i++ {
		son := n.Son(i)
		if son != nil {
			r.extractTetraLeavesAssociationV(son, division, mesh)
		}
	}
}

// extractLeavesTetraAssociation groups tetrahedra by their identical
// leaf-association signature and assigns each group a contiguous block of
// coherent ids, in signature-sorted order (replacing the reference's
// std::map<vector<pair<int,int>>, ...>, which iterates lexicographically).
// Grounded on reindexer.cpp's extract_leaves_tetra_association.
func (r *Reindexer) extractLeavesTetraAssociation(mesh *tetratree.Mesh) {
	groups := make(map[string][]int)
	for tID, leaves := range r.tetraLeavesAssociation {
		key := leafAssociationKey(leaves)
		groups[key] = append(groups[key], tID)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, tID := range groups[k] {
			r.coherentIndices[tID] = r.indicesCounter
			r.indicesCounter++
		}
	}
}

func leafAssociationKey(leaves []leafRange) string {
	s := ""
	for _, l := range leaves {
		s += fmt.Sprintf("%d,%d;", l.start, l.end)
	}
	return s
}

// reindexTetrahedraT rewrites and run-length-compresses every Node_T
// leaf's tetrahedra array in terms of the new coherent ids, grounded on
// reindexer.h's reindex_tetrahedra.
func (r *Reindexer) reindexTetrahedraT(n *NodeT, division subdivision.Strategy) {
	if n.IsLeaf() {
		var newList []int
		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			newList = append(newList, r.coherentIndices[it.Value()])
		}
		n.ClearTArray()
		if len(newList) > 0 {
			compressTArray(n.AddTetrahedron, newList)
		}
		return
	}
	for i := 0; i < division.SonNumber(); i++ {
		son := n.Son(i)
		if son != nil {
			r.reindexTetrahedraT(son, division)
		}
	}
}

// reindexTetrahedraV is reindexTetrahedraT's Node_V counterpart.
func (r *Reindexer) reindexTetrahedraV(n *NodeV, division subdivision.Strategy) {
	if n.IsLeaf() {
		var newList []int
		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			newList = append(newList, r.coherentIndices[it.Value()])
		}
		n.ClearTArray()
		if len(newList) > 0 {
			compressTArray(n.AddTetrahedron, newList)
		}
		return
	}
	for i := 0; i < division.SonNumber(); i++ {
		son := n.Son(i)
		if son != nil {
			r.reindexTetrahedraV(son, division)
		}
	}
}

// compressTArray run-length encodes list (sorted in place) via add,
// folding a consecutive run of three or more ids into the [-(start+1),k]
// encoding and leaving shorter runs as individual entries, offsetting
// every id (never a run's length field) by one into AddTetrahedron's
// stored representation. Both node flavors embed tArray, so add is always
// that flavor's own AddTetrahedron. Grounded on reindexer.cpp's
// compress_t_array.
func compressTArray(add func(int), list []int) {
	sort.Ints(list)
	if len(list) == 1 {
		add(list[0] + 1)
		return
	}
	count := 0
	startID := list[0]
	for i := 0; i < len(list); i++ {
		if i+1 < len(list) && list[i]+1 == list[i+1] {
			count++
			continue
		}
		if count > 1 {
			add(-(startID + 1))
			add(count)
		} else {
			add(startID + 1)
			if count == 1 {
				add(startID + count + 1)
			}
		}
		count = 0
		if i+1 < len(list) {
			startID = list[i+1]
		}
	}
}
