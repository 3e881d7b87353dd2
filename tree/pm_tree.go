package tree

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
)

// PMTree builds a tree under the PM criterion: a Node_V hierarchy, combining
// PR's vertex-count threshold and fully recursive re-dispatching split with
// PM2's common-vertex exception on the tetrahedra-count threshold.
// Grounded on pt_tree.h.
type PMTree struct {
	mesh              *tetratree.Mesh
	decomposition     subdivision.Strategy
	root              *NodeV
	verticesPerLeaf   int
	tetrahedraPerLeaf int
}

// NewPMTree returns a PMTree over mesh, using decomposition to split node
// domains, admitting at most verticesPerLeaf vertices and tetrahedraPerLeaf
// tetrahedra per leaf.
func NewPMTree(mesh *tetratree.Mesh, decomposition subdivision.Strategy, verticesPerLeaf, tetrahedraPerLeaf int) *PMTree {
	return &PMTree{
		mesh:              mesh,
		decomposition:     decomposition,
		root:              &NodeV{},
		verticesPerLeaf:   verticesPerLeaf,
		tetrahedraPerLeaf: tetrahedraPerLeaf,
	}
}

// Mesh returns the mesh the tree indexes.
func (tr *PMTree) Mesh() *tetratree.Mesh { return tr.mesh }

// Decomposition returns the subdivision strategy the tree was built with.
func (tr *PMTree) Decomposition() subdivision.Strategy { return tr.decomposition }

// Root returns the tree's root node.
func (tr *PMTree) Root() *NodeV { return tr.root }

// BuildTree inserts every vertex, then every tetrahedron, grounded on
// pt_tree.h's build_tree.
func (tr *PMTree) BuildTree() {
	dom := tr.mesh.Domain()
	for v := 0; v < tr.mesh.NumVertices(); v++ {
		tr.addVertex(tr.root, dom, 0, v)
	}
	for t := 0; t < tr.mesh.NumTetrahedra(); t++ {
		tr.addTetrahedron(tr.root, dom, 0, t)
	}
}

func (tr *PMTree) isFullVertex(n *NodeV) bool {
	return n.VArraySize() > tr.verticesPerLeaf
}

// isFullTetrahedra mirrors PM2Tree.isFull's common-vertex exception,
// grounded on pt_tree.h's is_full_tetrahedra.
func (tr *PMTree) isFullTetrahedra(n *NodeV) bool {
	tSize := n.TArraySize()
	if tSize <= tr.tetrahedraPerLeaf {
		return false
	}
	ids := Expand(n.TArray())
	if maxSharedVertexCount(tr.mesh, ids) == len(ids) {
		return false
	}
	return true
}

// addVertex descends into exactly one child, grounded on pt_tree.h's
// add_vertex (identical in shape to p_tree.h's).
func (tr *PMTree) addVertex(n *NodeV, domain tetratree.Box, level, v int) {
	if n.IsLeaf() {
		n.AddVertex(v + 1)
		if tr.isFullVertex(n) {
			tr.split(n, domain, level)
		}
		return
	}
	meshMax := tr.mesh.Domain().Max
	for i := 0; i < tr.decomposition.SonNumber(); i++ {
		sonDom := tr.decomposition.ComputeDomain(domain, level, i)
		if sonDom.ContainsRouting(tr.mesh.Vertex(v).Point, meshMax) {
			tr.addVertex(n.Son(i), sonDom, level+1, v)
			break
		}
	}
}

// addTetrahedron, gated by tetraInBoxBuild, descends into every child of an
// internal node; at a leaf, it checks isFullTetrahedra and splits if so --
// grounded on pt_tree.h's add_tetrahedron.
func (tr *PMTree) addTetrahedron(n *NodeV, domain tetratree.Box, level, t int) {
	if !tetraInBoxBuild(tr.mesh, domain, t) {
		return
	}
	if n.IsLeaf() {
		n.AddTetrahedron(t + 1)
		if tr.isFullTetrahedra(n) {
			tr.split(n, domain, level)
		}
		return
	}
	for i := 0; i < tr.decomposition.SonNumber(); i++ {
		sonDom := tr.decomposition.ComputeDomain(domain, level, i)
		tr.addTetrahedron(n.Son(i), sonDom, level+1, t)
	}
}

// split turns leaf n into an internal node and re-dispatches its own
// vertices, then its own tetrahedra, back through addVertex/addTetrahedron
// -- grounded on pt_tree.h's split.
func (tr *PMTree) split(n *NodeV, domain tetratree.Box, level int) {
	n.InitSons(tr.decomposition.SonNumber())
	for i := 0; i < tr.decomposition.SonNumber(); i++ {
		n.SetSon(i, &NodeV{})
	}

	for it := n.VArrayIterator(); !it.Done(); it.Advance() {
		tr.addVertex(n, domain, level, it.Value())
	}
	for it := n.TArrayIterator(); !it.Done(); it.Advance() {
		tr.addTetrahedron(n, domain, level, it.Value())
	}

	n.ClearVArray()
	n.ClearTArray()
}
