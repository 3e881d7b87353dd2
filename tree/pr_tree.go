package tree

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
)

// PRTree builds a tree under the PR criterion: a Node_V hierarchy split on a
// vertex-count threshold alone. Every vertex is inserted before any
// tetrahedron, and tetrahedron insertion never itself triggers a split.
// Grounded on p_tree.h.
type PRTree struct {
	mesh             *tetratree.Mesh
	decomposition    subdivision.Strategy
	root             *NodeV
	verticesPerLeaf int
}

// NewPRTree returns a PRTree over mesh, using decomposition to split node
// domains, admitting at most verticesPerLeaf vertices per leaf.
func NewPRTree(mesh *tetratree.Mesh, decomposition subdivision.Strategy, verticesPerLeaf int) *PRTree {
	return &PRTree{
		mesh:             mesh,
		decomposition:    decomposition,
		root:             &NodeV{},
		verticesPerLeaf: verticesPerLeaf,
	}
}

// Mesh returns the mesh the tree indexes.
func (tr *PRTree) Mesh() *tetratree.Mesh { return tr.mesh }

// Decomposition returns the subdivision strategy the tree was built with.
func (tr *PRTree) Decomposition() subdivision.Strategy { return tr.decomposition }

// Root returns the tree's root node.
func (tr *PRTree) Root() *NodeV { return tr.root }

// BuildTree inserts every vertex, then every tetrahedron, grounded on
// p_tree.h's build_tree.
func (tr *PRTree) BuildTree() {
	dom := tr.mesh.Domain()
	for v := 0; v < tr.mesh.NumVertices(); v++ {
		tr.addVertex(tr.root, dom, 0, v)
	}
	for t := 0; t < tr.mesh.NumTetrahedra(); t++ {
		tr.addTetrahedron(tr.root, dom, 0, t)
	}
}

func (tr *PRTree) isFull(n *NodeV) bool {
	return n.VArraySize() > tr.verticesPerLeaf
}

// addVertex descends into exactly one child -- the first whose domain
// routes the vertex's point -- grounded on p_tree.h's add_vertex.
func (tr *PRTree) addVertex(n *NodeV, domain tetratree.Box, level, v int) {
	if n.IsLeaf() {
		n.AddVertex(v + 1)
		if tr.isFull(n) {
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
// internal node (a tetrahedron may straddle several), and never itself
// checks for overflow -- grounded on p_tree.h's add_tetrahedron.
func (tr *PRTree) addTetrahedron(n *NodeV, domain tetratree.Box, level, t int) {
	if !tetraInBoxBuild(tr.mesh, domain, t) {
		return
	}
	if n.IsLeaf() {
		n.AddTetrahedron(t + 1)
		return
	}
	for i := 0; i < tr.decomposition.SonNumber(); i++ {
		sonDom := tr.decomposition.ComputeDomain(domain, level, i)
		tr.addTetrahedron(n.Son(i), sonDom, level+1, t)
	}
}

// split turns leaf n into an internal node and re-dispatches its own
// vertices, then its own tetrahedra, back through addVertex/addTetrahedron
// -- grounded on p_tree.h's split.
func (tr *PRTree) split(n *NodeV, domain tetratree.Box, level int) {
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
