package tree

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
)

// PM2Tree builds a tree under the PM2 criterion: a Node_T hierarchy split on
// a tetrahedra-count threshold, except that a node is never split if every
// tetrahedron it holds shares one common vertex -- splitting an
// un-splittable cluster would just recreate it in every child forever.
// Grounded on t_tree.h.
type PM2Tree struct {
	mesh              *tetratree.Mesh
	decomposition     subdivision.Strategy
	root              *NodeT
	tetrahedraPerLeaf int
}

// NewPM2Tree returns a PM2Tree over mesh, using decomposition to split node
// domains, admitting at most tetrahedraPerLeaf tetrahedra per leaf.
func NewPM2Tree(mesh *tetratree.Mesh, decomposition subdivision.Strategy, tetrahedraPerLeaf int) *PM2Tree {
	return &PM2Tree{
		mesh:              mesh,
		decomposition:     decomposition,
		root:              &NodeT{},
		tetrahedraPerLeaf: tetrahedraPerLeaf,
	}
}

// Mesh returns the mesh the tree indexes.
func (tr *PM2Tree) Mesh() *tetratree.Mesh { return tr.mesh }

// Decomposition returns the subdivision strategy the tree was built with.
func (tr *PM2Tree) Decomposition() subdivision.Strategy { return tr.decomposition }

// Root returns the tree's root node.
func (tr *PM2Tree) Root() *NodeT { return tr.root }

// BuildTree inserts every tetrahedron, grounded on t_tree.h's build_tree.
func (tr *PM2Tree) BuildTree() {
	dom := tr.mesh.Domain()
	for t := 0; t < tr.mesh.NumTetrahedra(); t++ {
		tr.addTetrahedron(tr.root, dom, 0, t)
	}
}

// isFull reports whether n holds more than tetrahedraPerLeaf tetrahedra and
// those tetrahedra are not all incident to one common vertex -- grounded on
// t_tree.h's is_full, which sorts the node's vertex_tetrahedron_pair vector
// to find a vertex shared by every one of the node's tetrahedra.
func (tr *PM2Tree) isFull(n *NodeT) bool {
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

// addTetrahedron, gated by tetraInBoxBuild, descends into every child of an
// internal node; at a leaf, it checks isFull and splits if so -- grounded
// on t_tree.h's add_tetrahedron.
func (tr *PM2Tree) addTetrahedron(n *NodeT, domain tetratree.Box, level, t int) {
	if !tetraInBoxBuild(tr.mesh, domain, t) {
		return
	}
	if n.IsLeaf() {
		n.AddTetrahedron(t + 1)
		if tr.isFull(n) {
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
// tetrahedra back through addTetrahedron -- unlike PMR's split, a child
// that immediately overflows again re-splits recursively. Grounded on
// t_tree.h's split.
func (tr *PM2Tree) split(n *NodeT, domain tetratree.Box, level int) {
	n.InitSons(tr.decomposition.SonNumber())
	for i := 0; i < tr.decomposition.SonNumber(); i++ {
		n.SetSon(i, &NodeT{})
	}
	for it := n.TArrayIterator(); !it.Done(); it.Advance() {
		tr.addTetrahedron(n, domain, level, it.Value())
	}
	n.ClearTArray()
}
