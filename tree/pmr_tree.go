package tree

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
)

// PMRTree builds a tree under the PMR criterion: a Node_T hierarchy split on
// a tetrahedra-count threshold alone, where a split reinserts each
// overflowing tetrahedron into its children exactly once, with no
// overflow check and no recursive re-split -- children may remain over
// threshold after a single split event. Grounded on rt_tree.h.
type PMRTree struct {
	mesh              *tetratree.Mesh
	decomposition     subdivision.Strategy
	root              *NodeT
	tetrahedraPerLeaf int
}

// NewPMRTree returns a PMRTree over mesh, using decomposition to split node
// domains, admitting at most tetrahedraPerLeaf tetrahedra per leaf.
func NewPMRTree(mesh *tetratree.Mesh, decomposition subdivision.Strategy, tetrahedraPerLeaf int) *PMRTree {
	return &PMRTree{
		mesh:              mesh,
		decomposition:     decomposition,
		root:              &NodeT{},
		tetrahedraPerLeaf: tetrahedraPerLeaf,
	}
}

// Mesh returns the mesh the tree indexes.
func (tr *PMRTree) Mesh() *tetratree.Mesh { return tr.mesh }

// Decomposition returns the subdivision strategy the tree was built with.
func (tr *PMRTree) Decomposition() subdivision.Strategy { return tr.decomposition }

// Root returns the tree's root node.
func (tr *PMRTree) Root() *NodeT { return tr.root }

// BuildTree inserts every tetrahedron, grounded on rt_tree.h's build_tree.
func (tr *PMRTree) BuildTree() {
	dom := tr.mesh.Domain()
	for t := 0; t < tr.mesh.NumTetrahedra(); t++ {
		tr.addTetrahedron(tr.root, dom, 0, t)
	}
}

func (tr *PMRTree) isFull(n *NodeT) bool {
	return n.TArraySize() > tr.tetrahedraPerLeaf
}

// addTetrahedron, gated by tetraInBoxBuild, descends into every child of an
// internal node; at a leaf, it checks for overflow and splits once if full
// -- grounded on rt_tree.h's add_tetrahedron.
func (tr *PMRTree) addTetrahedron(n *NodeT, domain tetratree.Box, level, t int) {
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

// split turns leaf n into an internal node and reinserts each of n's own
// tetrahedra into its sons exactly once, via reinsertOnce -- never
// recursing back through addTetrahedron, so overflow is resolved once per
// split event and never cascades. Grounded on rt_tree.h's split, which
// calls reinsert_tetrahedron_once per son rather than add_tetrahedron.
func (tr *PMRTree) split(n *NodeT, domain tetratree.Box, level int) {
	n.InitSons(tr.decomposition.SonNumber())
	for i := 0; i < tr.decomposition.SonNumber(); i++ {
		son := &NodeT{}
		n.SetSon(i, son)
		sonDom := tr.decomposition.ComputeDomain(domain, level, i)
		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			tr.reinsertOnce(son, sonDom, it.Value())
		}
	}
	n.ClearTArray()
}

// reinsertOnce is rt_tree.h's reinsert_tetrahedron_once: gated by
// tetraInBoxBuild like ordinary insertion, but it never checks is_full and
// never splits -- a son that ends up over threshold stays that way until
// its own next insertion triggers a fresh split.
func (tr *PMRTree) reinsertOnce(n *NodeT, domain tetratree.Box, t int) {
	if !tetraInBoxBuild(tr.mesh, domain, t) {
		return
	}
	n.AddTetrahedron(t + 1)
}
