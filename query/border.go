package query

import (
	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
)

// setMeshBorders walks tuples (already sorted by face) and flags every
// unpaired face as a mesh boundary face on its tetrahedron. Two
// consecutive tuples naming the same face are the two tetrahedra that
// share it -- an interior face -- and are both skipped; a tuple with no
// matching neighbour names a face with only one incident tetrahedron, the
// mesh boundary. Grounded verbatim on border_checker.cpp's
// set_mesh_borders.
func setMeshBorders(mesh *tetratree.Mesh, tuples []faceTuple) {
	sortFaceTuples(tuples)
	j := 0
	for j < len(tuples) {
		if j+1 < len(tuples) && tuples[j].Face == tuples[j+1].Face {
			j += 2
			continue
		}
		t := mesh.Tetrahedron(tuples[j].TID)
		t.SetBorderFace(tuples[j].Position, true)
		mesh.SetTetrahedron(tuples[j].TID, t)
		j++
	}
}

// CalcMeshBordersV flags every mesh boundary face reachable from a NodeV
// tree (PR/PM), by processing each leaf's own vertex range entirely
// locally: a NodeV leaf's reindexed [VStart,VEnd) range already owns every
// vertex it needs to resolve, since any tetrahedron incident to one of
// those vertices necessarily also overlaps the leaf's domain and so is
// already present in the leaf's own tetrahedra array. Grounded on
// border_checker.cpp's calc_mesh_borders (Node_V overload).
func CalcMeshBordersV(tr tree.VTreeBuilder) {
	calcMeshBordersLeafV(tr.Root(), tr.Decomposition(), tr.Mesh())
}

func calcMeshBordersLeafV(n *tree.NodeV, decomp subdivision.Strategy, mesh *tetratree.Mesh) {
	if !n.IsLeaf() {
		for i := 0; i < decomp.SonNumber(); i++ {
			calcMeshBordersLeafV(n.Son(i), decomp, mesh)
		}
		return
	}
	if n.VArraySize() == 0 {
		return
	}
	byVertex := map[int][]faceTuple{}
	for it := n.TArrayIterator(); !it.Done(); it.Advance() {
		tID := it.Value()
		t := mesh.Tetrahedron(tID)
		for vPos := 0; vPos < 4; vPos++ {
			vID := t.TV(vPos)
			if !n.IndexesVertex(vID) {
				continue
			}
			incident := incidentFaceTuples(mesh, tID, vPos)
			byVertex[vID] = append(byVertex[vID], incident[0], incident[1], incident[2])
		}
	}
	for _, tuples := range byVertex {
		setMeshBorders(mesh, tuples)
	}
}

// CalcMeshBordersT flags every mesh boundary face reachable from a NodeT
// tree (PMR/PM2). Node_T nodes carry no vertex array of their own, so
// ownership of each vertex is instead decided on the fly while descending:
// a leaf only resolves a vertex if the leaf's own domain routes that
// vertex (Box.ContainsRouting), exactly the rule the PR/PM builders use to
// hand a boundary vertex to a single child -- this keeps every vertex's
// incident-face accumulation anchored to exactly one leaf even though a
// straddling tetrahedron may be indexed by several. Grounded on
// border_checker.cpp's calc_mesh_borders (Node_T overload), which uses an
// explicit domain-containment test for the same reason.
func CalcMeshBordersT(tr tree.TTreeBuilder) {
	mesh := tr.Mesh()
	byVertex := map[int][]faceTuple{}
	collectBorderFacesT(tr.Root(), mesh.Domain(), 0, tr.Decomposition(), mesh, byVertex)
	for _, tuples := range byVertex {
		setMeshBorders(mesh, tuples)
	}
}

func collectBorderFacesT(n *tree.NodeT, dom tetratree.Box, level int, decomp subdivision.Strategy, mesh *tetratree.Mesh, byVertex map[int][]faceTuple) {
	if !n.IsLeaf() {
		for i := 0; i < decomp.SonNumber(); i++ {
			sonDom := decomp.ComputeDomain(dom, level, i)
			collectBorderFacesT(n.Son(i), sonDom, level+1, decomp, mesh, byVertex)
		}
		return
	}
	meshMax := mesh.Domain().Max
	for it := n.TArrayIterator(); !it.Done(); it.Advance() {
		tID := it.Value()
		t := mesh.Tetrahedron(tID)
		for vPos := 0; vPos < 4; vPos++ {
			vID := t.TV(vPos)
			if !dom.ContainsRouting(mesh.Vertex(vID).Point, meshMax) {
				continue
			}
			incident := incidentFaceTuples(mesh, tID, vPos)
			byVertex[vID] = append(byVertex[vID], incident[0], incident[1], incident[2])
		}
	}
}
