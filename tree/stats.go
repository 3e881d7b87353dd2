package tree

// Stats summarizes the shape of a built tree, grounded on
// statistics/index_statistics.h's IndexStatistics. Fields that have no
// meaning for a given node flavor (vertex-per-leaf counts for a NodeT
// tree, say) are left at zero.
type Stats struct {
	NumNode, NumFullLeaf, NumEmptyLeaf int

	MinTreeDepth, MaxTreeDepth int
	AvgTreeDepth                float64

	MinVertexInFullLeaf, MaxVertexInFullLeaf int
	AvgVertexInFullLeaf                      float64

	// TListLength is the sum of each leaf's raw (possibly run-length
	// compressed) tetrahedra array length; RealTListLength is the sum of
	// each leaf's expanded tetrahedra count.
	TListLength, RealTListLength int

	// NumTinNLeaf buckets every tetrahedron of the mesh by how many
	// leaves index it.
	NumTin1Leaf, NumTin2Leaf, NumTin3Leaf, NumTin4Leaf, NumTinMoreLeaf int
	MinLeavesForTetra, MaxLeavesForTetra                               int
	AvgLeavesForTetra                                                  float64
}

type statsAccumulator struct {
	totalDepth int
	leafCount  int

	totalVertexInFullLeaf int
}

func (s *Stats) bucketLeavesForTetra(leavesForTetra map[int]int, numTetrahedra int) {
	s.MinLeavesForTetra = -1
	total := 0
	for tID := 0; tID < numTetrahedra; tID++ {
		n := leavesForTetra[tID]
		total += n
		switch {
		case n <= 1:
			s.NumTin1Leaf++
		case n == 2:
			s.NumTin2Leaf++
		case n == 3:
			s.NumTin3Leaf++
		case n == 4:
			s.NumTin4Leaf++
		default:
			s.NumTinMoreLeaf++
		}
		if s.MinLeavesForTetra == -1 || n < s.MinLeavesForTetra {
			s.MinLeavesForTetra = n
		}
		if n > s.MaxLeavesForTetra {
			s.MaxLeavesForTetra = n
		}
	}
	if numTetrahedra > 0 {
		s.AvgLeavesForTetra = float64(total) / float64(numTetrahedra)
	}
}

// ComputeStatsT walks a T-flavor tree, grounded on statistics.cpp's
// generate_index_stats pass over a Node_T hierarchy.
func ComputeStatsT(tr TTreeBuilder) Stats {
	s := Stats{MinTreeDepth: -1}
	acc := statsAccumulator{}
	leavesForTetra := map[int]int{}
	walkStatsT(tr.Root(), 0, &s, &acc, leavesForTetra)
	if acc.leafCount > 0 {
		s.AvgTreeDepth = float64(acc.totalDepth) / float64(acc.leafCount)
	}
	s.bucketLeavesForTetra(leavesForTetra, tr.Mesh().NumTetrahedra())
	return s
}

func walkStatsT(n *NodeT, depth int, s *Stats, acc *statsAccumulator, leavesForTetra map[int]int) {
	s.NumNode++
	if n.IsLeaf() {
		size := n.RealTArraySize()
		if size == 0 {
			s.NumEmptyLeaf++
		} else {
			s.NumFullLeaf++
		}
		s.TListLength += n.TArraySize()
		s.RealTListLength += size

		if s.MinTreeDepth == -1 || depth < s.MinTreeDepth {
			s.MinTreeDepth = depth
		}
		if depth > s.MaxTreeDepth {
			s.MaxTreeDepth = depth
		}
		acc.totalDepth += depth
		acc.leafCount++

		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			leavesForTetra[it.Value()]++
		}
		return
	}
	for i := range n.sons {
		if son := n.Son(i); son != nil {
			walkStatsT(son, depth+1, s, acc, leavesForTetra)
		}
	}
}

// ComputeStatsV walks a V-flavor tree, grounded on statistics.cpp's
// generate_index_stats pass over a Node_V hierarchy.
func ComputeStatsV(tr VTreeBuilder) Stats {
	s := Stats{MinTreeDepth: -1, MinVertexInFullLeaf: -1}
	acc := statsAccumulator{}
	leavesForTetra := map[int]int{}
	walkStatsV(tr.Root(), 0, &s, &acc, leavesForTetra)
	if acc.leafCount > 0 {
		s.AvgTreeDepth = float64(acc.totalDepth) / float64(acc.leafCount)
	}
	if s.NumFullLeaf > 0 {
		s.AvgVertexInFullLeaf = float64(acc.totalVertexInFullLeaf) / float64(s.NumFullLeaf)
	}
	if s.MinVertexInFullLeaf == -1 {
		s.MinVertexInFullLeaf = 0
	}
	s.bucketLeavesForTetra(leavesForTetra, tr.Mesh().NumTetrahedra())
	return s
}

func walkStatsV(n *NodeV, depth int, s *Stats, acc *statsAccumulator, leavesForTetra map[int]int) {
	s.NumNode++
	if n.IsLeaf() {
		size := n.RealTArraySize()
		if size == 0 {
			s.NumEmptyLeaf++
		} else {
			s.NumFullLeaf++
			vsize := n.RealVArraySize()
			acc.totalVertexInFullLeaf += vsize
			if s.MinVertexInFullLeaf == -1 || vsize < s.MinVertexInFullLeaf {
				s.MinVertexInFullLeaf = vsize
			}
			if vsize > s.MaxVertexInFullLeaf {
				s.MaxVertexInFullLeaf = vsize
			}
		}
		s.TListLength += n.TArraySize()
		s.RealTListLength += size

		if s.MinTreeDepth == -1 || depth < s.MinTreeDepth {
			s.MinTreeDepth = depth
		}
		if depth > s.MaxTreeDepth {
			s.MaxTreeDepth = depth
		}
		acc.totalDepth += depth
		acc.leafCount++

		for it := n.TArrayIterator(); !it.Done(); it.Advance() {
			leavesForTetra[it.Value()]++
		}
		return
	}
	for i := range n.sons {
		if son := n.Son(i); son != nil {
			walkStatsV(son, depth+1, s, acc, leavesForTetra)
		}
	}
}
