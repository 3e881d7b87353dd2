package query

import "github.com/google/uuid"

// Statistics accumulates the bookkeeping a query pass gathers while
// descending a tree, grounded on queries/spatial_queries.h's
// QueryStatistics: how much of the tree was visited, how many geometric
// tests the atomic predicates actually ran, and how many tests were avoided
// because a box/run bounding-box comparison already settled the answer. A
// single value is shared across an entire exec_*_queries batch, not
// per-query, matching the reference.
type Statistics struct {
	SessionID uuid.UUID

	NumNode          int
	NumLeaf          int
	NumGeometricTest int

	// Per-tetrahedron visitation dedup, sized to the mesh at construction.
	// A query never reports the same tetrahedron id twice within one exec_*
	// call; a candidate that failed its test in one leaf may be tested again
	// in another.
	checkTetra []bool

	AccessPerTetra    int
	AvoidToCheckTetra int

	BoxCompletelyContainsLeafNum int
	BoxCompletelyContainsBBoxNum int
	TetraComplContLeafNum        int
	TetraComplContBBoxNum        int
	BoxIntersectBBoxNum          int
	BoxIntersectBBoxGeomTestsNum int
	BoxNoIntersectBBoxNum        int
	AvoidedTetraGeomTestsNum     int
}

// NewStatistics returns a zeroed Statistics tagged with a fresh session id,
// with its dedup table sized for a mesh of numTetrahedra tetrahedra.
func NewStatistics(numTetrahedra int) *Statistics {
	return &Statistics{
		SessionID:  newSessionID(),
		checkTetra: make([]bool, numTetrahedra),
	}
}

// markChecked reports whether tID has already been recorded by this
// Statistics, recording it if not -- the dedup gate a box/line query passes
// a tetrahedron through (via addTetra) after it has passed its test and
// before reporting it.
func (s *Statistics) markChecked(tID int) (alreadyChecked bool) {
	if s.checkTetra[tID] {
		return true
	}
	s.checkTetra[tID] = true
	return false
}

// resetCheckTetra clears the dedup table between queries of a batch, so
// that one query's visited tetrahedra don't suppress another's -- the
// cumulative counters above are left untouched, matching a single
// QueryStatistics instance threaded through an entire exec_*_queries batch.
func (s *Statistics) resetCheckTetra() {
	for i := range s.checkTetra {
		s.checkTetra[i] = false
	}
}

// AvgGeometricTest returns the average number of atomic geometric tests run
// per tetrahedron actually reported, grounded on spatial_queries.h's
// avgGeometricTest ratio. Returns 0 if no tetrahedra were reported.
func (s *Statistics) AvgGeometricTest() float64 {
	if s.AccessPerTetra == 0 {
		return 0
	}
	return float64(s.NumGeometricTest) / float64(s.AccessPerTetra)
}
