// Package query implements the spatial and topological query engines that
// run against a built tree (package tree): point-location, box, and line
// queries (C8), plus windowed vertex-tetrahedron/tetrahedron-tetrahedron
// adjacency, windowed distortion, and the border checker (C9).
//
// Grounded on queries/spatial_queries.h/.cpp, queries/topological_queries.h/
// .cpp, queries/topological_queries_windowed.h, queries/border_checker.h/
// .cpp, and geometry/geometry_distortion.h/.cpp.
package query

import "github.com/google/uuid"

// newSessionID tags each Statistics value (NewStatistics is its only
// caller) with a stable identifier,
// grounded on SPEC_FULL.md's supplemented per-run query session id -- the
// original has no analogue, since it never needed to correlate results
// across a distributed run.
func newSessionID() uuid.UUID { return uuid.New() }
