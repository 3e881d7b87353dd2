package ioformat

import (
	"fmt"
	"math/rand"

	"github.com/phil-mansfield/tetratree"
	"github.com/phil-mansfield/tetratree/geom"
)

// GeneratorMode selects how a synthetic query is anchored, grounded on
// utilities/input_generator.h's generate_random_* vs. generate_near_*
// pairs.
type GeneratorMode string

const (
	// ModeRandom anchors each generated query at a uniformly random point
	// of the mesh domain.
	ModeRandom GeneratorMode = "rand"
	// ModeNear anchors each generated query at the centroid of a randomly
	// chosen tetrahedron.
	ModeNear GeneratorMode = "near"
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

func randomPointIn(region tetratree.Box, rng *rand.Rand) tetratree.Point {
	return tetratree.NewPoint(
		uniform(rng, region.Min.X, region.Max.X),
		uniform(rng, region.Min.Y, region.Max.Y),
		uniform(rng, region.Min.Z, region.Max.Z),
	)
}

// randomVersor is the reference's generate_random_versor: despite the
// name, it is three independent Uniform(0,1) draws, not a point on the
// unit sphere.
func randomVersor(rng *rand.Rand) tetratree.Point {
	return tetratree.NewPoint(uniform(rng, 0, 1), uniform(rng, 0, 1), uniform(rng, 0, 1))
}

func randomTetraCentroid(mesh *tetratree.Mesh, rng *rand.Rand) tetratree.Point {
	tID := rng.Intn(mesh.NumTetrahedra())
	return geom.GetTetrahedronCentroid(mesh.TetraCorners(tID))
}

// GeneratePoints produces numEntries distinct points for a point-query
// input file, grounded on generate_random_point_inputs /
// generate_near_point_inputs.
func GeneratePoints(region tetratree.Box, mesh *tetratree.Mesh, mode GeneratorMode, numEntries int, rng *rand.Rand) ([]tetratree.Point, error) {
	if mode == ModeNear && mesh == nil {
		return nil, fmt.Errorf("ioformat: near-mode point generation requires a mesh")
	}

	seen := map[tetratree.Point]bool{}
	points := make([]tetratree.Point, 0, numEntries)
	for len(points) < numEntries {
		var p tetratree.Point
		if mode == ModeNear {
			p = randomTetraCentroid(mesh, rng)
			if !region.ContainsAllClosed(p) {
				continue
			}
		} else {
			p = randomPointIn(region, rng)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}
	return points, nil
}

// GenerateBoxes produces numEntries boxes with edge length ratio*diagonal,
// grounded on generate_random_box_inputs / generate_near_box_inputs via
// generate_random_boxes / generate_near_boxes.
func GenerateBoxes(region tetratree.Box, mesh *tetratree.Mesh, mode GeneratorMode, ratio float64, numEntries int, rng *rand.Rand) ([]tetratree.Box, error) {
	if mode == ModeNear && mesh == nil {
		return nil, fmt.Errorf("ioformat: near-mode box generation requires a mesh")
	}
	edge := region.Diagonal() * ratio

	seen := map[tetratree.Box]bool{}
	boxes := make([]tetratree.Box, 0, numEntries)
	for len(boxes) < numEntries {
		var min tetratree.Point
		if mode == ModeNear {
			min = randomTetraCentroid(mesh, rng)
		} else {
			min = randomPointIn(region, rng)
		}
		max := tetratree.NewPoint(min.X+edge, min.Y+edge, min.Z+edge)
		if !region.ContainsAllClosed(max) {
			continue
		}
		b := tetratree.NewBox(min, max)
		if seen[b] {
			continue
		}
		seen[b] = true
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// GenerateLines produces numEntries segments from p1 to p1+v*ratio*diagonal,
// where v is randomVersor's unnormalized vector with every component in
// [0,1): segments point into the positive octant and are at most
// ratio*diagonal*sqrt(3) long. Grounded on generate_random_line_inputs /
// generate_near_line_inputs via generate_random_lines / generate_near_lines.
func GenerateLines(region tetratree.Box, mesh *tetratree.Mesh, mode GeneratorMode, ratio float64, numEntries int, rng *rand.Rand) ([]Segment, error) {
	if mode == ModeNear && mesh == nil {
		return nil, fmt.Errorf("ioformat: near-mode line generation requires a mesh")
	}
	edge := region.Diagonal() * ratio

	seen := map[Segment]bool{}
	segments := make([]Segment, 0, numEntries)
	for len(segments) < numEntries {
		var p1 tetratree.Point
		if mode == ModeNear {
			p1 = randomTetraCentroid(mesh, rng)
		} else {
			p1 = randomPointIn(region, rng)
		}
		v := randomVersor(rng)
		p2 := tetratree.NewPoint(p1.X+v.X*edge, p1.Y+v.Y*edge, p1.Z+v.Z*edge)
		if !region.ContainsAllClosed(p2) {
			continue
		}
		s := Segment{P1: p1, P2: p2}
		if seen[s] {
			continue
		}
		seen[s] = true
		segments = append(segments, s)
	}
	return segments, nil
}
