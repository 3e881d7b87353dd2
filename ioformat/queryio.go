package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/phil-mansfield/tetratree"
)

// ReadPoints parses a point-query input file, grounded on io/reader.cpp's
// read_queries(vector<Point>&, ...): a leading count (used only as a
// reserve hint here) followed by that many "x y z" lines.
func ReadPoints(r io.Reader) ([]tetratree.Point, error) {
	sc := newTokenScanner(r)
	count, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading point count: %w", err)
	}
	points := make([]tetratree.Point, 0, count)
	for {
		x, err := sc.nextFloat()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ioformat: reading point %d: %w", len(points), err)
		}
		y, err1 := sc.nextFloat()
		z, err2 := sc.nextFloat()
		if err := firstErr(err1, err2); err != nil {
			return nil, fmt.Errorf("ioformat: reading point %d: %w", len(points), err)
		}
		points = append(points, tetratree.NewPoint(x, y, z))
	}
	return points, nil
}

// WritePoints serializes points in the format ReadPoints accepts.
func WritePoints(w io.Writer, points []tetratree.Point) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(points)); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBoxes parses a box-query input file, grounded on io/reader.cpp's
// read_queries(vector<Box>&, ...): a leading count followed by that many
// "x1 y1 z1 x2 y2 z2" lines, one endpoint pair per box.
func ReadBoxes(r io.Reader) ([]tetratree.Box, error) {
	pairs, err := readPointPairs(r)
	if err != nil {
		return nil, err
	}
	boxes := make([]tetratree.Box, len(pairs))
	for i, pair := range pairs {
		boxes[i] = tetratree.NewBox(pair[0], pair[1])
	}
	return boxes, nil
}

// WriteBoxes serializes boxes in the format ReadBoxes accepts.
func WriteBoxes(w io.Writer, boxes []tetratree.Box) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(boxes)); err != nil {
		return err
	}
	for _, b := range boxes {
		if _, err := fmt.Fprintf(bw, "%g %g %g %g %g %g\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Segment is a pair of endpoints for a line query.
type Segment struct {
	P1, P2 tetratree.Point
}

// ReadLines parses a line-query input file, sharing the box format per
// spec: a leading count followed by that many "x1 y1 z1 x2 y2 z2" lines,
// one endpoint pair per segment.
func ReadLines(r io.Reader) ([]Segment, error) {
	pairs, err := readPointPairs(r)
	if err != nil {
		return nil, err
	}
	segments := make([]Segment, len(pairs))
	for i, pair := range pairs {
		segments[i] = Segment{P1: pair[0], P2: pair[1]}
	}
	return segments, nil
}

// WriteLines serializes segments in the format ReadLines accepts.
func WriteLines(w io.Writer, segments []Segment) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(segments)); err != nil {
		return err
	}
	for _, s := range segments {
		if _, err := fmt.Fprintf(bw, "%g %g %g %g %g %g\n",
			s.P1.X, s.P1.Y, s.P1.Z, s.P2.X, s.P2.Y, s.P2.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func readPointPairs(r io.Reader) ([][2]tetratree.Point, error) {
	sc := newTokenScanner(r)
	count, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading record count: %w", err)
	}
	pairs := make([][2]tetratree.Point, 0, count)
	for {
		x1, err := sc.nextFloat()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ioformat: reading record %d: %w", len(pairs), err)
		}
		y1, e1 := sc.nextFloat()
		z1, e2 := sc.nextFloat()
		x2, e3 := sc.nextFloat()
		y2, e4 := sc.nextFloat()
		z2, e5 := sc.nextFloat()
		if err := firstErr(e1, e2, e3, e4, e5); err != nil {
			return nil, fmt.Errorf("ioformat: reading record %d: %w", len(pairs), err)
		}
		pairs = append(pairs, [2]tetratree.Point{
			tetratree.NewPoint(x1, y1, z1), tetratree.NewPoint(x2, y2, z2),
		})
	}
	return pairs, nil
}
