package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/phil-mansfield/tetratree"
)

// ReadMesh parses the .ts mesh format from r, grounded on io/reader.cpp's
// read_mesh: a header line "<num_vertices> <num_tetrahedra>", followed by
// that many "x y z field" vertex lines, followed by that many "i0 i1 i2 i3"
// tetrahedron lines of 0-based vertex indices.
//
// Unlike the reference reader, which stores indices 1-based internally and
// therefore adds 1 on read, this port's Mesh and Tetrahedron types are
// already 0-based (see mesh.go's doc comment), so the indices are read
// through unchanged.
func ReadMesh(r io.Reader) (*tetratree.Mesh, error) {
	sc := newTokenScanner(r)

	numVertices, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading vertex count: %w", err)
	}
	numTetrahedra, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading tetrahedron count: %w", err)
	}
	if numVertices <= 0 {
		return nil, fmt.Errorf("ioformat: mesh declares %d vertices", numVertices)
	}
	if numTetrahedra <= 0 {
		return nil, fmt.Errorf("ioformat: mesh declares %d tetrahedra", numTetrahedra)
	}

	vertices := make([]tetratree.Vertex, numVertices)
	for i := range vertices {
		x, err1 := sc.nextFloat()
		y, err2 := sc.nextFloat()
		z, err3 := sc.nextFloat()
		field, err4 := sc.nextFloat()
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("ioformat: reading vertex %d: %w", i, err)
		}
		vertices[i] = tetratree.NewVertex(x, y, z, field)
	}

	tetrahedra := make([]tetratree.Tetrahedron, numTetrahedra)
	for i := range tetrahedra {
		v0, err1 := sc.nextInt()
		v1, err2 := sc.nextInt()
		v2, err3 := sc.nextInt()
		v3, err4 := sc.nextInt()
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("ioformat: reading tetrahedron %d: %w", i, err)
		}
		tetrahedra[i] = tetratree.NewTetrahedron(v0, v1, v2, v3)
	}

	mesh, err := tetratree.NewMesh(vertices, tetrahedra)
	if err != nil {
		return nil, fmt.Errorf("ioformat: %w", err)
	}
	return mesh, nil
}

// WriteMesh serializes mesh to w in the .ts format ReadMesh accepts.
func WriteMesh(w io.Writer, mesh *tetratree.Mesh) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", mesh.NumVertices(), mesh.NumTetrahedra()); err != nil {
		return err
	}
	for i := 0; i < mesh.NumVertices(); i++ {
		v := mesh.Vertex(i)
		if _, err := fmt.Fprintf(bw, "%g %g %g %g\n", v.X, v.Y, v.Z, v.Field); err != nil {
			return err
		}
	}
	for i := 0; i < mesh.NumTetrahedra(); i++ {
		t := mesh.Tetrahedron(i)
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", t.TV(0), t.TV(1), t.TV(2), t.TV(3)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
