package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phil-mansfield/tetratree/subdivision"
	"github.com/phil-mansfield/tetratree/tree"
)

// WriteTreeT serializes a T-flavor tree in BFS order, grounded on
// io/writer.h/.cpp's write_tree/write_node(Node_T*): "N" for an interior
// node, "L <t_count>" followed by a "  T <ids...>" line for a non-empty
// leaf, just "L 0" for an empty one. Every leaf's tetrahedra are written
// expanded (run compression is not preserved across a write/read cycle).
func WriteTreeT(w io.Writer, tr tree.TTreeBuilder) error {
	bw := bufio.NewWriter(w)
	sonNumber := tr.Decomposition().SonNumber()

	queue := []*tree.NodeT{tr.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if !n.IsLeaf() {
			if _, err := fmt.Fprintln(bw, "N"); err != nil {
				return err
			}
			for i := 0; i < sonNumber; i++ {
				queue = append(queue, n.Son(i))
			}
			continue
		}

		size := n.RealTArraySize()
		if _, err := fmt.Fprintf(bw, "L %d\n", size); err != nil {
			return err
		}
		if size > 0 {
			if err := writeIDLine(bw, "T", n.TArrayIterator()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteTreeV serializes a V-flavor tree, grounded on write_node(Node_V*):
// "L <v_count> <t_count>" followed by a "  V <ids...>" line (when v_count
// is nonzero) and/or a "  T <ids...>" line (when t_count is nonzero).
func WriteTreeV(w io.Writer, tr tree.VTreeBuilder) error {
	bw := bufio.NewWriter(w)
	sonNumber := tr.Decomposition().SonNumber()

	queue := []*tree.NodeV{tr.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if !n.IsLeaf() {
			if _, err := fmt.Fprintln(bw, "N"); err != nil {
				return err
			}
			for i := 0; i < sonNumber; i++ {
				queue = append(queue, n.Son(i))
			}
			continue
		}

		vsize := n.RealVArraySize()
		tsize := n.RealTArraySize()
		if _, err := fmt.Fprintf(bw, "L %d %d\n", vsize, tsize); err != nil {
			return err
		}
		if vsize > 0 {
			if err := writeIDLine(bw, "V", n.VArrayIterator()); err != nil {
				return err
			}
		}
		if tsize > 0 {
			if err := writeIDLine(bw, "T", n.TArrayIterator()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeIDLine(bw *bufio.Writer, tag string, it *tree.RunIterator) error {
	if _, err := fmt.Fprintf(bw, "  %s", tag); err != nil {
		return err
	}
	for ; !it.Done(); it.Advance() {
		if _, err := fmt.Fprintf(bw, " %d", it.Value()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(bw)
	return err
}

// ReadTreeT repopulates root in place from a .tree stream written by
// WriteTreeT, using decomposition only for its son count. Grounded on
// io/reader.h/.cpp's templated read_tree/read_node/read_leaf(Node_T*).
func ReadTreeT(r io.Reader, root *tree.NodeT, decomposition subdivision.Strategy) error {
	ls := newLineScanner(r)
	sonNumber := decomposition.SonNumber()

	queue := []*tree.NodeT{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		tokens, err := ls.nextLine()
		if err != nil {
			return fmt.Errorf("ioformat: reading tree node: %w", err)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("ioformat: empty tree node line")
		}

		switch tokens[0] {
		case "N":
			n.InitSons(sonNumber)
			for i := 0; i < sonNumber; i++ {
				son := &tree.NodeT{}
				n.SetSon(i, son)
				queue = append(queue, son)
			}
		case "L":
			count, err := tokenInt(tokens, 1)
			if err != nil {
				return fmt.Errorf("ioformat: reading leaf tetra count: %w", err)
			}
			if count > 0 {
				ids, err := ls.nextTaggedLine("T")
				if err != nil {
					return fmt.Errorf("ioformat: reading leaf tetra ids: %w", err)
				}
				for _, id := range ids {
					n.AddTetrahedron(id + 1)
				}
			}
		default:
			return fmt.Errorf("ioformat: unrecognized tree node tag %q", tokens[0])
		}
	}
	return nil
}

// ReadTreeV repopulates root in place from a .tree stream written by
// WriteTreeV. Grounded on read_leaf(Node_V*).
func ReadTreeV(r io.Reader, root *tree.NodeV, decomposition subdivision.Strategy) error {
	ls := newLineScanner(r)
	sonNumber := decomposition.SonNumber()

	queue := []*tree.NodeV{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		tokens, err := ls.nextLine()
		if err != nil {
			return fmt.Errorf("ioformat: reading tree node: %w", err)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("ioformat: empty tree node line")
		}

		switch tokens[0] {
		case "N":
			n.InitSons(sonNumber)
			for i := 0; i < sonNumber; i++ {
				son := &tree.NodeV{}
				n.SetSon(i, son)
				queue = append(queue, son)
			}
		case "L":
			vCount, err := tokenInt(tokens, 1)
			if err != nil {
				return fmt.Errorf("ioformat: reading leaf vertex count: %w", err)
			}
			tCount, err := tokenInt(tokens, 2)
			if err != nil {
				return fmt.Errorf("ioformat: reading leaf tetra count: %w", err)
			}
			if vCount > 0 {
				ids, err := ls.nextTaggedLine("V")
				if err != nil {
					return fmt.Errorf("ioformat: reading leaf vertex ids: %w", err)
				}
				for _, id := range ids {
					n.AddVertex(id + 1)
				}
			}
			if tCount > 0 {
				ids, err := ls.nextTaggedLine("T")
				if err != nil {
					return fmt.Errorf("ioformat: reading leaf tetra ids: %w", err)
				}
				for _, id := range ids {
					n.AddTetrahedron(id + 1)
				}
			}
		default:
			return fmt.Errorf("ioformat: unrecognized tree node tag %q", tokens[0])
		}
	}
	return nil
}

func tokenInt(tokens []string, i int) (int, error) {
	if i >= len(tokens) {
		return 0, fmt.Errorf("missing field %d", i)
	}
	return strconv.Atoi(tokens[i])
}

// lineScanner reads whitespace-tokenized lines, used by the .tree reader
// since, unlike the .ts/query formats, its grammar is line-structured (an
// "L <counts>" header line followed by its own "V"/"T" payload lines).
type lineScanner struct {
	sc *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &lineScanner{sc: sc}
}

func (ls *lineScanner) nextLine() ([]string, error) {
	if !ls.sc.Scan() {
		if err := ls.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return strings.Fields(ls.sc.Text()), nil
}

// nextTaggedLine reads the next line, requires its first token to equal
// tag, and returns the remaining tokens parsed as ints.
func (ls *lineScanner) nextTaggedLine(tag string) ([]int, error) {
	tokens, err := ls.nextLine()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 || tokens[0] != tag {
		return nil, fmt.Errorf("expected %q line, got %v", tag, tokens)
	}
	ids := make([]int, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		id, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
