package ioformat

import (
	"bufio"
	"io"
	"strconv"
)

// tokenScanner reads whitespace-separated numeric tokens from a stream,
// independent of line breaks -- used by every ioformat reader whose wire
// format is "count, then records" (.ts meshes, point/box/line query
// files), mirroring how the reference's ifstream >> operator skips
// whitespace transparently.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &tokenScanner{sc: sc}
}

func (s *tokenScanner) nextToken() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func (s *tokenScanner) nextInt() (int, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (s *tokenScanner) nextFloat() (float64, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}
