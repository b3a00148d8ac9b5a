package gen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// FromFile reads a graph topology from r: whitespace-tokenized, lines
// starting with `%` are comments, the first non-comment line is a header
// with at least three space-separated fields whose 2nd and 3rd are n and m,
// and the following m lines each hold a 1-indexed `src dst` pair (converted
// to 0-indexed here). When undirected is true, each parsed edge is emitted
// in both directions.
//
// This package owns loading a topology for the `file` CLI source, distinct
// from the `report` package's edge-list serialization of an already-built
// graph.
func FromFile[T any, O weight.Ops[T]](r io.Reader, undirected bool) (n int, edges []graph.InputEdge[T], err error) {
	var ops O
	zero := ops.Zero()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		header = line
		break
	}
	if header == "" {
		return 0, nil, fmt.Errorf("gen.FromFile: no header line: %w", ErrMalformedInput)
	}

	fields := strings.Fields(header)
	if len(fields) < 3 {
		return 0, nil, fmt.Errorf("gen.FromFile: header %q has fewer than 3 fields: %w", header, ErrMalformedInput)
	}
	n, err = strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return 0, nil, fmt.Errorf("gen.FromFile: header n field %q: %w", fields[1], ErrMalformedInput)
	}
	m, err := strconv.Atoi(fields[2])
	if err != nil || m < 0 {
		return 0, nil, fmt.Errorf("gen.FromFile: header m field %q: %w", fields[2], ErrMalformedInput)
	}

	edges = make([]graph.InputEdge[T], 0, m)
	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			return 0, nil, fmt.Errorf("gen.FromFile: expected %d edge lines, got %d: %w", m, i, ErrMalformedInput)
		}
		line := strings.TrimSpace(scanner.Text())
		for line == "" || strings.HasPrefix(line, "%") {
			if !scanner.Scan() {
				return 0, nil, fmt.Errorf("gen.FromFile: expected %d edge lines, got %d: %w", m, i, ErrMalformedInput)
			}
			line = strings.TrimSpace(scanner.Text())
		}
		tok := strings.Fields(line)
		if len(tok) < 2 {
			return 0, nil, fmt.Errorf("gen.FromFile: edge line %q: %w", line, ErrMalformedInput)
		}
		src, errSrc := strconv.Atoi(tok[0])
		dst, errDst := strconv.Atoi(tok[1])
		if errSrc != nil || errDst != nil || src < 1 || src > n || dst < 1 || dst > n {
			return 0, nil, fmt.Errorf("gen.FromFile: edge line %q out of range for n=%d: %w", line, n, ErrMalformedInput)
		}
		u, v := src-1, dst-1
		edges = append(edges, graph.InputEdge[T]{Source: u, Target: v, Weight: zero})
		if undirected {
			edges = append(edges, graph.InputEdge[T]{Source: v, Target: u, Weight: zero})
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("gen.FromFile: %w", err)
	}
	return n, edges, nil
}
