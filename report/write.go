package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// edgeSource is the subset of graph.Graph a report needs: enough to walk
// every edge in source-major order without depending on the full CSR type,
// so callers can feed a Snapshot-backed stand-in in tests.
type edgeSource[T any] interface {
	NumNodes() int
	OutRange(u int) (lo, hi int)
	EdgeTarget(idx int) int
	EdgeWeight(idx int) T
}

// WriteEdges writes every edge of g to w as `source,target,weight\n`, ASCII,
// in source-major order (g's CSR already stores edges sorted by source, so
// this is a single linear pass with no intermediate sort). No header line.
func WriteEdges[T any, O weight.Ops[T]](w io.Writer, g edgeSource[T]) error {
	bw := bufio.NewWriter(w)
	n := g.NumNodes()
	for u := 0; u < n; u++ {
		lo, hi := g.OutRange(u)
		for i := lo; i < hi; i++ {
			if _, err := fmt.Fprintf(bw, "%d,%d,%v\n", u, g.EdgeTarget(i), g.EdgeWeight(i)); err != nil {
				return fmt.Errorf("report.WriteEdges: %w", err)
			}
		}
	}
	return bw.Flush()
}

// WriteGraph is a convenience wrapper for *graph.Graph[T,O], the concrete
// type every CLI subcommand actually holds.
func WriteGraph[T any, O weight.Ops[T]](w io.Writer, g *graph.Graph[T, O]) error {
	return WriteEdges[T, O](w, g)
}
