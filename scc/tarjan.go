package scc

import "github.com/negedge/graphsampler/weight"

type graphOps[T any, O weight.Ops[T]] interface {
	NumNodes() int
	OutRange(u int) (lo, hi int)
	EdgeTarget(idx int) int
}

type nodeState struct {
	visited  bool
	onStack  bool
	index    int
	lowLink  int
}

type stackFrame struct {
	node           int
	parent         int
	next           int // next out-edge cursor, in [lo,hi]
	hi             int
	pathStackBase  int
	hasSelfLoop    bool
}

// Components returns the strongly connected components of g, one []int of
// node ids per component, in reverse topological order (a component that
// only other components depend on comes last). Singleton components (a
// lone node with no self-loop) are included.
//
// The DFS runs on an explicit frame stack rather than recursion: each frame
// keeps a cursor into its node's out-edge range so the loop can resume
// exactly where a simulated call left off, avoiding goroutine-stack growth
// on large, mostly-linear graphs.
func Components[T any, O weight.Ops[T]](g graphOps[T, O]) [][]int {
	n := g.NumNodes()
	states := make([]nodeState, n)
	pathStack := make([]int, 0, 32)
	callStack := make([]stackFrame, 0, 32)

	var components [][]int
	discIdx := 0

	pushNode := func(node, parent int) {
		lo, hi := g.OutRange(node)
		callStack = append(callStack, stackFrame{node: node, parent: parent, next: lo, hi: hi})
	}

	nextIdx := 0

	for {
		for nextIdx < n && states[nextIdx].visited {
			nextIdx++
		}
		if nextIdx >= n {
			break
		}
		pushNode(nextIdx, nextIdx)

		for len(callStack) > 0 {
			frame := &callStack[len(callStack)-1]
			v := frame.node

			if !states[v].visited {
				states[v].visited = true
				states[v].onStack = true
				states[v].index = discIdx
				states[v].lowLink = discIdx
				discIdx++
				frame.pathStackBase = len(pathStack)
				pathStack = append(pathStack, v)
			}

			recursed := false
			for frame.next < frame.hi {
				idx := frame.next
				frame.next++
				w := g.EdgeTarget(idx)
				if w == v {
					frame.hasSelfLoop = true
				}
				if !states[w].visited {
					pushNode(w, v)
					recursed = true
					break
				} else if states[w].onStack {
					if states[w].lowLink < states[v].lowLink {
						states[v].lowLink = states[w].lowLink
					}
				}
			}
			if recursed {
				continue
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := frame.parent
				if states[v].lowLink < states[parent].lowLink {
					states[parent].lowLink = states[v].lowLink
				}
			}

			if states[v].lowLink == states[v].index {
				component := make([]int, len(pathStack)-frame.pathStackBase)
				copy(component, pathStack[frame.pathStackBase:])
				for _, u := range component {
					states[u].onStack = false
				}
				pathStack = pathStack[:frame.pathStackBase]
				components = append(components, component)
			}
		}
	}

	return components
}

// HasNontrivialComponent reports whether any component returned by
// Components has more than one node or a self-loop: a necessary condition
// for the underlying graph to contain any cycle at all, negative or not.
func HasNontrivialComponent(components [][]int, selfLoop func(node int) bool) bool {
	for _, c := range components {
		if len(c) > 1 {
			return true
		}
		if len(c) == 1 && selfLoop(c[0]) {
			return true
		}
	}
	return false
}
