package decider

import "github.com/negedge/graphsampler/weight"

// distArray is a per-node distance array reused across decider runs. It
// tracks which nodes were touched this run so Reset can clear only those
// cells (O(seen)) instead of the whole array (O(n)), except when more than
// a quarter of all nodes were touched, in which case a full wipe is cheaper
// than the bookkeeping of a scattered one.
type distArray[T any, O weight.Ops[T]] struct {
	ops   O
	dist  []T
	seen  []int
	onArr []bool // true if node index currently appears in seen
}

func newDistArray[T any, O weight.Ops[T]](n int) *distArray[T, O] {
	var ops O
	d := &distArray[T, O]{
		ops:   ops,
		dist:  make([]T, n),
		onArr: make([]bool, n),
	}
	for i := range d.dist {
		d.dist[i] = ops.MaxVal()
	}
	return d
}

// Get returns node u's current tentative distance (MaxVal if untouched).
func (d *distArray[T, O]) Get(u int) T { return d.dist[u] }

// Set records a new tentative distance for u, marking it seen the first
// time it is touched this run.
func (d *distArray[T, O]) Set(u int, v T) {
	if !d.onArr[u] {
		d.onArr[u] = true
		d.seen = append(d.seen, u)
	}
	d.dist[u] = v
}

// Touched returns the distinct nodes touched since the last Reset.
func (d *distArray[T, O]) Touched() []int { return d.seen }

// Reset clears every touched cell back to MaxVal, using a full wipe instead
// of a scattered one when more than n/4 nodes were touched.
func (d *distArray[T, O]) Reset() {
	n := len(d.dist)
	if len(d.seen) > n/4 {
		for i := range d.dist {
			d.dist[i] = d.ops.MaxVal()
			d.onArr[i] = false
		}
	} else {
		for _, u := range d.seen {
			d.dist[u] = d.ops.MaxVal()
			d.onArr[u] = false
		}
	}
	d.seen = d.seen[:0]
}
