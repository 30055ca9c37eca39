// Package traversal implements reusable depth-first and breadth-first
// iteration contexts over a tinygraph.Graph. Both share the same
// construct/set_start/is_done/step/clear lifecycle and differ only in
// the frontier container (stack for DFS, queue for BFS).
package traversal

import (
	"github.com/tinygraph/tinygraph"
	"github.com/tinygraph/tinygraph/bitset"
	"github.com/tinygraph/tinygraph/container"
)

// DFS is a depth-first traversal context bound to a graph. The graph
// must not mutate for the lifetime of the context.
type DFS struct {
	graph   *tinygraph.Graph
	visited *bitset.Bitset
	stack   *container.Stack[uint32]
}

// NewDFS returns a DFS context over g, ready to be seeded with SetStart.
func NewDFS(g *tinygraph.Graph) *DFS {
	return &DFS{
		graph:   g,
		visited: bitset.New(uint(g.NumNodes())),
		stack:   container.NewStack[uint32](),
	}
}

// SetStart marks v visited and seeds the frontier with it.
func (d *DFS) SetStart(v uint32) bool {
	d.visited.Set(uint(v))
	d.stack.Push(v)
	return true
}

// IsDone reports whether the frontier is exhausted.
func (d *DFS) IsDone() bool {
	return d.stack.Size() == 0
}

// Step pops the next frontier node, pushes its unvisited neighbors,
// and reports the popped node.
func (d *DFS) Step() (v uint32, ok bool) {
	if d.IsDone() {
		return 0, false
	}
	v = d.stack.Pop()
	for _, n := range d.graph.Neighbors(v) {
		if !d.visited.Get(uint(n)) {
			d.visited.Set(uint(n))
			d.stack.Push(n)
		}
	}
	return v, true
}

// Clear resets the context so it can be reused with a new start node,
// without reallocating the visited bitset or frontier storage.
func (d *DFS) Clear() {
	d.visited.Clear()
	d.stack.Clear()
}

// BFS is a breadth-first traversal context bound to a graph. The graph
// must not mutate for the lifetime of the context.
type BFS struct {
	graph   *tinygraph.Graph
	visited *bitset.Bitset
	queue   *container.Queue[uint32]
}

// NewBFS returns a BFS context over g, ready to be seeded with SetStart.
func NewBFS(g *tinygraph.Graph) *BFS {
	return &BFS{
		graph:   g,
		visited: bitset.New(uint(g.NumNodes())),
		queue:   container.NewQueue[uint32](),
	}
}

// SetStart marks v visited and seeds the frontier with it.
func (b *BFS) SetStart(v uint32) bool {
	b.visited.Set(uint(v))
	b.queue.Push(v)
	return true
}

// IsDone reports whether the frontier is exhausted.
func (b *BFS) IsDone() bool {
	return b.queue.Size() == 0
}

// Step pops the next frontier node, enqueues its unvisited neighbors,
// and reports the popped node.
func (b *BFS) Step() (v uint32, ok bool) {
	if b.IsDone() {
		return 0, false
	}
	v = b.queue.Pop()
	for _, n := range b.graph.Neighbors(v) {
		if !b.visited.Get(uint(n)) {
			b.visited.Set(uint(n))
			b.queue.Push(n)
		}
	}
	return v, true
}

// Clear resets the context so it can be reused with a new start node,
// without reallocating the visited bitset or frontier storage.
func (b *BFS) Clear() {
	b.visited.Clear()
	b.queue.Clear()
}
