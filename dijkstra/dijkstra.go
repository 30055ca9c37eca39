// Package dijkstra implements single-source shortest-path search over a
// tinygraph.Graph with non-negative uint16 edge weights, using a binary
// min-heap with lazy deletion. A Context caches search state across
// repeated queries sharing the same source node.
package dijkstra

import (
	"log"
	"math"

	"github.com/tinygraph/tinygraph"
	"github.com/tinygraph/tinygraph/bitset"
	"github.com/tinygraph/tinygraph/heap"
)

const unreached = math.MaxUint32

// Context is a reusable single-source shortest-path search cache bound
// to a graph and a weight vector. Both must not change for the
// lifetime of the Context.
type Context struct {
	graph   *tinygraph.Graph
	weights []uint16

	s, t uint32

	dist   []uint32
	parent []uint32
	seen   *bitset.Bitset
	heap   *heap.Heap

	path      []uint32
	pathValid bool
}

// Construct returns a search context for graph with edge weights
// weights, indexed by edge id. weights must have length
// graph.NumEdges() and every weight must be non-negative (guaranteed
// by the uint16 type) and the graph must contain no zero-weighted
// loops relied upon for distinguishing distances.
func Construct(graph *tinygraph.Graph, weights []uint16) *Context {
	return &Context{
		graph:   graph,
		weights: weights,
		s:       unreached,
		t:       unreached,
	}
}

func (c *Context) resetForSource(s uint32) {
	n := c.graph.NumNodes()
	log.Printf("dijkstra: resetting search frontier for new source %d over %d nodes", s, n)
	c.dist = make([]uint32, n)
	c.parent = make([]uint32, n)
	for v := uint32(0); v < n; v++ {
		c.dist[v] = unreached
		c.parent[v] = v
	}
	c.seen = bitset.New(uint(n))
	c.heap = heap.New()
	c.pathValid = false

	c.dist[s] = 0
	c.heap.Push(s, 0)
	c.s = s
}

func saturatingAddU32(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	if sum > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(sum)
}

// ShortestPath searches for a path from s to t, returning true if one
// exists. On success, GetDistance and GetPath become valid until the
// next call to ShortestPath with a different (s, t).
func (c *Context) ShortestPath(s, t uint32) bool {
	if s == t {
		if s != c.s {
			// Keep the cached search state in step with the recorded
			// source, so a later query from s does not reuse another
			// source's frontier.
			c.resetForSource(s)
		}
		c.t = t
		c.pathValid = true
		c.path = c.path[:0]
		return true
	}

	if s != c.s {
		c.resetForSource(s)
	} else {
		c.pathValid = false
	}
	c.t = t

	if c.seen.Get(uint(t)) {
		return true
	}

	for !c.heap.Empty() {
		entry := c.heap.Pop()
		u := entry.Value
		if c.seen.Get(uint(u)) {
			continue
		}
		c.seen.Set(uint(u))
		du := c.dist[u]

		first, last := c.graph.OutEdges(u)
		for e := first; e < last; e++ {
			v := c.graph.EdgeTarget(e)
			w := uint32(c.weights[e])
			alt := saturatingAddU32(du, w)
			if alt < c.dist[v] {
				c.dist[v] = alt
				c.parent[v] = u
				c.heap.Push(v, alt)
			}
		}

		if u == t {
			return true
		}
		if du == unreached {
			// Distances have saturated: further progress can no longer
			// be distinguished from any other path.
			c.s, c.t = unreached, unreached
			return false
		}
	}

	return false
}

// GetDistance returns the shortest distance found by the most recent
// successful ShortestPath call.
func (c *Context) GetDistance() uint32 {
	if c.s == c.t {
		return 0
	}
	return c.dist[c.t]
}

// GetPath returns the node sequence of the most recent successful
// ShortestPath call, starting at s and ending at t. For s == t the
// path is empty. The returned slice is cached and reused; the caller
// must not retain it across the next ShortestPath call.
func (c *Context) GetPath() ([]uint32, bool) {
	if c.s == c.t {
		return nil, true
	}
	if c.pathValid {
		return c.path, true
	}

	var walk []uint32
	for p := c.t; ; {
		walk = append(walk, p)
		if c.parent[p] == p {
			break
		}
		p = c.parent[p]
	}
	if walk[len(walk)-1] != c.s {
		return nil, false
	}
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}
	c.path = walk
	c.pathValid = true
	return c.path, true
}
