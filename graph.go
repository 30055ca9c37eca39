// Package tinygraph implements a compact in-memory directed graph over
// dense 32-bit node identifiers, stored as a compressed-sparse-row (CSR)
// pair of offsets/targets arrays. It is the root of a small family of
// packages (bitset, heap, codec, zorder, ...) that together support
// topology queries and weighted shortest-path search over such graphs.
package tinygraph

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/tinygraph/tinygraph/sortutil"
)

// NodeSentinel is reserved and must never be used as an actual node id.
const NodeSentinel = math.MaxUint32

// Graph is an immutable CSR-encoded directed multigraph. The zero value
// is the empty graph (no nodes, no edges). Construction is batch: once
// built, a Graph is never mutated in place.
type Graph struct {
	offsets []uint32
	targets []uint32
}

// ConstructFromSortedEdges builds a graph from parallel edge arrays that
// are already sorted lexicographically by (source, target). It panics
// if sources is not non-decreasing, since that precondition violation
// signals a programmer error rather than a recoverable failure.
//
// The empty graph is returned for n == 0.
func ConstructFromSortedEdges(sources, targets []uint32) *Graph {
	n := len(sources)
	if n != len(targets) {
		panic("tinygraph: sources and targets length mismatch")
	}
	if n == 0 {
		return &Graph{}
	}

	maxSources := uint32(0)
	for i, s := range sources {
		if i > 0 && s < sources[i-1] {
			panic("tinygraph: sources are not non-decreasing")
		}
		if s > maxSources {
			maxSources = s
		}
	}

	maxNode := maxSources
	for _, t := range targets {
		if t > maxNode {
			maxNode = t
		}
	}
	if maxNode == NodeSentinel {
		panic("tinygraph: node id equals reserved sentinel")
	}

	numNodes := maxNode + 1
	g := &Graph{
		offsets: make([]uint32, numNodes+1),
		targets: append([]uint32(nil), targets...),
	}

	// offsets[v+1] = first index whose source != v, found by scanning
	// once across the (non-decreasing) sources array.
	idx := 0
	for v := uint32(0); v <= maxSources; v++ {
		for idx < n && sources[idx] == v {
			idx++
		}
		g.offsets[v+1] = uint32(idx)
	}
	for v := maxSources + 1; v <= numNodes; v++ {
		g.offsets[v] = uint32(n)
	}

	return g
}

// ConstructFromUnsortedEdges builds a graph from edges in arbitrary
// order by duplicating and sorting them by (source, target) before
// delegating to ConstructFromSortedEdges.
func ConstructFromUnsortedEdges(sources, targets []uint32) *Graph {
	n := len(sources)
	if n != len(targets) {
		panic("tinygraph: sources and targets length mismatch")
	}
	if n == 0 {
		return &Graph{}
	}

	// Sort a side-allocated index buffer by (source, target), then
	// materialize the sorted source/target arrays from it, rather than
	// sorting (source, target) pairs directly: this keeps the
	// comparator-quicksort primitive single-purpose over []uint32.
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}

	type edgeArrays struct{ sources, targets []uint32 }
	ctx := &edgeArrays{sources: sources, targets: targets}
	cmp := func(lhs, rhs uint32, ctx any) int {
		ea := ctx.(*edgeArrays)
		switch {
		case ea.sources[lhs] < ea.sources[rhs]:
			return -1
		case ea.sources[lhs] > ea.sources[rhs]:
			return 1
		case ea.targets[lhs] < ea.targets[rhs]:
			return -1
		case ea.targets[lhs] > ea.targets[rhs]:
			return 1
		default:
			return 0
		}
	}
	sortutil.Sort(idx, cmp, ctx)

	sortedSources := make([]uint32, n)
	sortedTargets := make([]uint32, n)
	for i, p := range idx {
		sortedSources[i] = sources[p]
		sortedTargets[i] = targets[p]
	}
	return ConstructFromSortedEdges(sortedSources, sortedTargets)
}

// Copy returns an independent deep copy of g.
func (g *Graph) Copy() *Graph {
	out := &Graph{
		offsets: append([]uint32(nil), g.offsets...),
		targets: append([]uint32(nil), g.targets...),
	}
	return out
}

// CopyReversed returns a new graph with every edge's direction flipped.
func (g *Graph) CopyReversed() *Graph {
	n := g.NumEdges()
	if n == 0 {
		return &Graph{}
	}
	revSources := make([]uint32, 0, n)
	revTargets := make([]uint32, 0, n)
	for v := uint32(0); v < g.NumNodes(); v++ {
		first, last := g.OutEdges(v)
		for e := first; e < last; e++ {
			revSources = append(revSources, g.targets[e])
			revTargets = append(revTargets, v)
		}
	}
	return ConstructFromUnsortedEdges(revSources, revTargets)
}

// IsEmpty reports whether g has no nodes.
func (g *Graph) IsEmpty() bool {
	return g.NumNodes() == 0
}

// NumNodes returns the number of nodes in g.
func (g *Graph) NumNodes() uint32 {
	if len(g.offsets) <= 1 {
		return 0 // tombstone slot only, or no slots at all
	}
	return uint32(len(g.offsets) - 1)
}

// NumEdges returns the number of edges in g.
func (g *Graph) NumEdges() uint32 {
	return uint32(len(g.targets))
}

// OutEdges returns the half-open edge-id range [first, last) of v's
// outgoing edges.
func (g *Graph) OutEdges(v uint32) (first, last uint32) {
	return g.offsets[v], g.offsets[v+1]
}

// EdgeTarget returns the target node of edge id e.
func (g *Graph) EdgeTarget(e uint32) uint32 {
	return g.targets[e]
}

// OutDegree returns the number of outgoing edges of v.
func (g *Graph) OutDegree(v uint32) uint32 {
	return g.offsets[v+1] - g.offsets[v]
}

// Neighbors returns the slice of target node ids reachable from v by a
// single outgoing edge. The slice aliases the graph's internal storage
// and must not be mutated.
func (g *Graph) Neighbors(v uint32) []uint32 {
	first, last := g.OutEdges(v)
	return g.targets[first:last]
}

// HasNode reports whether v is a valid node id in g.
func (g *Graph) HasNode(v uint32) bool {
	return v < g.NumNodes()
}

// HasEdge reports whether e is a valid edge id in g.
func (g *Graph) HasEdge(e uint32) bool {
	return e < g.NumEdges()
}

// HasEdgeFromTo reports whether there is an edge s->t. Both
// construction paths leave every node's neighbor slice sorted
// ascending, so this uses a binary search rather than a linear scan
// of s's neighbor slice.
func (g *Graph) HasEdgeFromTo(s, t uint32) bool {
	neighbors := g.Neighbors(s)
	i := sort.Search(len(neighbors), func(i int) bool { return neighbors[i] >= t })
	return i < len(neighbors) && neighbors[i] == t
}

const unreachable = 255

func saturatingAddU8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// APSP computes all-pairs shortest paths via Floyd-Warshall over
// saturating uint8 edge weights, one entry per edge in edge-id order.
// It returns an N*N row-major matrix; unreachable pairs hold 255.
//
// The diagonal is seeded from parallel self-loops like any other pair,
// then forced to 0 regardless of self-loop weight: this mirrors the
// original C implementation's order of operations and is preserved
// intentionally rather than "fixed".
func (g *Graph) APSP(weights []uint8) []uint8 {
	n := int(g.NumNodes())
	results := make([]uint8, n*n)
	for i := range results {
		results[i] = unreachable
	}

	for v := uint32(0); v < g.NumNodes(); v++ {
		first, last := g.OutEdges(v)
		for e := first; e < last; e++ {
			t := g.targets[e]
			idx := int(v)*n + int(t)
			if w := weights[e]; w < results[idx] {
				results[idx] = w
			}
		}
	}
	for v := 0; v < n; v++ {
		results[v*n+v] = 0
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := results[i*n+k]
			if ik == unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				via := saturatingAddU8(ik, results[k*n+j])
				if via < results[i*n+j] {
					results[i*n+j] = via
				}
			}
		}
	}
	return results
}

// SizeInBytes returns the approximate backing storage consumed by g,
// for diagnostics and capacity planning.
func (g *Graph) SizeInBytes() uint64 {
	const wordSize = 4
	return uint64(len(g.offsets)+len(g.targets)) * wordSize
}

// Print writes a human-readable diagnostic dump of g to w: its shape
// followed by one line per node listing its outgoing edges.
func (g *Graph) Print(w io.Writer) {
	fmt.Fprintf(w, "graph %p with nodes=%d, edges=%d of %d bytes total\n",
		g, g.NumNodes(), g.NumEdges(), g.SizeInBytes())
	for v := uint32(0); v < g.NumNodes(); v++ {
		fmt.Fprintf(w, "%d:", v)
		first, last := g.OutEdges(v)
		for e := first; e < last; e++ {
			fmt.Fprintf(w, " (%d -> %d)", v, g.targets[e])
		}
		fmt.Fprintln(w)
	}
}
