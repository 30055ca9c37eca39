package dijkstra

import (
	"github.com/tinygraph/tinygraph"
	"github.com/tinygraph/tinygraph/rng"
)

// dijkstragen builds a random weighted directed graph for property
// testing: numNodes nodes, a random edge between consecutive-ish node
// pairs to keep the graph connected-ish, plus extraEdges random
// additional edges, all weights in [1, maxWeight].
func dijkstragen(seed uint32, numNodes int, extraEdges int, maxWeight uint16) (*tinygraph.Graph, []uint16) {
	r := rng.NewFromSeed(seed)

	var sources, targets []uint32
	var weights []uint16

	for v := 1; v < numNodes; v++ {
		u := r.Bounded(uint32(v))
		sources = append(sources, u)
		targets = append(targets, uint32(v))
		weights = append(weights, uint16(1+r.Bounded(uint32(maxWeight))))
	}

	for i := 0; i < extraEdges; i++ {
		s := r.Bounded(uint32(numNodes))
		t := r.Bounded(uint32(numNodes))
		sources = append(sources, s)
		targets = append(targets, t)
		weights = append(weights, uint16(1+r.Bounded(uint32(maxWeight))))
	}

	g := tinygraph.ConstructFromUnsortedEdges(sources, targets)

	// ConstructFromUnsortedEdges reorders edges; weights must follow
	// the same permutation, so instead rebuild weights indexed by the
	// graph's own edge order using a lookup over (source, target).
	reordered := make([]uint16, g.NumEdges())
	used := make([]bool, len(sources))
	for v := uint32(0); v < g.NumNodes(); v++ {
		first, last := g.OutEdges(v)
		for e := first; e < last; e++ {
			t := g.EdgeTarget(e)
			for i := range sources {
				if !used[i] && sources[i] == v && targets[i] == t {
					reordered[e] = weights[i]
					used[i] = true
					break
				}
			}
		}
	}

	return g, reordered
}
