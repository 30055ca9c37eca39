package tinygraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyGraph(t *testing.T) {
	g := ConstructFromSortedEdges(nil, nil)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, uint32(0), g.NumNodes())
	assert.Equal(t, uint32(0), g.NumEdges())
}

func TestSortedEdgesDegreesAndTargets(t *testing.T) {
	g := ConstructFromSortedEdges([]uint32{0, 1}, []uint32{0, 2})
	assert.Equal(t, uint32(3), g.NumNodes())
	assert.Equal(t, uint32(2), g.NumEdges())
	assert.Equal(t, uint32(0), g.EdgeTarget(0))
	assert.Equal(t, uint32(2), g.EdgeTarget(1))
	assert.Equal(t, uint32(1), g.OutDegree(0))
	assert.Equal(t, uint32(1), g.OutDegree(1))
	assert.Equal(t, uint32(0), g.OutDegree(2))
}

func TestHasEdgeFromTo(t *testing.T) {
	g := ConstructFromSortedEdges(
		[]uint32{0, 0, 1, 2, 3},
		[]uint32{1, 2, 0, 3, 2},
	)
	assert.True(t, g.HasEdgeFromTo(0, 1))
	assert.True(t, g.HasEdgeFromTo(0, 2))
	assert.False(t, g.HasEdgeFromTo(1, 2))
}

func TestConstructFromUnsortedEdgesMatchesSorted(t *testing.T) {
	sorted := ConstructFromSortedEdges(
		[]uint32{0, 0, 1, 2, 3},
		[]uint32{1, 2, 0, 3, 2},
	)
	unsorted := ConstructFromUnsortedEdges(
		[]uint32{3, 0, 2, 1, 0},
		[]uint32{2, 2, 3, 0, 1},
	)
	assert.Equal(t, sorted.NumNodes(), unsorted.NumNodes())
	assert.Equal(t, sorted.NumEdges(), unsorted.NumEdges())
	for v := uint32(0); v < sorted.NumNodes(); v++ {
		assert.Equalf(t, sorted.OutDegree(v), unsorted.OutDegree(v), "node %d", v)
	}
}

func TestCopyReversedRoundTrips(t *testing.T) {
	g := ConstructFromSortedEdges(
		[]uint32{0, 0, 1, 2, 3},
		[]uint32{1, 2, 0, 3, 2},
	)
	back := g.CopyReversed().CopyReversed()
	assert.Equal(t, g.NumNodes(), back.NumNodes())
	for v := uint32(0); v < g.NumNodes(); v++ {
		want := map[uint32]int{}
		for _, n := range g.Neighbors(v) {
			want[n]++
		}
		got := map[uint32]int{}
		for _, n := range back.Neighbors(v) {
			got[n]++
		}
		assert.Equalf(t, want, got, "node %d neighbor multiset", v)
	}
}

func TestAPSPDisconnectedComponents(t *testing.T) {
	// edges: 0<->1, 2<->3, 4<->4 (self-loop)
	sources := []uint32{0, 1, 2, 3, 4}
	targets := []uint32{1, 0, 3, 2, 4}
	g := ConstructFromSortedEdges(sources, targets)
	weights := []uint8{1, 1, 1, 1, 1}
	results := g.APSP(weights)
	n := int(g.NumNodes())

	assert.Equal(t, uint8(255), results[0*n+2], "node 0 and 2 should be unreachable")
	assert.Equal(t, uint8(1), results[0*n+1], "distance between 0 and 1")
	for v := 0; v < n; v++ {
		assert.Equalf(t, uint8(0), results[v*n+v], "diagonal at %d", v)
	}
}

func TestPrintWritesShapeLine(t *testing.T) {
	var buf []byte
	w := &byteSliceWriter{&buf}
	g := ConstructFromSortedEdges([]uint32{0}, []uint32{0})
	g.Print(w)
	assert.NotEmpty(t, buf)
	assert.Contains(t, string(buf), "nodes=1, edges=1")
}

type byteSliceWriter struct {
	buf *[]byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
