package traversal

import (
	"reflect"
	"testing"

	"github.com/tinygraph/tinygraph"
)

func sampleGraph() *tinygraph.Graph {
	// sources=[0,0,1,2,3], targets=[1,2,0,3,2]
	return tinygraph.ConstructFromSortedEdges(
		[]uint32{0, 0, 1, 2, 3},
		[]uint32{1, 2, 0, 3, 2},
	)
}

func TestBFSVisitOrder(t *testing.T) {
	g := sampleGraph()
	bfs := NewBFS(g)
	bfs.SetStart(0)
	var got []uint32
	for !bfs.IsDone() {
		v, ok := bfs.Step()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []uint32{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BFS order = %v, want %v", got, want)
	}
}

func TestDFSVisitOrder(t *testing.T) {
	g := sampleGraph()
	dfs := NewDFS(g)
	dfs.SetStart(0)
	var got []uint32
	for !dfs.IsDone() {
		v, ok := dfs.Step()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []uint32{0, 2, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DFS order = %v, want %v", got, want)
	}
}

func TestClearAllowsReuse(t *testing.T) {
	g := sampleGraph()
	bfs := NewBFS(g)
	bfs.SetStart(0)
	for !bfs.IsDone() {
		bfs.Step()
	}
	bfs.Clear()
	bfs.SetStart(3)
	var got []uint32
	for !bfs.IsDone() {
		v, _ := bfs.Step()
		got = append(got, v)
	}
	want := []uint32{3, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BFS order after Clear/SetStart(3) = %v, want %v", got, want)
	}
}
