package sortutil

import (
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func ascending(lhs, rhs uint32, _ any) int {
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func TestSortMatchesStdlib(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Uint32()).Draw(t, "data")
		got := append([]uint32(nil), data...)
		Sort(got, ascending, nil)
		want := append([]uint32(nil), data...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
			}
		}
	})
}

func identityKey(item uint32, _ any) uint32 { return item }

func TestRadixSortMatchesStdlib(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Uint32()).Draw(t, "data")
		got := append([]uint32(nil), data...)
		if !RadixSort(got, identityKey, nil) {
			t.Fatalf("RadixSort reported failure")
		}
		want := append([]uint32(nil), data...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
			}
		}
		if len(got) != len(data) {
			t.Fatalf("RadixSort changed length: got %d want %d", len(got), len(data))
		}
	})
}

func TestRadixSortPreservesSizeOnEmptyAndSingle(t *testing.T) {
	empty := []uint32{}
	if !RadixSort(empty, identityKey, nil) || len(empty) != 0 {
		t.Fatalf("empty slice mishandled")
	}
	single := []uint32{42}
	if !RadixSort(single, identityKey, nil) || single[0] != 42 {
		t.Fatalf("single-element slice mishandled")
	}
}
