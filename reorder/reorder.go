// Package reorder sorts node ids by the Z-order (Morton) key of their
// geographic position, improving adjacency-list locality for graphs
// whose nodes carry spatial coordinates.
package reorder

import (
	"github.com/tinygraph/tinygraph/sortutil"
	"github.com/tinygraph/tinygraph/zorder"
)

type context struct {
	lngs, lats []uint16
}

func compare(lhs, rhs uint32, ctx any) int {
	c := ctx.(*context)
	lz := zorder.Encode32(c.lngs[lhs], c.lats[lhs])
	rz := zorder.Encode32(c.lngs[rhs], c.lats[rhs])
	switch {
	case lz < rz:
		return -1
	case lz > rz:
		return 1
	default:
		return 0
	}
}

// Reorder sorts nodes in place by the Z-order key of
// (lngs[nodes[i]], lats[nodes[i]]), grouping spatially nearby nodes
// together. lngs and lats are indexed by node id, not by position in
// nodes. It always succeeds; the bool return exists for parity with
// the rest of the library's mutating operations.
func Reorder(nodes []uint32, lngs, lats []uint16) bool {
	ctx := &context{lngs: lngs, lats: lats}
	sortutil.Sort(nodes, compare, ctx)
	return true
}
