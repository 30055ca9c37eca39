// Package spatialindex implements a bounding-box range index over node
// positions, keyed by Z-order (Morton) value: nodes are sorted by
// z-value and range queries walk the sorted order, using BIGMIN to
// skip runs that leave the query box.
//
// BIGMIN (also known as LITMAX/BIGMIN, nextJumpIn, or GetNextZAddress)
// goes back to H. Tropf and H. Herzog, "Multidimensional Range Search
// in Dynamically Balanced Trees" (1981).
package spatialindex

import (
	"sort"

	"github.com/tinygraph/tinygraph/zorder"
)

// outsideSkipThreshold is the number of consecutive out-of-box entries
// tolerated before paying for a BIGMIN jump; below it a linear scan is
// cheaper than the jump's binary search.
const outsideSkipThreshold = 64

// Index is an immutable Z-order spatial index over a fixed set of
// nodes with (lng, lat) coordinates, sorted ascending by Z-order key.
type Index struct {
	nodes []uint32
	zvals []uint64
	lngs  []uint32
	lats  []uint32
}

type item struct {
	node     uint32
	zval     uint64
	lng, lat uint32
}

// Construct builds an Index over nodes with coordinates lngs/lats,
// positionally aligned: lngs[i]/lats[i] is the position of nodes[i].
func Construct(nodes []uint32, lngs, lats []uint32) *Index {
	n := len(nodes)
	items := make([]item, n)
	for i := range items {
		items[i] = item{
			node: nodes[i],
			zval: zorder.Encode64(lngs[i], lats[i]),
			lng:  lngs[i],
			lat:  lats[i],
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].zval < items[j].zval })

	idx := &Index{
		nodes: make([]uint32, n),
		zvals: make([]uint64, n),
		lngs:  make([]uint32, n),
		lats:  make([]uint32, n),
	}
	for i, it := range items {
		idx.nodes[i] = it.node
		idx.zvals[i] = it.zval
		idx.lngs[i] = it.lng
		idx.lats[i] = it.lat
	}
	return idx
}

// SearchOptions bounds a range search to a rectangular box, capping
// the number of results returned at N.
type SearchOptions struct {
	LngMin, LatMin, LngMax, LatMax uint32
	N                              uint32
}

// bsearchLT returns the index of the first entry in zvals[first:last]
// with value >= target (i.e. the first entry not "less than" target).
func (idx *Index) bsearchLT(first, last int, target uint64) int {
	return first + sort.Search(last-first, func(i int) bool { return idx.zvals[first+i] >= target })
}

// bsearchLTE returns the index of the first entry in zvals[first:last]
// with value > target.
func (idx *Index) bsearchLTE(first, last int, target uint64) int {
	return first + sort.Search(last-first, func(i int) bool { return idx.zvals[first+i] > target })
}

// Search returns the node ids whose position lies within opts's
// bounding box, capped at opts.N results, and whether at least one
// match was found.
func (idx *Index) Search(opts SearchOptions) ([]uint32, bool) {
	var results []uint32
	if opts.N == 0 {
		return results, false
	}

	n := len(idx.zvals)
	zmin := zorder.Encode64(opts.LngMin, opts.LatMin)
	zmax := zorder.Encode64(opts.LngMax, opts.LatMax)

	first := idx.bsearchLT(0, n, zmin)
	last := idx.bsearchLTE(first, n, zmax)
	if first == last {
		return results, false
	}

	outside := 0
	it := first
	for it != last {
		if uint32(len(results)) >= opts.N {
			break
		}

		lng, lat := idx.lngs[it], idx.lats[it]
		if lng >= opts.LngMin && lng <= opts.LngMax && lat >= opts.LatMin && lat <= opts.LatMax {
			results = append(results, idx.nodes[it])
			it++
			outside = 0
			continue
		}

		outside++
		zval := idx.zvals[it]
		if outside > outsideSkipThreshold && zval < zmax {
			bigmin := bigMin(zval, zmin, zmax)
			it = idx.bsearchLT(it, last, bigmin)
		} else {
			it++
		}
	}

	return results, len(results) > 0
}

// bigMin computes, given a z-value zval outside the box implied by
// [zmin, zmax] (zmin <= zval < zmax), the smallest z-value strictly
// greater than zval that again lies within the box. It processes bits
// from the most significant down, tracking the common prefix between
// zmin and zmax via a load-mask/load-ones pair.
func bigMin(zval, zmin, zmax uint64) uint64 {
	bigmin := zmin

	loadMask := uint64(0x5555555555555555)
	loadOnes := uint64(0x2aaaaaaaaaaaaaaa)
	mask := uint64(0x8000000000000000)

	for mask != 0 {
		bzval := zval & mask
		bzmin := zmin & mask
		bzmax := zmax & mask

		switch {
		case bzval == 0 && bzmin == 0 && bzmax == 0:
			// all zero at this bit: descend with no change.
		case bzval == 0 && bzmin == 0 && bzmax != 0:
			bigmin = (zmin & loadMask) | mask
			zmax = (zmax & loadMask) | loadOnes
		case bzval == 0 && bzmin != 0 && bzmax != 0:
			return zmin
		case bzval != 0 && bzmin == 0 && bzmax == 0:
			return bigmin
		case bzval != 0 && bzmin == 0 && bzmax != 0:
			zmin = (zmin & loadMask) | mask
		case bzval != 0 && bzmin != 0 && bzmax != 0:
			// all one at this bit: descend with no change.
		}

		mask >>= 1
		loadOnes >>= 1
		loadMask >>= 1
		loadMask |= 0x8000000000000000
	}

	return bigmin
}
