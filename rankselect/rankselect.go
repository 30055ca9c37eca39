// Package rankselect implements a succinct rank/select index over an
// immutable bitset: a 512-bit-block cumulative-popcount inventory plus
// samples of every 8192nd set bit's position, giving O(1) rank and
// near-O(1) select.
package rankselect

import (
	"github.com/tinygraph/tinygraph/bitops"
	"github.com/tinygraph/tinygraph/bitset"
)

const (
	blockBits  = 512
	sampleRate = 8192
)

// RankSelect indexes a bitset for constant-time rank and select
// queries. The underlying bitset must outlive the index and must not
// change: RankSelect borrows it, it does not copy it.
type RankSelect struct {
	data     []uint64
	ranks    []uint32 // cumulative popcount through block i
	samples  []uint32 // bit position of every 8192nd set bit
	popcount uint32
}

// Construct builds a rank/select index over b. b's size must be a
// positive multiple of 512 bits; this mirrors the library-wide
// requirement that the rank/select structure's backing storage be
// cache-line-block-aligned.
func Construct(b *bitset.Bitset) *RankSelect {
	if b.Size() == 0 || b.Size()%blockBits != 0 {
		panic("rankselect: bitset size must be a positive multiple of 512")
	}

	data := b.Data()
	numBlocks := len(data) / bitops.BlockWords
	rs := &RankSelect{
		data:  data,
		ranks: make([]uint32, numBlocks),
	}

	running := uint32(0)
	nextSampleAt := uint32(sampleRate)
	for blk := 0; blk < numBlocks; blk++ {
		p := data[blk*bitops.BlockWords : blk*bitops.BlockWords+bitops.BlockWords]
		count := uint32(bitops.Count512(p))

		for running+count >= nextSampleAt {
			offsetInBlock := uint(nextSampleAt - running - 1)
			pos := uint32(blk*blockBits) + uint32(bitops.Select512(p, offsetInBlock))
			rs.samples = append(rs.samples, pos)
			nextSampleAt += sampleRate
		}

		running += count
		rs.ranks[blk] = running
	}
	rs.popcount = running
	return rs
}

// Popcount returns the total number of set bits indexed.
func (rs *RankSelect) Popcount() uint32 {
	return rs.popcount
}

// Rank returns the number of 1-bits in the low n positions of the
// indexed bitset. n must be at most the bitset's size.
func (rs *RankSelect) Rank(n uint32) uint32 {
	p := n / blockBits
	if int(p) == len(rs.ranks) {
		return rs.popcount
	}
	r := uint(n % blockBits)
	block := rs.data[p*bitops.BlockWords : p*bitops.BlockWords+bitops.BlockWords]
	if p == 0 {
		return uint32(bitops.Rank512(block, r))
	}
	return rs.ranks[p-1] + uint32(bitops.Rank512(block, r))
}

// Select returns the zero-based position of the (n+1)-th set bit in
// the indexed bitset. n must be less than Popcount().
func (rs *RankSelect) Select(n uint32) uint32 {
	if n >= rs.popcount {
		panic("rankselect: Select: n >= Popcount()")
	}

	q := n / sampleRate
	startBlock := uint32(0)
	countBefore := uint32(0)
	if q > 0 {
		first := rs.samples[q-1]
		startBlock = first / blockBits
		if startBlock > 0 {
			countBefore = rs.ranks[startBlock-1]
		}
	}

	for blk := startBlock; ; blk++ {
		if rs.ranks[blk] > n {
			p := rs.data[blk*bitops.BlockWords : blk*bitops.BlockWords+bitops.BlockWords]
			return blk*blockBits + uint32(bitops.Select512(p, uint(n-countBefore)))
		}
		countBefore = rs.ranks[blk]
	}
}
