// Package bitops provides constant-time bit primitives on 64-bit words
// and their 512-bit (eight-word, one cache line) block variants. It is
// the leaf-most layer of the library: bitset, rankselect, and zorder
// all build on it.
package bitops

import (
	"math/bits"

	"github.com/tinygraph/tinygraph/internal/cpufeature"
)

// hasBMI2 is resolved once at startup; both the PDEP-trick and the
// linear-scan select implementations are exposed regardless
// (SelectPDEP, SelectFallback), and must agree bit-for-bit.
var hasBMI2 = cpufeature.HasBMI2()

// Popcount returns the number of set bits in v.
func Popcount(v uint64) int {
	return bits.OnesCount64(v)
}

// Rank returns the number of 1-bits in the low n positions of v.
// Rank(v, 0) == 0 and Rank(v, 64) == Popcount(v).
func Rank(v uint64, n uint) int {
	if n == 0 {
		return 0
	}
	if n >= 64 {
		return bits.OnesCount64(v)
	}
	mask := uint64(1)<<n - 1
	return bits.OnesCount64(v & mask)
}

// Select returns the zero-based position of the (n+1)-th set bit in v.
// n must be less than Popcount(v). Select uses the PDEP-based trick
// when the host supports BMI2 and falls back to a linear scan
// otherwise; both paths are bit-identical.
func Select(v uint64, n uint) uint {
	if hasBMI2 {
		return SelectPDEP(v, n)
	}
	return SelectFallback(v, n)
}

// SelectFallback is the portable linear-scan implementation of Select,
// always available regardless of host CPU features.
func SelectFallback(v uint64, n uint) uint {
	for i := uint(0); i < n; i++ {
		v &= v - 1 // clear lowest set bit
	}
	return uint(bits.TrailingZeros64(v &^ (v - 1)))
}

// SelectPDEP implements select(v, n) = trailing_zeros(pdep(1<<n, v)),
// the classic BMI2 formula, always available regardless of host CPU
// features. Go exposes no PDEP intrinsic, so pdep64 below is a
// software deposit that walks every set bit of v once.
func SelectPDEP(v uint64, n uint) uint {
	deposited := pdep64(uint64(1)<<n, v)
	return uint(bits.TrailingZeros64(deposited))
}

// pdep64 is a portable parallel-bit-deposit: it scatters the low
// popcount(mask) bits of src into the positions where mask has a 1
// bit, in increasing order of bit position.
func pdep64(src, mask uint64) uint64 {
	var result uint64
	for bb := uint64(1); mask != 0; bb <<= 1 {
		lsb := mask & -mask
		if src&bb != 0 {
			result |= lsb
		}
		mask &^= lsb
	}
	return result
}

// LeadingZeros returns the number of leading zero bits in v, 64 if v is 0.
func LeadingZeros(v uint64) int {
	return bits.LeadingZeros64(v)
}

// TrailingZeros returns the number of trailing zero bits in v, 64 if v is 0.
func TrailingZeros(v uint64) int {
	return bits.TrailingZeros64(v)
}

// BlockWords is the number of 64-bit words in one 512-bit cache-line block.
const BlockWords = 8

// Count512 sums the popcounts of the eight words at p[0:8]. The sum is
// accumulated into four independent running totals so the four adds
// are independent of each other, avoiding a false dependency chain on
// a single accumulator register.
func Count512(p []uint64) int {
	_ = p[7] // bounds-check hint, single check instead of eight
	var a, b, c, d int
	a = bits.OnesCount64(p[0]) + bits.OnesCount64(p[4])
	b = bits.OnesCount64(p[1]) + bits.OnesCount64(p[5])
	c = bits.OnesCount64(p[2]) + bits.OnesCount64(p[6])
	d = bits.OnesCount64(p[3]) + bits.OnesCount64(p[7])
	return a + b + c + d
}

// Rank512 returns the number of 1-bits in the low n positions (n <= 512)
// of the 512-bit block at p[0:8].
func Rank512(p []uint64, n uint) int {
	_ = p[7]
	full := n / 64
	rem := n % 64
	total := 0
	for i := uint(0); i < full; i++ {
		total += bits.OnesCount64(p[i])
	}
	if rem > 0 {
		total += Rank(p[full], rem)
	}
	return total
}

// Select512 returns the position, within the 512-bit block at p[0:8],
// of the (n+1)-th set bit. n must be less than Count512(p).
func Select512(p []uint64, n uint) uint {
	_ = p[7]
	accumulated := uint(0)
	for i := 0; i < BlockWords; i++ {
		c := uint(bits.OnesCount64(p[i]))
		if accumulated+c > n {
			return uint(i)*64 + Select(p[i], n-accumulated)
		}
		accumulated += c
	}
	panic("bitops: Select512: n >= Count512(p)")
}
