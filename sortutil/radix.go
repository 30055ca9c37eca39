package sortutil

// KeyFunc extracts the uint32 sort key for item, given an opaque ctx.
type KeyFunc func(item uint32, ctx any) uint32

// RadixSort performs an LSD radix sort of data in place, four passes
// of 256-bucket counting sort over the bytes of key(item, ctx), least
// significant byte first. It allocates one auxiliary buffer the size
// of data. It returns false only if that allocation fails; on stock Go
// allocation failure is a fatal runtime error rather than a
// recoverable condition, so in practice this always returns true (see
// container's doc comment for the same discussion).
func RadixSort(data []uint32, key KeyFunc, ctx any) bool {
	n := len(data)
	if n < 2 {
		return true
	}
	aux := make([]uint32, n)
	src, dst := data, aux
	var count [257]int
	for pass := 0; pass < 4; pass++ {
		shift := uint(pass * 8)
		for i := range count {
			count[i] = 0
		}
		for _, v := range src {
			b := (key(v, ctx) >> shift) & 0xFF
			count[b+1]++
		}
		for i := 1; i < len(count); i++ {
			count[i] += count[i-1]
		}
		for _, v := range src {
			b := (key(v, ctx) >> shift) & 0xFF
			dst[count[b]] = v
			count[b]++
		}
		src, dst = dst, src
	}
	// Four passes (even) mean src now points at the buffer holding the
	// fully sorted data; copy it into data if that buffer isn't data
	// itself.
	if &src[0] != &data[0] {
		copy(data, src)
	}
	return true
}
