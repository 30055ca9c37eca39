// Package sortutil implements a comparator-based quicksort, used by CSR
// construction (sorting edges) and by reorder (sorting by Z-order key),
// and a four-pass LSD radix sort.
package sortutil

// insertionSortThreshold: below this size, quicksort falls back to
// insertion sort, which has lower constant overhead on small slices.
const insertionSortThreshold = 32

// Comparator compares lhs and rhs, given an opaque ctx, and returns a
// value <0, 0, or >0 the way C's qsort comparators do.
type Comparator func(lhs, rhs uint32, ctx any) int

// Sort sorts data in place using cmp and ctx. It uses insertion sort
// below insertionSortThreshold and a median-of-three quicksort above it.
func Sort(data []uint32, cmp Comparator, ctx any) {
	quicksort(data, 0, len(data)-1, cmp, ctx)
}

func quicksort(data []uint32, lo, hi int, cmp Comparator, ctx any) {
	for hi-lo+1 > insertionSortThreshold {
		p := partition(data, lo, hi, cmp, ctx)
		// Recurse into the smaller partition, loop over the larger one,
		// bounding stack depth to O(log n).
		if p-lo < hi-p {
			quicksort(data, lo, p, cmp, ctx)
			lo = p + 1
		} else {
			quicksort(data, p+1, hi, cmp, ctx)
			hi = p
		}
	}
	insertionSort(data, lo, hi, cmp, ctx)
}

func partition(data []uint32, lo, hi int, cmp Comparator, ctx any) int {
	mid := lo + (hi-lo)/2
	medianOfThree(data, lo, mid, hi, cmp, ctx)
	pivot := data[mid]
	i, j := lo-1, hi+1
	for {
		for {
			i++
			if cmp(data[i], pivot, ctx) >= 0 {
				break
			}
		}
		for {
			j--
			if cmp(data[j], pivot, ctx) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}

func medianOfThree(data []uint32, lo, mid, hi int, cmp Comparator, ctx any) {
	if cmp(data[mid], data[lo], ctx) < 0 {
		data[mid], data[lo] = data[lo], data[mid]
	}
	if cmp(data[hi], data[lo], ctx) < 0 {
		data[hi], data[lo] = data[lo], data[hi]
	}
	if cmp(data[hi], data[mid], ctx) < 0 {
		data[hi], data[mid] = data[mid], data[hi]
	}
}

func insertionSort(data []uint32, lo, hi int, cmp Comparator, ctx any) {
	for i := lo + 1; i <= hi; i++ {
		v := data[i]
		j := i - 1
		for j >= lo && cmp(data[j], v, ctx) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = v
	}
}
