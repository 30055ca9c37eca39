// Package codec implements the integer-sequence compression stack:
// delta coding, zig-zag signed/unsigned mapping, and variable-byte
// encoding. They compose (delta -> zigzag -> vbyte) to compress
// monotone id sequences, but each stage is independently usable and
// independently round-trip-correct.
package codec

// DeltaEncode writes out[i] = data[i] - prev_i, where prev_0 = prev and
// prev_i = data[i-1] for i > 0. Subtraction wraps at 32 bits, matching
// C's unsigned overflow semantics; DeltaDecode is its exact inverse.
// out must have the same length as data.
func DeltaEncode(data []uint32, out []uint32, prev uint32) {
	p := prev
	for i, v := range data {
		out[i] = v - p
		p = v
	}
}

// DeltaDecode is the additive inverse of DeltaEncode: out[i] =
// data[i] + prev_i with the same prev_i recurrence. out must have the
// same length as data.
func DeltaDecode(data []uint32, out []uint32, prev uint32) {
	p := prev
	for i, d := range data {
		v := d + p
		out[i] = v
		p = v
	}
}
