// Package twoscomp converts between signed integers and their
// two's-complement bit patterns. The conversion is performed with unsigned
// arithmetic only, so the bit pattern produced is the two's-complement one by
// construction rather than by reinterpreting whatever representation the
// native signed type happens to use.
package twoscomp

// Encode returns the two's-complement bit pattern of v in an unsigned
// carrier. Non-negative values map to themselves; a negative value maps to
// the bitwise complement of its magnitude, plus one.
func Encode(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}

	// The magnitude is computed as -(v+1) + 1 so that it stays in range
	// even at MinInt64, where -v would overflow.
	magnitude := uint64(-(v + 1)) + 1

	return ^magnitude + 1
}

// Decode interprets p as a two's-complement bit pattern and returns the
// signed value it represents. Decode is the exact inverse of [Encode] over
// the full 64-bit domain.
func Decode(p uint64) int64 {
	if p&(1<<63) == 0 {
		return int64(p)
	}

	// Negative: recover the magnitude, then negate without leaving the
	// representable range at MinInt64.
	magnitude := ^p + 1

	return -int64(magnitude-1) - 1
}
