// Package lsb presents the in-memory bytes of scalar values in
// least-significant-first order, independent of the host machine's byte
// order.
//
// Host order is resolved per GOARCH at build time where the port is commonly
// known, with an init-time probe on other ports. Mixed-endian layouts are not
// supported.
package lsb

import "unsafe"

// Scalar is the set of fixed-size numeric types whose byte representation
// can be sequenced.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sequence is a view of a scalar's storage, indexed from the least
// significant byte (index 0) to the most significant byte (index Len()-1).
// The view aliases the scalar's memory rather than copying it, so Set writes
// through to the scalar in place.
type Sequence struct {
	raw      []byte
	reversed bool
}

// Of returns a Sequence over the storage of *v. The Sequence is valid only
// for as long as *v is.
func Of[T Scalar](v *T) Sequence {
	return Sequence{
		raw:      unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v)),
		reversed: hostBigEndian,
	}
}

// Len returns the number of bytes in the underlying scalar.
func (s Sequence) Len() int {
	return len(s.raw)
}

// At returns the i-th least significant byte of the underlying scalar.
func (s Sequence) At(i int) byte {
	return s.raw[s.index(i)]
}

// Set overwrites the i-th least significant byte of the underlying scalar.
func (s Sequence) Set(i int, b byte) {
	s.raw[s.index(i)] = b
}

func (s Sequence) index(i int) int {
	if s.reversed {
		return len(s.raw) - 1 - i
	}

	return i
}
