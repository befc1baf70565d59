// Package nbyteint provides integer types that occupy an exact number of
// bytes in a byte order fixed at the type level, for binary formats whose
// field widths (3-byte, 5-byte, 6-byte counters and the like) do not line up
// with native integer sizes.
package nbyteint

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/davejbax/go-nbyteint/internal/lsb"
	"github.com/davejbax/go-nbyteint/internal/twoscomp"
	"golang.org/x/exp/constraints"
)

// Buffer is the set of storage arrays an [Int] can use. The array length is
// the field's width in bytes.
type Buffer interface {
	[1]byte | [2]byte | [3]byte | [4]byte | [5]byte | [6]byte | [7]byte | [8]byte
}

// Int is an integer value occupying exactly len(A) bytes, stored in byte
// order O and converted to and from the native integer type T. It holds no
// state besides its storage array, so copying an Int copies the value in
// full, and the zero value holds zero.
//
// Assigning a value whose native representation does not fit in len(A) bytes
// silently keeps only the least significant len(A) bytes of its
// two's-complement (signed) or plain binary (unsigned) pattern. This
// truncate-on-narrow behaviour is the deliberate contract of a fixed-capacity
// field, not an error condition. Reading a signed field back sign-extends
// from the top bit of the most significant stored byte, so narrow negative
// values survive the round trip.
//
// The storage array must not be wider than T. Go cannot express that
// relationship between two type parameters, so it is checked on first use:
// violating it is a programming error and panics.
type Int[T constraints.Integer, A Buffer, O ByteOrder] struct {
	data A
}

// New returns an [Int] holding value, truncated to len(A) bytes if the value
// does not fit.
func New[T constraints.Integer, A Buffer, O ByteOrder](value T) Int[T, A, O] {
	var field Int[T, A, O]
	field.Set(value)

	return field
}

// Set overwrites the stored bytes with the len(A) least significant bytes of
// value's two's-complement (signed) or plain binary (unsigned) pattern,
// discarding any bytes above the field's width.
func (i *Int[T, A, O]) Set(value T) {
	i.checkWidth()

	pattern := nativePattern(value)

	seq := lsb.Of(&pattern)
	for k := 0; k < len(i.data); k++ {
		i.data[i.lsbIndex(k)] = seq.At(k)
	}
}

// Value converts the stored bytes back to T. When T is signed, the result is
// sign-extended from the top bit of the most significant stored byte -- not
// from T's own sign bit, since the field may be narrower than T.
func (i Int[T, A, O]) Value() T {
	i.checkWidth()

	var pattern uint64
	if isSigned[T]() && i.data[i.lsbIndex(len(i.data)-1)]&0x80 != 0 {
		// Pre-fill with ones so that the bytes above the field's width
		// carry the sign.
		pattern = ^uint64(0)
	}

	seq := lsb.Of(&pattern)
	for k := 0; k < len(i.data); k++ {
		seq.Set(k, i.data[i.lsbIndex(k)])
	}

	if isSigned[T]() {
		return T(twoscomp.Decode(pattern))
	}

	return T(pattern)
}

// Bytes returns a copy of the stored bytes in their physical order: most
// significant byte first for [Big] fields, least significant first for
// [Little] fields. This is the exact on-the-wire layout of the field.
func (i Int[T, A, O]) Bytes() A {
	return i.data
}

// SetBytes overwrites the stored bytes with raw, which must be in the same
// physical order that [Int.Bytes] returns.
func (i *Int[T, A, O]) SetBytes(raw A) {
	i.data = raw
}

// String implements [fmt.Stringer] (and the String requirement of
// struc.Custom) by formatting the field's logical value in decimal.
func (i Int[T, A, O]) String() string {
	return fmt.Sprintf("%d", i.Value())
}

// lsbIndex maps a least-significant-first position to its physical index in
// the storage array, according to the field's configured byte order.
func (i Int[T, A, O]) lsbIndex(k int) int {
	var order O
	if order.byteOrder() == binary.BigEndian {
		return len(i.data) - 1 - k
	}

	return k
}

func (i Int[T, A, O]) checkWidth() {
	var zero T
	if uintptr(len(i.data)) > unsafe.Sizeof(zero) {
		panic(fmt.Sprintf("nbyteint: %d-byte storage is wider than native type %T", len(i.data), zero))
	}
}

// nativePattern widens value into a 64-bit carrier: two's-complement encoding
// of the sign-extended value for signed types, zero-extension for unsigned
// ones. Truncating the carrier to any narrower width yields the same bytes as
// encoding at that width directly, so the carrier being wider than T is
// unobservable.
func nativePattern[T constraints.Integer](value T) uint64 {
	if isSigned[T]() {
		return twoscomp.Encode(int64(value))
	}

	return uint64(value)
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < 0
}
