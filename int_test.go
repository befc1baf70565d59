package nbyteint_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/davejbax/go-nbyteint"
	"github.com/stretchr/testify/assert"
)

func TestSigned3ByteFields(t *testing.T) {
	cases := []struct {
		value          int32
		expectedLittle [3]byte
		expectedBig    [3]byte
		expectedValue  int32
	}{
		{0, [3]byte{0x00, 0x00, 0x00}, [3]byte{0x00, 0x00, 0x00}, 0},
		{1, [3]byte{0x01, 0x00, 0x00}, [3]byte{0x00, 0x00, 0x01}, 1},
		{-1, [3]byte{0xFF, 0xFF, 0xFF}, [3]byte{0xFF, 0xFF, 0xFF}, -1},
		{-2, [3]byte{0xFE, 0xFF, 0xFF}, [3]byte{0xFF, 0xFF, 0xFE}, -2},
		{0x123456, [3]byte{0x56, 0x34, 0x12}, [3]byte{0x12, 0x34, 0x56}, 0x123456},
		{8388607, [3]byte{0xFF, 0xFF, 0x7F}, [3]byte{0x7F, 0xFF, 0xFF}, 8388607},
		{-8388608, [3]byte{0x00, 0x00, 0x80}, [3]byte{0x80, 0x00, 0x00}, -8388608},

		// Out of range for 24 bits: only the low three bytes of the
		// two's-complement pattern are kept.
		{8388608, [3]byte{0x00, 0x00, 0x80}, [3]byte{0x80, 0x00, 0x00}, -8388608},
		{-8388609, [3]byte{0xFF, 0xFF, 0x7F}, [3]byte{0x7F, 0xFF, 0xFF}, 8388607},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.value), func(t *testing.T) {
			t.Parallel()

			little := nbyteint.New[int32, [3]byte, nbyteint.Little](c.value)
			assert.Equal(t, c.expectedLittle, little.Bytes(), "Little-endian field should store the least significant byte first")
			assert.Equal(t, c.expectedValue, little.Value(), "Little-endian field should read back the expected value")

			big := nbyteint.New[int32, [3]byte, nbyteint.Big](c.value)
			assert.Equal(t, c.expectedBig, big.Bytes(), "Big-endian field should store the most significant byte first")
			assert.Equal(t, c.expectedValue, big.Value(), "Big-endian field should read back the expected value")
		})
	}
}

func TestUnsigned2ByteTruncation(t *testing.T) {
	cases := []struct {
		value         uint32
		expectedBytes [2]byte
		expectedValue uint32
	}{
		{0, [2]byte{0x00, 0x00}, 0},
		{65535, [2]byte{0xFF, 0xFF}, 65535},
		{65536, [2]byte{0x00, 0x00}, 0},
		{70000, [2]byte{0x70, 0x11}, 4464},
		{0x12345, [2]byte{0x45, 0x23}, 0x2345},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.value), func(t *testing.T) {
			t.Parallel()

			field := nbyteint.New[uint32, [2]byte, nbyteint.Little](c.value)
			assert.Equal(t, c.expectedBytes, field.Bytes(), "Field should keep the low 16 bits of the value")
			assert.Equal(t, c.expectedValue, field.Value(), "Read-back should equal the value reduced modulo 2^16")
		})
	}
}

func TestSingleByteSignedField(t *testing.T) {
	field := nbyteint.New[int32, [1]byte, nbyteint.Little](-1)

	assert.Equal(t, [1]byte{0xFF}, field.Bytes(), "A single stored byte of -1 should be 0xFF")
	assert.Equal(t, int32(-1), field.Value(), "Sign extension should recover -1 from a single stored byte")
}

func TestBigEndianBytesAreReverseOfLittleEndian(t *testing.T) {
	value := uint64(0x0102030405)

	little := nbyteint.New[uint64, [5]byte, nbyteint.Little](value).Bytes()
	big := nbyteint.New[uint64, [5]byte, nbyteint.Big](value).Bytes()

	for k := 0; k < len(little); k++ {
		assert.Equal(t, little[k], big[len(big)-1-k], "Big-endian layout should be the byte-reversed little-endian layout")
	}
}

func TestZeroValueIsZero(t *testing.T) {
	var unsigned nbyteint.Uint32BE
	assert.Equal(t, [4]byte{0x00, 0x00, 0x00, 0x00}, unsigned.Bytes(), "Zero value should hold all-zero bytes")
	assert.Equal(t, uint32(0), unsigned.Value(), "Zero value should read back as zero")

	var signed nbyteint.Int24LE
	assert.Equal(t, [3]byte{0x00, 0x00, 0x00}, signed.Bytes(), "Zero value should hold all-zero bytes")
	assert.Equal(t, int32(0), signed.Value(), "Zero value should read back as zero")
}

func TestFullWidthFields(t *testing.T) {
	minimum := nbyteint.New[int64, [8]byte, nbyteint.Big](math.MinInt64)
	assert.Equal(t, [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, minimum.Bytes())
	assert.Equal(t, int64(math.MinInt64), minimum.Value(), "Full-width fields should round-trip the extreme values of the native type")

	maximum := nbyteint.New[uint64, [8]byte, nbyteint.Little](math.MaxUint64)
	assert.Equal(t, [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, maximum.Bytes())
	assert.Equal(t, uint64(math.MaxUint64), maximum.Value())
}

func TestOddWidthRoundTrips(t *testing.T) {
	signed40 := []int64{0, 1, -1, 549755813887, -549755813888}
	for _, v := range signed40 {
		field := nbyteint.New[int64, [5]byte, nbyteint.Big](v)
		assert.Equal(t, v, field.Value(), "40-bit signed field should round-trip %d", v)
	}

	unsigned48 := []uint64{0, 1, 281474976710655}
	for _, v := range unsigned48 {
		field := nbyteint.New[uint64, [6]byte, nbyteint.Little](v)
		assert.Equal(t, v, field.Value(), "48-bit unsigned field should round-trip %d", v)
	}

	unsigned56 := []uint64{0, 72057594037927935}
	for _, v := range unsigned56 {
		field := nbyteint.New[uint64, [7]byte, nbyteint.Big](v)
		assert.Equal(t, v, field.Value(), "56-bit unsigned field should round-trip %d", v)
	}
}

func TestSetOverwritesInPlace(t *testing.T) {
	field := nbyteint.New[int32, [3]byte, nbyteint.Little](42)
	field.Set(-2)

	assert.Equal(t, [3]byte{0xFE, 0xFF, 0xFF}, field.Bytes(), "Set should fully overwrite the stored bytes")
	assert.Equal(t, int32(-2), field.Value())
}

func TestSetBytesRoundTrip(t *testing.T) {
	var field nbyteint.Uint24BE
	field.SetBytes([3]byte{0x12, 0x34, 0x56})

	assert.Equal(t, [3]byte{0x12, 0x34, 0x56}, field.Bytes(), "Bytes should return exactly what SetBytes stored")
	assert.Equal(t, uint32(0x123456), field.Value(), "SetBytes input should be interpreted in the field's byte order")
}

func TestStorageWiderThanNativeTypePanics(t *testing.T) {
	assert.Panics(t, func() {
		nbyteint.New[uint16, [4]byte, nbyteint.Little](1)
	}, "Constructing a field wider than its native type should panic")

	assert.Panics(t, func() {
		var field nbyteint.Int[int8, [2]byte, nbyteint.Big]
		_ = field.Value()
	}, "Reading a field wider than its native type should panic")
}

func TestString(t *testing.T) {
	assert.Equal(t, "-2", nbyteint.New[int32, [3]byte, nbyteint.Little](-2).String())
	assert.Equal(t, "4464", nbyteint.New[uint32, [2]byte, nbyteint.Big](70000).String())
}
