package nbyteint

import "encoding/binary"

// ByteOrder constrains the byte-order type parameter of [Int] to exactly the
// two supported orders. The interface is sealed; nothing other than [Big] and
// [Little] can ever satisfy it, so an unsupported order is a compile error
// rather than something to check at runtime.
type ByteOrder interface {
	Big | Little

	byteOrder() binary.ByteOrder
}

// Big stores the most significant byte first, regardless of the host
// machine's byte order.
type Big struct{}

func (Big) byteOrder() binary.ByteOrder { return binary.BigEndian }

// Little stores the least significant byte first, regardless of the host
// machine's byte order.
type Little struct{}

func (Little) byteOrder() binary.ByteOrder { return binary.LittleEndian }
