package nbyteint

// Field types for the widths binary formats commonly use. The odd widths
// (24, 40, 48, 56 bits) are the ones native integers cannot represent
// directly; the power-of-two widths are included so that a packed record can
// declare all of its fields uniformly.
type (
	Uint16LE = Int[uint16, [2]byte, Little]
	Uint16BE = Int[uint16, [2]byte, Big]
	Uint24LE = Int[uint32, [3]byte, Little]
	Uint24BE = Int[uint32, [3]byte, Big]
	Uint32LE = Int[uint32, [4]byte, Little]
	Uint32BE = Int[uint32, [4]byte, Big]
	Uint40LE = Int[uint64, [5]byte, Little]
	Uint40BE = Int[uint64, [5]byte, Big]
	Uint48LE = Int[uint64, [6]byte, Little]
	Uint48BE = Int[uint64, [6]byte, Big]
	Uint56LE = Int[uint64, [7]byte, Little]
	Uint56BE = Int[uint64, [7]byte, Big]
	Uint64LE = Int[uint64, [8]byte, Little]
	Uint64BE = Int[uint64, [8]byte, Big]

	Int16LE = Int[int16, [2]byte, Little]
	Int16BE = Int[int16, [2]byte, Big]
	Int24LE = Int[int32, [3]byte, Little]
	Int24BE = Int[int32, [3]byte, Big]
	Int32LE = Int[int32, [4]byte, Little]
	Int32BE = Int[int32, [4]byte, Big]
	Int40LE = Int[int64, [5]byte, Little]
	Int40BE = Int[int64, [5]byte, Big]
	Int48LE = Int[int64, [6]byte, Little]
	Int48BE = Int[int64, [6]byte, Big]
	Int56LE = Int[int64, [7]byte, Little]
	Int56BE = Int[int64, [7]byte, Big]
	Int64LE = Int[int64, [8]byte, Little]
	Int64BE = Int[int64, [8]byte, Big]
)
