//go:build !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

package lsb

import "unsafe"

// detectHostOrder classifies the host's byte order once at init time on
// otherwise-unknown ports. A layout that is neither big- nor little-endian
// (i.e. a mixed-endian platform) cannot be sequenced and stops the program
// before any value can be mis-encoded.
func detectHostOrder() bool {
	var probe uint32 = 0x01020304

	switch *(*[4]byte)(unsafe.Pointer(&probe)) {
	case [4]byte{0x04, 0x03, 0x02, 0x01}:
		return false
	case [4]byte{0x01, 0x02, 0x03, 0x04}:
		return true
	default:
		panic("lsb: mixed-endian platforms are not supported")
	}
}

var hostBigEndian = detectHostOrder()
