//go:build s390x || ppc64 || mips || mips64

package lsb

// Common big-endian Go ports: sequences walk the storage in reverse to stay
// least-significant-first.
const hostBigEndian = true
