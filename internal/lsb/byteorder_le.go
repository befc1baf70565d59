//go:build amd64 || arm64 || 386 || riscv64 || ppc64le || mips64le || mipsle || loong64 || wasm || arm

package lsb

// Common little-endian Go ports: the storage of a scalar is already in
// least-significant-first order.
const hostBigEndian = false
