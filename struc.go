package nbyteint

import (
	"errors"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"
)

var errBufferTooSmall = errors.New("provided slice buffer is not big enough to pack all data into")

var _ struc.Custom = (*Uint24LE)(nil)

// Pack implements [struc.Custom] by copying the stored bytes, in their
// physical order, into p.
func (i Int[T, A, O]) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < len(i.data) {
		return 0, errBufferTooSmall
	}

	for k := 0; k < len(i.data); k++ {
		p[k] = i.data[k]
	}

	return len(i.data), nil
}

// Unpack implements [struc.Custom] by reading exactly len(A) bytes from r
// into the storage array.
func (i *Int[T, A, O]) Unpack(r io.Reader, _ int, _ *struc.Options) error {
	buf := make([]byte, len(i.data))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("could not read field bytes: %w", err)
	}

	for k := range buf {
		i.data[k] = buf[k]
	}

	return nil
}

// Size implements [struc.Custom]; the packed size of a field is its storage
// width.
func (i Int[T, A, O]) Size(_ *struc.Options) int {
	return len(i.data)
}
