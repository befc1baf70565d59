package nbyteint

import (
	"fmt"
	"io"

	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
)

// WriteRecord packs a struc-encodable record -- typically a pointer to a
// struct whose fields are [Int] values and other fixed-size types -- into w,
// and returns the number of bytes written.
func WriteRecord(w io.Writer, record any) (int64, error) {
	cw := counter.NewWriter(w)

	if err := struc.Pack(cw, record); err != nil {
		return cw.Count(), fmt.Errorf("could not pack record: %w", err)
	}

	return cw.Count(), nil
}

// ReadRecord unpacks a struc-encodable record from r into record, which must
// be a pointer, and returns the number of bytes read.
func ReadRecord(r io.Reader, record any) (int64, error) {
	cr := counter.NewReader(r)

	if err := struc.Unpack(cr, record); err != nil {
		return cr.Count(), fmt.Errorf("could not unpack record: %w", err)
	}

	return cr.Count(), nil
}
