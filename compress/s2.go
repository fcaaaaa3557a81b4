package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec reads and writes S2 streams (Snappy-compatible, faster).
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewReader wraps r with an S2 decompressor.
func (S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

// NewWriter wraps w with an S2 compressor.
func (S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
