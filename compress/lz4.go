package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec reads and writes LZ4 frame streams.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewReader wraps r with an LZ4 decompressor.
func (LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter wraps w with an LZ4 compressor.
func (LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
