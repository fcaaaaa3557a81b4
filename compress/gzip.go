package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec reads and writes gzip streams, the most common wrapping for
// distributed MARC exchange files.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewReader wraps r with a gzip decompressor. It fails if the stream does not
// start with a valid gzip header.
func (GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// NewWriter wraps w with a gzip compressor at the default level.
func (GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
