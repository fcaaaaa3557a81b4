//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewReader wraps r with a pure-Go zstd decompressor.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return zstdReadCloser{decoder}, nil
}

// NewWriter wraps w with a pure-Go zstd compressor at the default level.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

// zstdReadCloser adapts zstd.Decoder's error-free Close to io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (rc zstdReadCloser) Close() error {
	rc.Decoder.Close()
	return nil
}
