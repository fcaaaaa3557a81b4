//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewReader wraps r with a cgo-backed zstd decompressor.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{reader: gozstd.NewReader(r)}, nil
}

// NewWriter wraps w with a cgo-backed zstd compressor.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{writer: gozstd.NewWriter(w)}, nil
}

// gozstdReader releases the C-side decompression context on Close.
type gozstdReader struct {
	reader *gozstd.Reader
}

func (r *gozstdReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *gozstdReader) Close() error {
	r.reader.Release()
	return nil
}

// gozstdWriter flushes the frame and releases the C-side context on Close.
type gozstdWriter struct {
	writer *gozstd.Writer
}

func (w *gozstdWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

func (w *gozstdWriter) Close() error {
	err := w.writer.Close()
	w.writer.Release()

	return err
}
