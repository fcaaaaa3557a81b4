package compress

import "io"

// NoOpCodec passes the stream through untouched. It serves plain MARC files
// and doubles as the baseline for codec tests.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewReader returns r unchanged behind a no-op Close.
func (NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// NewWriter returns w unchanged behind a no-op Close.
func (NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
