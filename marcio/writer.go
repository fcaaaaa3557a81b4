package marcio

import (
	"io"

	"github.com/bibkit/marc21/compress"
	"github.com/bibkit/marc21/format"
	"github.com/bibkit/marc21/internal/options"
	"github.com/bibkit/marc21/record"
)

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithWriterCompression makes the writer compress the stream with the given
// codec.
func WithWriterCompression(compression format.CompressionType) WriterOption {
	return options.NoError(func(w *Writer) {
		w.compression = compression
	})
}

// Writer appends encoded records to a stream.
//
// Note: the Writer is NOT thread-safe.
type Writer struct {
	dst    io.WriteCloser
	closed bool

	compression format.CompressionType
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	writer := &Writer{
		compression: format.CompressionNone,
	}
	if err := options.Apply(writer, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(writer.compression)
	if err != nil {
		return nil, err
	}
	writer.dst, err = codec.NewWriter(w)
	if err != nil {
		return nil, err
	}

	return writer, nil
}

// Write encodes r and appends it to the stream. Encoding recomputes the
// record's leader length and base address slots, as Record.Encode documents.
func (w *Writer) Write(r *record.Record) error {
	_, err := w.dst.Write(r.Encode())
	return err
}

// Close flushes the compression codec. It does not close the underlying
// stream. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return w.dst.Close()
}
