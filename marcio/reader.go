package marcio

import (
	"fmt"
	"io"

	"github.com/bibkit/marc21/compress"
	"github.com/bibkit/marc21/errs"
	"github.com/bibkit/marc21/format"
	"github.com/bibkit/marc21/internal/hash"
	"github.com/bibkit/marc21/internal/options"
	"github.com/bibkit/marc21/record"
	"github.com/bibkit/marc21/section"
)

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithCompression makes the reader decompress the stream with the given
// codec before framing records.
func WithCompression(compression format.CompressionType) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.compression = compression
	})
}

// WithDedup makes the reader silently skip records whose raw bytes are
// identical to a record already returned, using xxHash64 fingerprints.
func WithDedup() ReaderOption {
	return options.NoError(func(r *Reader) {
		r.dedup = dedupRawBytes
	})
}

// WithControlNumberDedup makes the reader silently skip records whose 001
// control number matches a record already returned. Records without an 001
// fall back to raw-byte fingerprints, so they are only skipped when
// byte-identical.
func WithControlNumberDedup() ReaderOption {
	return options.NoError(func(r *Reader) {
		r.dedup = dedupControlNumber
	})
}

// dedupMode selects how Next fingerprints records for duplicate skipping.
type dedupMode int

const (
	dedupOff dedupMode = iota
	dedupRawBytes
	dedupControlNumber
)

// Reader yields decoded records from a stream of binary MARC records.
//
// Note: the Reader is NOT thread-safe. It owns the stream position; one
// goroutine at a time.
type Reader struct {
	src    io.Reader
	closer io.Closer

	compression format.CompressionType
	dedup       dedupMode
	seen        map[uint64]struct{}
}

// NewReader creates a Reader over r.
//
// Returns:
//   - *Reader: the reader, positioned at the first record
//   - error: option error, unknown compression type, or codec header error
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	reader := &Reader{
		src:         r,
		compression: format.CompressionNone,
	}
	if err := options.Apply(reader, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(reader.compression)
	if err != nil {
		return nil, err
	}
	wrapped, err := codec.NewReader(r)
	if err != nil {
		return nil, err
	}
	reader.src = wrapped
	reader.closer = wrapped

	if reader.dedup != dedupOff {
		reader.seen = make(map[uint64]struct{})
	}

	return reader, nil
}

// Next returns the next record in the stream.
//
// Returns:
//   - *record.Record: the decoded record, with any decode advisories on its
//     warning list
//   - error: io.EOF at a clean end of stream, ErrTruncatedStream if the
//     stream ends mid-record, ErrMalformedLength if the length prefix is not
//     digits, or a decode error from the record package
func (r *Reader) Next() (*record.Record, error) {
	for {
		raw, err := r.nextRaw()
		if err != nil {
			return nil, err
		}
		if r.dedup == dedupRawBytes && r.duplicate(hash.Fingerprint(raw)) {
			continue
		}

		rec, err := record.Decode(raw)
		if err != nil {
			return nil, err
		}
		if r.dedup == dedupControlNumber && r.duplicate(controlFingerprint(rec, raw)) {
			continue
		}

		return rec, nil
	}
}

// duplicate records fp and reports whether it was already seen.
func (r *Reader) duplicate(fp uint64) bool {
	if _, dup := r.seen[fp]; dup {
		return true
	}
	r.seen[fp] = struct{}{}

	return false
}

// controlFingerprint keys a record by its 001 control number, falling back
// to the raw bytes when the record has none.
func controlFingerprint(rec *record.Record, raw []byte) uint64 {
	if cn := rec.ControlNumber(); cn != "" {
		return hash.FingerprintString(cn)
	}

	return hash.Fingerprint(raw)
}

// nextRaw reads one whole record's bytes: the 5-digit length prefix plus
// that many more bytes.
func (r *Reader) nextRaw() ([]byte, error) {
	var prefix [section.RecordLengthWidth]byte
	if _, err := io.ReadFull(r.src, prefix[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrTruncatedStream, err)
	}

	length := 0
	for _, c := range prefix {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: prefix %q", errs.ErrMalformedLength, prefix[:])
		}
		length = length*10 + int(c-'0')
	}
	if length < section.RecordLengthWidth {
		return nil, fmt.Errorf("%w: declared length %d", errs.ErrMalformedLength, length)
	}

	raw := make([]byte, length)
	copy(raw, prefix[:])
	if _, err := io.ReadFull(r.src, raw[section.RecordLengthWidth:]); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrTruncatedStream, err)
	}

	return raw, nil
}

// Close releases the compression codec. It does not close the underlying
// stream.
func (r *Reader) Close() error {
	return r.closer.Close()
}
