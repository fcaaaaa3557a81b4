// Package errs defines the sentinel errors shared across the marc21 packages.
//
// Fatal conditions surface as one of these sentinels, usually wrapped with
// additional context via fmt.Errorf("%w: ...", ...). Callers can test for a
// category with errors.Is. Advisory conditions never use this package; they
// accumulate as warning strings on the Record or lint Result instead.
package errs

import "errors"

// Field construction and access errors.
var (
	// ErrInvalidTag indicates a field tag that is not exactly three ASCII digits.
	ErrInvalidTag = errors.New("invalid field tag")

	// ErrMissingSubfields indicates a data field constructed with no subfields.
	ErrMissingSubfields = errors.New("data field requires at least one subfield")

	// ErrNotControlField indicates a control-field operation on a data field (tag >= "010").
	ErrNotControlField = errors.New("not a control field")

	// ErrNotDataField indicates a subfield operation on a control field (tag < "010").
	ErrNotDataField = errors.New("not a data field")

	// ErrNotIndicatorField indicates an indicator access on a control field.
	ErrNotIndicatorField = errors.New("control fields have no indicators")

	// ErrInvalidIndicatorNumber indicates an indicator index other than 1 or 2.
	ErrInvalidIndicatorNumber = errors.New("indicator number must be 1 or 2")
)

// Record decode errors. Any of these aborts decoding; no partial Record is
// returned.
var (
	// ErrMalformedLength indicates a record whose first five bytes are not
	// ASCII digits.
	ErrMalformedLength = errors.New("malformed record length")

	// ErrLengthMismatch indicates a declared record length that does not equal
	// the actual buffer length.
	ErrLengthMismatch = errors.New("record length mismatch")

	// ErrMalformedDirectory indicates a directory block that is not a whole
	// number of 12-byte entries, or an entry containing a non-digit byte.
	ErrMalformedDirectory = errors.New("malformed directory")

	// ErrOrphanFieldData indicates field data blocks left over after every
	// directory entry has been consumed.
	ErrOrphanFieldData = errors.New("field data not described by directory")

	// ErrTruncatedRecord indicates a buffer too short to hold a leader.
	ErrTruncatedRecord = errors.New("record shorter than leader")

	// ErrInvalidLeader indicates a leader that is not exactly 24 bytes.
	ErrInvalidLeader = errors.New("leader must be exactly 24 bytes")
)

// Record mutation errors.
var (
	// ErrNoSuchField indicates a field handle that is not present in the
	// record, either never issued or already deleted.
	ErrNoSuchField = errors.New("no field with that handle")
)

// Lint errors.
var (
	// ErrNotARecord indicates a nil record passed to Linter.Check.
	ErrNotARecord = errors.New("not a record")

	// ErrInvalidRules indicates a rule table that failed to parse or validate.
	ErrInvalidRules = errors.New("invalid lint rule table")
)

// marcio errors.
var (
	// ErrTruncatedStream indicates a stream that ended in the middle of a
	// record body after a valid length prefix.
	ErrTruncatedStream = errors.New("stream truncated mid-record")

	// ErrMalformedLIF indicates a MicroLIF block that cannot be decoded.
	ErrMalformedLIF = errors.New("malformed MicroLIF data")
)
