package section

import (
	"fmt"

	"github.com/bibkit/marc21/errs"
)

// DefaultLeader is the leader a freshly constructed record starts with:
// 24 blanks. The length and base address slots are filled in on encode.
const DefaultLeader = "                        "

// Leader is the fixed 24-byte record header.
//
// Only two slots are ever interpreted: the record length at bytes 0-4 and the
// base address of data at bytes 12-16, both 5-digit zero-padded ASCII
// decimals. Every other byte is opaque to this package and preserved
// verbatim; SetRecordLength and SetBaseAddress are the only mutations the
// codec performs.
type Leader [LeaderSize]byte

// NewLeader builds a Leader from s, which must be exactly 24 bytes.
func NewLeader(s string) (Leader, error) {
	var l Leader
	if len(s) != LeaderSize {
		return l, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidLeader, len(s))
	}
	copy(l[:], s)

	return l, nil
}

// String returns the leader as a 24-character string.
func (l Leader) String() string {
	return string(l[:])
}

// RecordLength returns the 5-digit record length slot, or 0 if the slot does
// not hold digits.
func (l Leader) RecordLength() int {
	n, ok := parseDigits(l[RecordLengthOffset : RecordLengthOffset+RecordLengthWidth])
	if !ok {
		return 0
	}

	return n
}

// BaseAddress returns the 5-digit base address slot, or 0 if the slot does
// not hold digits.
func (l Leader) BaseAddress() int {
	n, ok := parseDigits(l[BaseAddressOffset : BaseAddressOffset+BaseAddressWidth])
	if !ok {
		return 0
	}

	return n
}

// SetRecordLength overwrites bytes 0-4 with n, zero-padded to 5 digits.
func (l *Leader) SetRecordLength(n int) {
	putDigits(l[RecordLengthOffset:RecordLengthOffset+RecordLengthWidth], n)
}

// SetBaseAddress overwrites bytes 12-16 with n, zero-padded to 5 digits.
func (l *Leader) SetBaseAddress(n int) {
	putDigits(l[BaseAddressOffset:BaseAddressOffset+BaseAddressWidth], n)
}

// parseDigits interprets b as an unsigned ASCII decimal. It reports false if
// any byte is not a digit.
func parseDigits(b []byte) (int, bool) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}

	return n, true
}

// putDigits writes n into b right-aligned with zero padding. Values wider
// than b are written modulo the available width; the format accepts this
// truncation for oversized records rather than guarding it.
func putDigits(b []byte, n int) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte('0' + n%10)
		n /= 10
	}
}
