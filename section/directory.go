package section

import (
	"fmt"

	"github.com/bibkit/marc21/errs"
)

// DirectoryEntry records the location of a single field in the data section.
// Its on-wire form is a fixed 12 bytes of ASCII digits: a 3-digit tag, a
// 4-digit field length (including the field terminator), and a 5-digit
// offset from the base address of data.
type DirectoryEntry struct {
	// Tag is the 3-digit field tag.
	Tag string

	// Length is the byte length of the field data including its trailing
	// field terminator.
	Length int

	// Offset is the byte offset of the field data from the start of the data
	// section.
	Offset int
}

// ParseDirectory splits a directory block into its entries.
//
// The block is everything between the leader and the first field terminator.
// It must be a whole number of 12-byte entries and every byte of every entry
// must be an ASCII digit; either violation returns ErrMalformedDirectory.
func ParseDirectory(block []byte) ([]DirectoryEntry, error) {
	if len(block)%DirectoryEntrySize != 0 {
		return nil, fmt.Errorf("%w: directory length %d is not a multiple of %d",
			errs.ErrMalformedDirectory, len(block), DirectoryEntrySize)
	}

	entries := make([]DirectoryEntry, 0, len(block)/DirectoryEntrySize)
	for i := 0; i < len(block); i += DirectoryEntrySize {
		entry, err := parseEntry(block[i : i+DirectoryEntrySize])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// parseEntry decodes one 12-byte directory entry.
func parseEntry(b []byte) (DirectoryEntry, error) {
	for _, c := range b {
		if c < '0' || c > '9' {
			return DirectoryEntry{}, fmt.Errorf("%w: non-digit byte 0x%02x in entry %q",
				errs.ErrMalformedDirectory, c, b)
		}
	}

	length, _ := parseDigits(b[3:7])
	offset, _ := parseDigits(b[7:12])

	return DirectoryEntry{
		Tag:    string(b[0:3]),
		Length: length,
		Offset: offset,
	}, nil
}

// AppendTo appends the entry's 12-byte wire form to buf and returns the
// extended slice. Lengths over 9999 and offsets over 99999 wrap modulo the
// slot width; the format accepts this for oversized records.
func (e DirectoryEntry) AppendTo(buf []byte) []byte {
	start := len(buf)
	buf = append(buf, make([]byte, DirectoryEntrySize)...)
	b := buf[start : start+DirectoryEntrySize]

	copy(b[0:3], e.Tag)
	putDigits(b[3:7], e.Length)
	putDigits(b[7:12], e.Offset)

	return buf
}
