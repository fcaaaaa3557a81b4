package record

import (
	"bytes"
	"fmt"

	"github.com/bibkit/marc21/errs"
	"github.com/bibkit/marc21/section"
)

// Decode parses one complete binary MARC21 record.
//
// The buffer must hold exactly one record: a 5-digit length prefix that
// equals the buffer length, a 24-byte leader, the directory, the field data
// blocks and the record terminator. Structural damage aborts with a sentinel
// error and no Record is returned; recoverable oddities are appended to the
// returned Record's warning list and decoding continues. See the package
// documentation for the fatal/advisory split.
func Decode(data []byte) (*Record, error) {
	if err := checkLength(data); err != nil {
		return nil, err
	}

	r := New()
	leader, err := section.NewLeader(string(data[:section.LeaderSize]))
	if err != nil {
		return nil, err
	}
	r.leader = leader

	// Everything after the leader splits on the field terminator into the
	// directory block, one block per field, and the trailing record
	// terminator.
	segments := bytes.Split(data[section.LeaderSize:], []byte{section.FieldTerminator})
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: no field terminator after leader", errs.ErrMalformedDirectory)
	}

	trailer := segments[len(segments)-1]
	blocks := segments[1 : len(segments)-1]
	if len(trailer) != 1 || trailer[0] != section.RecordTerminator {
		r.AddWarning("Invalid record terminator")
	}

	entries, err := section.ParseDirectory(segments[0])
	if err != nil {
		return nil, err
	}

	if len(entries) > len(blocks) {
		return nil, fmt.Errorf("%w: directory names %d fields but record holds %d",
			errs.ErrMalformedDirectory, len(entries), len(blocks))
	}
	if len(entries) < len(blocks) {
		return nil, fmt.Errorf("%w: %d blocks left over after %d directory entries",
			errs.ErrOrphanFieldData, len(blocks)-len(entries), len(entries))
	}

	offset := 0
	for i, entry := range entries {
		block := blocks[i]

		// The stored length counts the field terminator the split consumed;
		// disagreement is advisory because the block boundary, not the
		// directory, is authoritative.
		if entry.Length != len(block)+1 {
			r.AddWarning(fmt.Sprintf("Invalid length in the directory for tag %s", entry.Tag))
		}
		if entry.Offset != offset {
			r.AddWarning(fmt.Sprintf("Invalid offset in the directory for tag %s", entry.Tag))
		}
		offset += len(block) + 1

		f, err := decodeField(r, entry.Tag, block)
		if err != nil {
			return nil, err
		}
		r.AppendField(f)
	}

	return r, nil
}

// checkLength validates the 5-digit length prefix against the buffer.
func checkLength(data []byte) error {
	if len(data) < section.RecordLengthWidth {
		return fmt.Errorf("%w: record is only %d bytes", errs.ErrMalformedLength, len(data))
	}
	declared := 0
	for _, c := range data[:section.RecordLengthWidth] {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q", errs.ErrMalformedLength, data[:section.RecordLengthWidth])
		}
		declared = declared*10 + int(c-'0')
	}
	if declared != len(data) {
		return fmt.Errorf("%w: leader says %d bytes, buffer holds %d",
			errs.ErrLengthMismatch, declared, len(data))
	}
	if len(data) < section.MinRecordSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrTruncatedRecord, len(data))
	}

	return nil
}

// decodeField builds one Field from its data block, appending advisory
// warnings to r as it goes.
func decodeField(r *Record, tag string, block []byte) (*Field, error) {
	if tag < section.ControlTagLimit {
		return NewControlField(tag, string(block))
	}

	ind1, ind2 := byte(' '), byte(' ')
	rest := block
	if len(block) >= 2 {
		ind1, ind2 = block[0], block[1]
		rest = block[2:]
	}
	if !validIndicator(ind1) || !validIndicator(ind2) {
		r.AddWarning(fmt.Sprintf("Invalid indicators %q forced to blanks for tag %s",
			string([]byte{ind1, ind2}), tag))
		ind1, ind2 = ' ', ' '
	}

	// The block body starts with a subfield indicator, so the first split
	// segment is an empty artifact of the leading delimiter.
	chunks := bytes.Split(rest, []byte{section.SubfieldIndicator})
	chunks = chunks[1:]

	subfields := make([]Subfield, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			r.AddWarning(fmt.Sprintf("Empty subfield found in tag %s", tag))
			continue
		}
		subfields = append(subfields, Subfield{Code: chunk[0], Value: string(chunk[1:])})
	}

	return NewDataField(tag, ind1, ind2, subfields...)
}
