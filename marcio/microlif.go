package marcio

import (
	"fmt"
	"strings"

	"github.com/bibkit/marc21/errs"
	"github.com/bibkit/marc21/record"
	"github.com/bibkit/marc21/section"
)

// DecodeMicroLIF parses one record in the MicroLIF text format.
//
// MicroLIF is line-oriented and human-editable. Each line starts with a
// 3-character tag. A "LDR" line sets the leader. Control-field lines carry
// their data verbatim after the tag; data-field lines carry the two
// indicator characters and then underscore-delimited subfields:
//
//	LDR00000nam  2200000 a 4500
//	00112345
//	24510_aProgramming Perl /_cLarry Wall.
//	`
//
// A line starting with a backquote ends the record; anything after it is
// ignored. CR, LF and CRLF line endings are all accepted. Invalid
// indicators are coerced to blank exactly as in binary decoding, with the
// advisory on the record's warning list.
func DecodeMicroLIF(data []byte) (*record.Record, error) {
	r := record.New()
	sawLine := false

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		if line[0] == '`' {
			break
		}
		sawLine = true

		if err := decodeLIFLine(r, line); err != nil {
			return nil, err
		}
	}

	if !sawLine {
		return nil, fmt.Errorf("%w: no field lines", errs.ErrMalformedLIF)
	}

	return r, nil
}

func decodeLIFLine(r *record.Record, line string) error {
	if len(line) < 4 {
		return fmt.Errorf("%w: line %q too short", errs.ErrMalformedLIF, line)
	}

	tag, rest := line[:3], line[3:]
	if tag == "LDR" {
		return r.SetLeader(padLeader(rest))
	}

	if tag < section.ControlTagLimit {
		f, err := record.NewControlField(tag, rest)
		if err != nil {
			return fmt.Errorf("%w: line %q: %w", errs.ErrMalformedLIF, line, err)
		}
		r.AppendField(f)

		return nil
	}

	if len(rest) < 2 {
		return fmt.Errorf("%w: line %q has no indicators", errs.ErrMalformedLIF, line)
	}
	ind1, ind2 := rest[0], rest[1]

	// The subfield body starts with an underscore, so the first split chunk
	// is an empty artifact of the leading delimiter.
	chunks := strings.Split(rest[2:], "_")
	chunks = chunks[1:]

	subfields := make([]record.Subfield, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == "" {
			r.AddWarning(fmt.Sprintf("Empty subfield found in tag %s", tag))
			continue
		}
		subfields = append(subfields, record.Subfield{Code: chunk[0], Value: chunk[1:]})
	}

	f, err := record.NewDataField(tag, ind1, ind2, subfields...)
	if err != nil {
		return fmt.Errorf("%w: line %q: %w", errs.ErrMalformedLIF, line, err)
	}
	r.AppendField(f)

	return nil
}

// padLeader normalizes a hand-typed leader to exactly 24 bytes.
func padLeader(s string) string {
	if len(s) > section.LeaderSize {
		return s[:section.LeaderSize]
	}

	return s + strings.Repeat(" ", section.LeaderSize-len(s))
}
