package record

import (
	"github.com/bibkit/marc21/internal/pool"
	"github.com/bibkit/marc21/section"
)

// Encode serializes the record to its binary MARC21 form.
//
// The leader's record length and base address slots are recomputed and
// written back into the record's leader as a side effect; no other leader
// byte is touched. Field content is never modified.
//
// Round-trip: for a well-formed buffer b, Decode(b) followed by Encode
// reproduces b byte-for-byte.
func (r *Record) Encode() []byte {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	// Field data section first, tracking per-field lengths for the directory.
	lengths := make([]int, len(r.fields))
	for i, slot := range r.fields {
		start := buf.Len()
		buf.B = slot.field.appendBinary(buf.B)
		lengths[i] = buf.Len() - start
	}

	baseAddress := section.LeaderSize + section.DirectoryEntrySize*len(r.fields) + 1
	total := baseAddress + buf.Len() + 1

	r.leader.SetRecordLength(total)
	r.leader.SetBaseAddress(baseAddress)

	out := make([]byte, 0, total)
	out = append(out, r.leader.String()...)

	offset := 0
	for i, slot := range r.fields {
		entry := section.DirectoryEntry{
			Tag:    slot.field.tag,
			Length: lengths[i],
			Offset: offset,
		}
		out = entry.AppendTo(out)
		offset += lengths[i]
	}
	out = append(out, section.FieldTerminator)
	out = append(out, buf.Bytes()...)
	out = append(out, section.RecordTerminator)

	return out
}
