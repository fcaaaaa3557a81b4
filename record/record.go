package record

import (
	"fmt"
	"strings"

	"github.com/bibkit/marc21/errs"
	"github.com/bibkit/marc21/section"
)

// FieldHandle is a stable reference to a field inside one Record. Handles are
// issued by AppendField and stay valid until the field is deleted, no matter
// how many value-equal fields the record holds.
type FieldHandle int

type fieldSlot struct {
	handle FieldHandle
	field  *Field
}

// Record is a leader plus an ordered sequence of fields.
//
// Field order is insertion order and is semantically meaningful: it is the
// order fields are written on encode. The record also accumulates advisory
// warnings, populated while decoding and when appended fields carry
// construction advisories of their own.
//
// Note: the Record is NOT thread-safe. It is exclusively owned by the caller
// holding the reference.
type Record struct {
	leader section.Leader
	fields []fieldSlot

	nextHandle FieldHandle
	matchers   map[string]tagMatcher

	warnings []string
}

// New creates an empty record with a blank leader.
func New() *Record {
	leader, _ := section.NewLeader(section.DefaultLeader)

	return &Record{leader: leader, nextHandle: 1}
}

// Leader returns the record's 24-byte leader.
func (r *Record) Leader() section.Leader {
	return r.leader
}

// SetLeader replaces the leader. The string must be exactly 24 bytes; the
// length and base address slots will be overwritten on the next Encode, so
// callers never need to compute them.
func (r *Record) SetLeader(s string) error {
	leader, err := section.NewLeader(s)
	if err != nil {
		return err
	}
	r.leader = leader

	return nil
}

// AppendField appends a field to the record and returns its handle. Any
// construction advisories the field carries are drained onto the record's
// warning list.
func (r *Record) AppendField(f *Field) FieldHandle {
	h := r.nextHandle
	r.nextHandle++
	r.fields = append(r.fields, fieldSlot{handle: h, field: f})

	if len(f.warnings) > 0 {
		r.warnings = append(r.warnings, f.warnings...)
		f.warnings = nil
	}

	return h
}

// DeleteField removes the field identified by handle.
//
// Returns:
//   - error: ErrNoSuchField if the handle was never issued by this record or
//     the field has already been deleted
func (r *Record) DeleteField(h FieldHandle) error {
	for i, slot := range r.fields {
		if slot.handle == h {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: handle %d", errs.ErrNoSuchField, h)
}

// FieldByHandle returns the field identified by handle, if it is still part
// of the record.
func (r *Record) FieldByHandle(h FieldHandle) (*Field, bool) {
	for _, slot := range r.fields {
		if slot.handle == h {
			return slot.field, true
		}
	}

	return nil, false
}

// Fields returns all fields in insertion order.
func (r *Record) Fields() []*Field {
	fields := make([]*Field, len(r.fields))
	for i, slot := range r.fields {
		fields[i] = slot.field
	}

	return fields
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.fields)
}

// Field returns the first field with the given tag, or nil. The tag may
// contain 'X' wildcard positions, e.g. "6XX".
func (r *Record) Field(tag string) *Field {
	m, ok := r.matcher(tag)
	if !ok {
		return nil
	}
	for _, slot := range r.fields {
		if m.match(slot.field.tag) {
			return slot.field
		}
	}

	return nil
}

// FieldsByTag returns every field whose tag matches the pattern, in record
// order. The pattern may contain 'X' wildcard positions, e.g. "6XX".
func (r *Record) FieldsByTag(pattern string) []*Field {
	m, ok := r.matcher(pattern)
	if !ok {
		return nil
	}

	var fields []*Field
	for _, slot := range r.fields {
		if m.match(slot.field.tag) {
			fields = append(fields, slot.field)
		}
	}

	return fields
}

// ControlNumber returns the data of field 001, or "" if the record has none.
func (r *Record) ControlNumber() string {
	f := r.Field("001")
	if f == nil {
		return ""
	}
	data, err := f.Data()
	if err != nil {
		return ""
	}

	return data
}

// Warnings returns the accumulated advisory warnings in the order they were
// raised.
func (r *Record) Warnings() []string {
	return r.warnings
}

// AddWarning appends an advisory warning to the record.
func (r *Record) AddWarning(text string) {
	r.warnings = append(r.warnings, text)
}

// DisplayString renders the whole record for human display: the leader
// followed by one block per field, in record order. Not used by the codec.
func (r *Record) DisplayString() string {
	var sb strings.Builder
	sb.WriteString("LDR ")
	sb.WriteString(r.leader.String())
	for _, slot := range r.fields {
		sb.WriteByte('\n')
		sb.WriteString(slot.field.DisplayString())
	}

	return sb.String()
}

// matcher returns the compiled matcher for a tag pattern, caching compiled
// patterns in a map owned by the record.
func (r *Record) matcher(pattern string) (tagMatcher, bool) {
	if m, ok := r.matchers[pattern]; ok {
		return m, true
	}
	m, ok := newTagMatcher(pattern)
	if !ok {
		return tagMatcher{}, false
	}
	if r.matchers == nil {
		r.matchers = make(map[string]tagMatcher)
	}
	r.matchers[pattern] = m

	return m, true
}
