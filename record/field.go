package record

import (
	"fmt"
	"strings"

	"github.com/bibkit/marc21/errs"
	"github.com/bibkit/marc21/section"
)

// Subfield is a single (code, value) pair inside a data field. Codes are not
// unique within a field; repeats are legal and order is meaningful.
type Subfield struct {
	Code  byte
	Value string
}

// Field is a single tagged data unit of a MARC record.
//
// A field is either a control field (tag below "010") holding one opaque data
// string, or a data field holding two indicators and an ordered sequence of
// subfields. The tag and the control/data distinction are fixed at
// construction; subfields are appendable afterwards.
//
// Note: the Field is NOT thread-safe. Each field belongs to exactly one
// Record and one owning goroutine at a time.
type Field struct {
	tag        string
	ind1, ind2 byte
	subfields  []Subfield
	data       string

	warnings []string
}

// NewControlField creates a control field ("001".."009") holding data.
//
// Returns:
//   - *Field: the new field
//   - error: ErrInvalidTag if tag is not exactly three ASCII digits,
//     ErrNotControlField if tag is "010" or above
func NewControlField(tag, data string) (*Field, error) {
	if err := validateTag(tag); err != nil {
		return nil, err
	}
	if tag >= section.ControlTagLimit {
		return nil, fmt.Errorf("%w: tag %s", errs.ErrNotControlField, tag)
	}

	return &Field{tag: tag, data: data}, nil
}

// NewDataField creates a data field (tag "010" or above) with two indicators
// and at least one subfield.
//
// An indicator that is not a digit or blank is coerced to blank; this is not
// an error, but it raises an advisory on the field's warning list. The
// warnings are transferred to the owning Record by Record.AppendField.
//
// Returns:
//   - *Field: the new field
//   - error: ErrInvalidTag if tag is not exactly three ASCII digits,
//     ErrNotDataField if tag is below "010", ErrMissingSubfields if no
//     subfields are given
func NewDataField(tag string, ind1, ind2 byte, subfields ...Subfield) (*Field, error) {
	if err := validateTag(tag); err != nil {
		return nil, err
	}
	if tag < section.ControlTagLimit {
		return nil, fmt.Errorf("%w: tag %s", errs.ErrNotDataField, tag)
	}
	if len(subfields) == 0 {
		return nil, fmt.Errorf("%w: tag %s", errs.ErrMissingSubfields, tag)
	}

	f := &Field{
		tag:       tag,
		ind1:      ind1,
		ind2:      ind2,
		subfields: append([]Subfield(nil), subfields...),
	}

	if !validIndicator(ind1) {
		f.warnings = append(f.warnings,
			fmt.Sprintf("%s: Invalid indicator 1 %q forced to blank", tag, string(ind1)))
		f.ind1 = ' '
	}
	if !validIndicator(ind2) {
		f.warnings = append(f.warnings,
			fmt.Sprintf("%s: Invalid indicator 2 %q forced to blank", tag, string(ind2)))
		f.ind2 = ' '
	}

	return f, nil
}

// Tag returns the 3-character field tag.
func (f *Field) Tag() string {
	return f.tag
}

// IsControl reports whether the field is a control field (tag below "010").
func (f *Field) IsControl() bool {
	return f.tag < section.ControlTagLimit
}

// Indicator returns indicator n, where n is 1 or 2.
//
// Returns:
//   - byte: the indicator character, a digit or blank
//   - error: ErrNotIndicatorField on a control field,
//     ErrInvalidIndicatorNumber if n is not 1 or 2
func (f *Field) Indicator(n int) (byte, error) {
	if f.IsControl() {
		return 0, fmt.Errorf("%w: tag %s", errs.ErrNotIndicatorField, f.tag)
	}
	switch n {
	case 1:
		return f.ind1, nil
	case 2:
		return f.ind2, nil
	default:
		return 0, fmt.Errorf("%w: got %d", errs.ErrInvalidIndicatorNumber, n)
	}
}

// Subfield returns the value of the first subfield with the given code, in
// sequence order.
//
// Returns:
//   - string: the subfield value, or "" when absent
//   - bool: whether a subfield with the code exists
//   - error: ErrNotDataField on a control field
func (f *Field) Subfield(code byte) (value string, ok bool, err error) {
	if f.IsControl() {
		return "", false, fmt.Errorf("%w: tag %s", errs.ErrNotDataField, f.tag)
	}
	for _, sf := range f.subfields {
		if sf.Code == code {
			return sf.Value, true, nil
		}
	}

	return "", false, nil
}

// Subfields returns the field's ordered subfield sequence. The returned slice
// is the field's own storage; callers must not modify it.
func (f *Field) Subfields() []Subfield {
	return f.subfields
}

// AddSubfields appends subfields to the field in order.
//
// Returns:
//   - int: the number of subfields added
//   - error: ErrNotDataField on a control field
func (f *Field) AddSubfields(subfields ...Subfield) (int, error) {
	if f.IsControl() {
		return 0, fmt.Errorf("%w: tag %s", errs.ErrNotDataField, f.tag)
	}
	f.subfields = append(f.subfields, subfields...)

	return len(subfields), nil
}

// Data returns the control-field payload.
//
// Returns:
//   - string: the payload
//   - error: ErrNotControlField on a data field
func (f *Field) Data() (string, error) {
	if !f.IsControl() {
		return "", fmt.Errorf("%w: tag %s", errs.ErrNotControlField, f.tag)
	}

	return f.data, nil
}

// SetData replaces the control-field payload.
//
// Returns:
//   - error: ErrNotControlField on a data field
func (f *Field) SetData(data string) error {
	if !f.IsControl() {
		return fmt.Errorf("%w: tag %s", errs.ErrNotControlField, f.tag)
	}
	f.data = data

	return nil
}

// Warnings returns advisories raised during construction, such as indicator
// coercions. Record.AppendField drains them into the owning record.
func (f *Field) Warnings() []string {
	return f.warnings
}

// DisplayString renders the field for human display. The tag, indicators and
// first subfield share the first line; each further subfield gets its own
// indented line. Not used by the codec.
//
//	245 10 _aProgramming Perl /
//	       _cLarry Wall, Tom Christiansen & Jon Orwant.
func (f *Field) DisplayString() string {
	var sb strings.Builder
	sb.WriteString(f.tag)

	if f.IsControl() {
		sb.WriteString("     ")
		sb.WriteString(f.data)

		return sb.String()
	}

	sb.WriteByte(' ')
	sb.WriteByte(f.ind1)
	sb.WriteByte(f.ind2)
	for i, sf := range f.subfields {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString("\n       ")
		}
		sb.WriteByte('_')
		sb.WriteByte(sf.Code)
		sb.WriteString(sf.Value)
	}

	return sb.String()
}

// appendBinary appends the field's wire form to buf and returns the extended
// slice: raw data for control fields, indicators plus 0x1F-prefixed subfields
// for data fields, each followed by a single field terminator.
func (f *Field) appendBinary(buf []byte) []byte {
	if f.IsControl() {
		buf = append(buf, f.data...)
		return append(buf, section.FieldTerminator)
	}

	buf = append(buf, f.ind1, f.ind2)
	for _, sf := range f.subfields {
		buf = append(buf, section.SubfieldIndicator, sf.Code)
		buf = append(buf, sf.Value...)
	}

	return append(buf, section.FieldTerminator)
}

// Binary returns the field's wire form per the MARC21 layout, including the
// trailing field terminator.
func (f *Field) Binary() []byte {
	return f.appendBinary(nil)
}

// validateTag checks that tag is exactly three ASCII digits.
func validateTag(tag string) error {
	if len(tag) != 3 {
		return fmt.Errorf("%w: %q is not three characters", errs.ErrInvalidTag, tag)
	}
	for i := 0; i < 3; i++ {
		if tag[i] < '0' || tag[i] > '9' {
			return fmt.Errorf("%w: %q is not numeric", errs.ErrInvalidTag, tag)
		}
	}

	return nil
}

// validIndicator reports whether c is a legal indicator: a digit or blank.
func validIndicator(c byte) bool {
	return c == ' ' || (c >= '0' && c <= '9')
}
