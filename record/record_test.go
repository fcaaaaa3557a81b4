package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibkit/marc21/errs"
)

// buildTestRecord creates a small but realistic bibliographic record.
func buildTestRecord(t *testing.T) *Record {
	t.Helper()

	r := New()

	cf, err := NewControlField("001", "ocm123456")
	require.NoError(t, err)
	r.AppendField(cf)

	author, err := NewDataField("100", '1', ' ',
		Subfield{Code: 'a', Value: "Wall, Larry."})
	require.NoError(t, err)
	r.AppendField(author)

	title, err := NewDataField("245", '1', '0',
		Subfield{Code: 'a', Value: "Programming Perl /"},
		Subfield{Code: 'c', Value: "Larry Wall, Tom Christiansen & Jon Orwant."})
	require.NoError(t, err)
	r.AppendField(title)

	return r
}

func TestNewRecordIsEmpty(t *testing.T) {
	r := New()
	require.Zero(t, r.Len())
	require.Empty(t, r.Warnings())
	require.Len(t, r.Leader().String(), 24)
}

func TestFieldOrderIsInsertionOrder(t *testing.T) {
	r := buildTestRecord(t)

	tags := make([]string, 0, r.Len())
	for _, f := range r.Fields() {
		tags = append(tags, f.Tag())
	}
	require.Equal(t, []string{"001", "100", "245"}, tags)
}

func TestFieldLookup(t *testing.T) {
	r := buildTestRecord(t)

	f := r.Field("245")
	require.NotNil(t, f)
	require.Equal(t, "245", f.Tag())

	require.Nil(t, r.Field("999"))
	require.Nil(t, r.Field("24"))
}

func TestFieldsByTagWildcard(t *testing.T) {
	r := buildTestRecord(t)

	extra, err := NewDataField("110", '2', ' ',
		Subfield{Code: 'a', Value: "O'Reilly & Associates."})
	require.NoError(t, err)
	r.AppendField(extra)

	matches := r.FieldsByTag("1XX")
	require.Len(t, matches, 2)
	require.Equal(t, "100", matches[0].Tag())
	require.Equal(t, "110", matches[1].Tag())

	require.Empty(t, r.FieldsByTag("9XX"))
	require.Nil(t, r.FieldsByTag("bad"))
}

func TestDeleteFieldByHandle(t *testing.T) {
	r := New()

	// Two value-equal fields; handles keep them apart.
	first, err := NewDataField("650", ' ', '0', Subfield{Code: 'a', Value: "Cats."})
	require.NoError(t, err)
	second, err := NewDataField("650", ' ', '0', Subfield{Code: 'a', Value: "Cats."})
	require.NoError(t, err)

	h1 := r.AppendField(first)
	h2 := r.AppendField(second)
	require.NotEqual(t, h1, h2)

	require.NoError(t, r.DeleteField(h1))
	require.Equal(t, 1, r.Len())

	got, ok := r.FieldByHandle(h2)
	require.True(t, ok)
	require.Same(t, second, got)

	_, ok = r.FieldByHandle(h1)
	require.False(t, ok)

	require.ErrorIs(t, r.DeleteField(h1), errs.ErrNoSuchField)
}

func TestAppendFieldDrainsConstructionWarnings(t *testing.T) {
	r := New()

	f, err := NewDataField("245", '!', '0', Subfield{Code: 'a', Value: "Title."})
	require.NoError(t, err)
	require.Len(t, f.Warnings(), 1)

	r.AppendField(f)
	require.Len(t, r.Warnings(), 1)
	require.Contains(t, r.Warnings()[0], "forced to blank")
	require.Empty(t, f.Warnings())
}

func TestSetLeader(t *testing.T) {
	r := New()

	require.NoError(t, r.SetLeader("00000nam a2200000 a 4500"))
	require.Equal(t, "00000nam a2200000 a 4500", r.Leader().String())

	require.ErrorIs(t, r.SetLeader("too short"), errs.ErrInvalidLeader)
}

func TestControlNumber(t *testing.T) {
	r := buildTestRecord(t)
	require.Equal(t, "ocm123456", r.ControlNumber())
	require.Empty(t, New().ControlNumber())
}

func TestRecordDisplayString(t *testing.T) {
	r := New()
	require.NoError(t, r.SetLeader("00000nam a2200000 a 4500"))

	f, err := NewDataField("100", '1', ' ', Subfield{Code: 'a', Value: "Wall, Larry."})
	require.NoError(t, err)
	r.AppendField(f)

	require.Equal(t,
		"LDR 00000nam a2200000 a 4500\n100 1  _aWall, Larry.",
		r.DisplayString())
}
