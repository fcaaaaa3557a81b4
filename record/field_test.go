package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibkit/marc21/errs"
)

func TestNewControlField(t *testing.T) {
	f, err := NewControlField("001", "ocm123456")
	require.NoError(t, err)
	require.Equal(t, "001", f.Tag())
	require.True(t, f.IsControl())

	data, err := f.Data()
	require.NoError(t, err)
	require.Equal(t, "ocm123456", data)
}

func TestNewControlFieldInvalidTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{name: "too short", tag: "1"},
		{name: "too long", tag: "0010"},
		{name: "non-numeric", tag: "0a1"},
		{name: "empty", tag: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewControlField(tt.tag, "data")
			require.ErrorIs(t, err, errs.ErrInvalidTag)
		})
	}
}

func TestNewControlFieldRejectsDataTag(t *testing.T) {
	_, err := NewControlField("245", "data")
	require.ErrorIs(t, err, errs.ErrNotControlField)
}

func TestNewDataField(t *testing.T) {
	f, err := NewDataField("245", '1', '0',
		Subfield{Code: 'a', Value: "Programming Perl /"},
		Subfield{Code: 'c', Value: "Larry Wall."},
	)
	require.NoError(t, err)
	require.Equal(t, "245", f.Tag())
	require.False(t, f.IsControl())
	require.Empty(t, f.Warnings())

	ind1, err := f.Indicator(1)
	require.NoError(t, err)
	require.Equal(t, byte('1'), ind1)

	ind2, err := f.Indicator(2)
	require.NoError(t, err)
	require.Equal(t, byte('0'), ind2)

	value, ok, err := f.Subfield('a')
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Programming Perl /", value)

	_, ok, err = f.Subfield('z')
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNewDataFieldRejectsControlTag(t *testing.T) {
	_, err := NewDataField("001", ' ', ' ', Subfield{Code: 'a', Value: "x"})
	require.ErrorIs(t, err, errs.ErrNotDataField)
}

func TestNewDataFieldRequiresSubfields(t *testing.T) {
	_, err := NewDataField("245", '1', '0')
	require.ErrorIs(t, err, errs.ErrMissingSubfields)
}

func TestNewDataFieldCoercesInvalidIndicators(t *testing.T) {
	f, err := NewDataField("245", 'z', '0', Subfield{Code: 'a', Value: "Title."})
	require.NoError(t, err)

	ind1, err := f.Indicator(1)
	require.NoError(t, err)
	require.Equal(t, byte(' '), ind1)

	ind2, err := f.Indicator(2)
	require.NoError(t, err)
	require.Equal(t, byte('0'), ind2)

	require.Len(t, f.Warnings(), 1)
	require.Contains(t, f.Warnings()[0], "forced to blank")
}

func TestRepeatedSubfieldCodes(t *testing.T) {
	f, err := NewDataField("650", ' ', '0',
		Subfield{Code: 'a', Value: "Perl (Computer program language)"},
		Subfield{Code: 'a', Value: "Scripting languages."},
	)
	require.NoError(t, err)

	// Subfield returns the first match in sequence order.
	value, ok, err := f.Subfield('a')
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Perl (Computer program language)", value)
	require.Len(t, f.Subfields(), 2)
}

func TestAddSubfields(t *testing.T) {
	f, err := NewDataField("245", '1', '0', Subfield{Code: 'a', Value: "Title /"})
	require.NoError(t, err)

	n, err := f.AddSubfields(
		Subfield{Code: 'b', Value: "remainder :"},
		Subfield{Code: 'c', Value: "statement."},
	)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, f.Subfields(), 3)

	cf, err := NewControlField("008", "data")
	require.NoError(t, err)
	_, err = cf.AddSubfields(Subfield{Code: 'a', Value: "x"})
	require.ErrorIs(t, err, errs.ErrNotDataField)
}

func TestControlFieldAccessors(t *testing.T) {
	f, err := NewControlField("005", "20260829120000.0")
	require.NoError(t, err)

	require.NoError(t, f.SetData("20260829130000.0"))
	data, err := f.Data()
	require.NoError(t, err)
	require.Equal(t, "20260829130000.0", data)

	_, err = f.Indicator(1)
	require.ErrorIs(t, err, errs.ErrNotIndicatorField)

	_, ok, err := f.Subfield('a')
	require.ErrorIs(t, err, errs.ErrNotDataField)
	require.False(t, ok)

	df, err := NewDataField("100", '1', ' ', Subfield{Code: 'a', Value: "Wall, Larry."})
	require.NoError(t, err)
	_, err = df.Data()
	require.ErrorIs(t, err, errs.ErrNotControlField)
	require.ErrorIs(t, df.SetData("x"), errs.ErrNotControlField)

	_, err = df.Indicator(3)
	require.ErrorIs(t, err, errs.ErrInvalidIndicatorNumber)
}

func TestFieldDisplayString(t *testing.T) {
	f, err := NewDataField("245", '1', '0',
		Subfield{Code: 'a', Value: "Programming Perl /"},
		Subfield{Code: 'c', Value: "Larry Wall."},
	)
	require.NoError(t, err)
	require.Equal(t,
		"245 10 _aProgramming Perl /\n       _cLarry Wall.",
		f.DisplayString())

	cf, err := NewControlField("001", "ocm123456")
	require.NoError(t, err)
	require.Equal(t, "001     ocm123456", cf.DisplayString())
}

func TestFieldBinary(t *testing.T) {
	f, err := NewDataField("100", '1', ' ', Subfield{Code: 'a', Value: "Wall, Larry."})
	require.NoError(t, err)
	require.Equal(t, []byte("1 \x1faWall, Larry.\x1e"), f.Binary())

	cf, err := NewControlField("001", "ocm123456")
	require.NoError(t, err)
	require.Equal(t, []byte("ocm123456\x1e"), cf.Binary())
}
