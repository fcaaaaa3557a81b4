package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibkit/marc21/errs"
)

func TestParseDirectory(t *testing.T) {
	entries, err := ParseDirectory([]byte("001001000000" + "245004500010"))
	require.NoError(t, err)
	require.Equal(t, []DirectoryEntry{
		{Tag: "001", Length: 10, Offset: 0},
		{Tag: "245", Length: 45, Offset: 10},
	}, entries)
}

func TestParseDirectoryEmpty(t *testing.T) {
	entries, err := ParseDirectory(nil)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestParseDirectoryBadSize(t *testing.T) {
	_, err := ParseDirectory([]byte("00100100000"))
	require.ErrorIs(t, err, errs.ErrMalformedDirectory)
}

func TestParseDirectoryNonDigit(t *testing.T) {
	_, err := ParseDirectory([]byte("0010010x0000"))
	require.ErrorIs(t, err, errs.ErrMalformedDirectory)
}

func TestDirectoryEntryAppendTo(t *testing.T) {
	entry := DirectoryEntry{Tag: "245", Length: 45, Offset: 10}
	require.Equal(t, []byte("245004500010"), entry.AppendTo(nil))
}

func TestDirectoryEntryRoundTrip(t *testing.T) {
	want := DirectoryEntry{Tag: "650", Length: 9999, Offset: 99999}

	entries, err := ParseDirectory(want.AppendTo(nil))
	require.NoError(t, err)
	require.Equal(t, []DirectoryEntry{want}, entries)
}
