package marcio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibkit/marc21/errs"
)

const microLIFSample = "LDR00000nam  2200000 a 4500\n" +
	"001ocm123456\n" +
	"1001 _aWall, Larry.\n" +
	"24510_aProgramming Perl /_cLarry Wall.\n" +
	"`\n"

func TestDecodeMicroLIF(t *testing.T) {
	r, err := DecodeMicroLIF([]byte(microLIFSample))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	require.Equal(t, "ocm123456", r.ControlNumber())
	require.Equal(t, "00000nam  2200000 a 4500", r.Leader().String())

	title := r.Field("245")
	require.NotNil(t, title)

	ind2, err := title.Indicator(2)
	require.NoError(t, err)
	require.Equal(t, byte('0'), ind2)

	value, ok, err := title.Subfield('c')
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Larry Wall.", value)
}

func TestDecodeMicroLIFLineEndings(t *testing.T) {
	crlf := "001ocm1\r\n24510_aTitle.\r\n`\r\n"
	r, err := DecodeMicroLIF([]byte(crlf))
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	cr := "001ocm1\r24510_aTitle.\r`\r"
	r, err = DecodeMicroLIF([]byte(cr))
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
}

func TestDecodeMicroLIFRoundTripsThroughBinary(t *testing.T) {
	r, err := DecodeMicroLIF([]byte(microLIFSample))
	require.NoError(t, err)

	data := r.Encode()
	require.Equal(t, len(data), r.Leader().RecordLength())
}

func TestDecodeMicroLIFCoercesIndicators(t *testing.T) {
	r, err := DecodeMicroLIF([]byte("245z0_aTitle.\n`\n"))
	require.NoError(t, err)
	require.Len(t, r.Warnings(), 1)
	require.Contains(t, r.Warnings()[0], "forced to blank")
}

func TestDecodeMicroLIFErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "only terminator", data: "`\n"},
		{name: "short line", data: "24\n"},
		{name: "data field without subfields", data: "24510\n"},
		{name: "bad tag", data: "2x5 10_aTitle.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMicroLIF([]byte(tt.data))
			require.ErrorIs(t, err, errs.ErrMalformedLIF)
		})
	}
}
