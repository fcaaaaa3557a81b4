package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("00044       00037       001000600000\x1e12345\x1e\x1d"))
	b := Fingerprint([]byte("00044       00037       001000600000\x1e12345\x1e\x1d"))
	require.Equal(t, a, b)

	c := Fingerprint([]byte("00044       00037       001000600000\x1e54321\x1e\x1d"))
	require.NotEqual(t, a, c)
}

func TestFingerprintString(t *testing.T) {
	require.Equal(t, FingerprintString("ocm123456"), Fingerprint([]byte("ocm123456")))
	require.NotEqual(t, FingerprintString("ocm123456"), FingerprintString("ocm123457"))
}
