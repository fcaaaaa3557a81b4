package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Zero(t, bb.Len())

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.NoError(t, bb.WriteByte(' '))
	_, err = bb.WriteString("world")
	require.NoError(t, err)

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, err := bb.WriteString("payload")
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestRecordBufferPool(t *testing.T) {
	bb := GetRecordBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	_, err := bb.WriteString("record bytes")
	require.NoError(t, err)
	PutRecordBuffer(bb)

	// A fresh Get always hands back a reset buffer.
	again := GetRecordBuffer()
	require.Zero(t, again.Len())
	PutRecordBuffer(again)

	// Oversized buffers are dropped, nil is tolerated.
	huge := NewByteBuffer(RecordBufferMaxThreshold * 2)
	PutRecordBuffer(huge)
	PutRecordBuffer(nil)
}
