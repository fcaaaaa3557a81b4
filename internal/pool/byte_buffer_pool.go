package pool

import (
	"io"
	"sync"
)

const (
	// RecordBufferDefaultSize is the default capacity of a pooled buffer.
	// Most bibliographic records encode well under 4KiB.
	RecordBufferDefaultSize = 4 * 1024

	// RecordBufferMaxThreshold is the largest buffer the pool will retain.
	// Buffers that grew beyond this are dropped instead of pooled to avoid
	// pinning memory after one oversized record.
	RecordBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteString appends a string to the buffer.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

var recordBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(RecordBufferDefaultSize)
	},
}

// GetRecordBuffer retrieves a reset ByteBuffer sized for record encoding.
func GetRecordBuffer() *ByteBuffer {
	bb, _ := recordBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutRecordBuffer returns a ByteBuffer to the pool for reuse. Oversized
// buffers are dropped.
func PutRecordBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > RecordBufferMaxThreshold {
		return
	}
	recordBufferPool.Put(bb)
}
