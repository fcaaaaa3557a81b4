package compress

import (
	"fmt"
	"io"

	"github.com/bibkit/marc21/format"
)

// Codec wraps a byte stream with compression.
//
// NewReader returns a stream that yields the decompressed bytes of r;
// NewWriter returns a stream that compresses everything written to it into w.
// Closing the returned writer flushes the codec's trailer but does not close
// the underlying writer.
type Codec interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NoOpCodec{},
	format.CompressionGzip: GzipCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionS2:   S2Codec{},
	format.CompressionLZ4:  LZ4Codec{},
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
