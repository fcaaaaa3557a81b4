package compress

// ZstdCodec reads and writes Zstandard streams.
//
// The implementation is selected at build time: the cgo-backed
// valyala/gozstd library when cgo is available, the pure-Go
// klauspost/compress/zstd implementation otherwise. Both produce and accept
// standard zstd frames, so files are interchangeable between builds.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
