// Package compress provides stream codecs for reading and writing compressed
// MARC files.
//
// MARC exchange files are routinely shipped compressed; marcio wraps its
// underlying stream with one of these codecs when asked. Each codec wraps an
// io.Reader or io.Writer with the corresponding (de)compression stream:
// gzip, Zstandard, S2 and LZ4 are supported, plus a no-op codec for plain
// files. Zstandard uses the cgo-backed valyala/gozstd implementation when cgo
// is available and falls back to the pure-Go klauspost implementation
// otherwise.
package compress
