// Package marcio reads and writes streams of binary MARC records.
//
// The binary exchange format is a simple concatenation of records, each
// carrying its own 5-digit length prefix, so the Reader peels one record's
// bytes off the stream at a time and hands the whole buffer to
// record.Decode. The Writer is the mirror image. Both can transparently
// wrap the stream with a compression codec, and the Reader can skip
// byte-identical duplicate records.
//
// The package also decodes MicroLIF, a line-oriented human-editable text
// format for single records, through the same Record construction API.
package marcio
