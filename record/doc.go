// Package record implements the in-memory model and binary codec for MARC21
// bibliographic records.
//
// A Record owns an ordered collection of Fields plus a 24-byte leader. Fields
// are either control fields (tags "001".."009", a single opaque data string)
// or data fields (tags "010" and above, two indicators plus one or more coded
// subfields). Decode hydrates a Record from the directory-based binary
// layout; Record.Encode reproduces it byte-for-byte, recomputing the leader's
// record length and base address as the only leader mutation the package
// ever performs.
//
// Decoding separates fatal conditions from advisory ones. Structural damage
// (bad length digits, a directory that is not a whole number of entries,
// field data the directory does not describe) aborts with a sentinel error
// from the errs package and no partial Record. Recoverable oddities (an
// invalid indicator, a directory length or offset that disagrees with the
// data, a wrong record terminator) are appended to the Record's warning list
// and decoding continues.
//
// Note: a Record and its Fields are exclusively owned by the caller. Nothing
// in this package is safe for concurrent mutation.
package record
