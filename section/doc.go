// Package section defines the fixed-layout pieces of the MARC21 binary
// record: the 24-byte leader, the 12-byte directory entries, and the
// delimiter bytes that frame field data.
//
// The layout is pure ASCII decimal; there are no multi-byte binary integers
// anywhere in the format. All parsing here is fixed-width digit handling.
package section
