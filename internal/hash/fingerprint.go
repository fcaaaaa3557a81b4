// Package hash computes record fingerprints for duplicate detection.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a record's raw bytes.
//
// Two byte-identical records always share a fingerprint; distinct records
// collide with ordinary 64-bit hash probability, which is acceptable for the
// advisory dedup in marcio.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintString computes the xxHash64 of a string, typically a control
// number from field 001.
func FingerprintString(s string) uint64 {
	return xxhash.Sum64String(s)
}
