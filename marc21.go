// Package marc21 reads, writes and validates MARC21 bibliographic records.
//
// A record is modeled by the record package: a 24-byte leader plus an
// ordered list of control fields and data fields. The binary directory-based
// exchange format round-trips byte-for-byte, and the lint package checks
// records against a declarative MARC21 rule table.
//
// # Basic Usage
//
// Decoding and validating a record:
//
//	rec, err := marc21.Decode(raw)
//	if err != nil {
//	    return err
//	}
//
//	linter, _ := marc21.NewLinter()
//	res, _ := linter.Check(rec)
//	for _, warning := range res.Warnings() {
//	    fmt.Println(warning)
//	}
//
// Building a record from scratch:
//
//	rec := marc21.NewRecord()
//	title, _ := record.NewDataField("245", '1', '0',
//	    record.Subfield{Code: 'a', Value: "Programming Perl /"})
//	rec.AppendField(title)
//	raw := rec.Encode()
//
// Reading a file of records:
//
//	r, _ := marcio.NewReader(f, marcio.WithCompression(format.CompressionGzip))
//	for {
//	    rec, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the record,
// lint and marcio packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package marc21

import (
	"io"

	"github.com/bibkit/marc21/lint"
	"github.com/bibkit/marc21/marcio"
	"github.com/bibkit/marc21/record"
)

// NewRecord creates an empty record with a blank leader.
func NewRecord() *record.Record {
	return record.New()
}

// Decode parses one complete binary MARC21 record.
func Decode(data []byte) (*record.Record, error) {
	return record.Decode(data)
}

// NewLinter creates a linter using the embedded MARC21 bibliographic rule
// table.
func NewLinter() (*lint.Linter, error) {
	return lint.NewLinter()
}

// NewReader creates a reader over a stream of binary MARC records.
func NewReader(r io.Reader, opts ...marcio.ReaderOption) (*marcio.Reader, error) {
	return marcio.NewReader(r, opts...)
}

// NewWriter creates a writer that appends encoded records to a stream.
func NewWriter(w io.Writer, opts ...marcio.WriterOption) (*marcio.Writer, error) {
	return marcio.NewWriter(w, opts...)
}
