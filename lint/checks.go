package lint

import "github.com/bibkit/marc21/record"

// builtinChecks are the per-tag checks every new Linter starts with, keyed
// by tag. Callers can override or remove individual entries with
// RegisterCheck.
var builtinChecks = map[string]CheckFunc{
	"245": check245,
	"260": check260,
}

// check245 requires a title proper: 245 must carry a subfield _a.
func check245(res *Result, f *record.Field) {
	if _, ok, err := f.Subfield('a'); err != nil || !ok {
		res.Warn("245: Must have a subfield _a.")
	}
}

// check260 requires a date of publication: 260 must carry a subfield _c.
func check260(res *Result, f *record.Field) {
	if _, ok, err := f.Subfield('c'); err != nil || !ok {
		res.Warn("260: Must have a subfield _c.")
	}
}
