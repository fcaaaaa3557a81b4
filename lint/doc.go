// Package lint checks MARC records against a declarative rule table.
//
// The rules describe, per tag, whether the field is repeatable, which
// characters each indicator may hold, and which subfield codes are allowed
// and repeatable. A default MARC21 bibliographic table ships embedded in the
// package; callers with local cataloging profiles can supply their own.
//
// Findings are never fatal. Invalid MARC data is the expected common case
// being diagnosed, so every finding accumulates as a warning string on a
// per-call Result and checking always runs to completion. A Linter's rule
// table is immutable after construction, which makes concurrent Check calls
// on the same Linter safe; each call gets its own Result.
package lint
