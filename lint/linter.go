package lint

import (
	"fmt"

	"github.com/bibkit/marc21/errs"
	"github.com/bibkit/marc21/record"
	"github.com/bibkit/marc21/section"
)

// CheckFunc is a per-tag custom check. It inspects one field and reports
// findings through res.Warn. Custom checks run after the rule-table checks
// for their field.
type CheckFunc func(res *Result, f *record.Field)

// Result collects the findings of a single Check call, in the order they
// were raised.
type Result struct {
	warnings []string
}

// Warn appends a finding. It is exported so custom CheckFuncs can report
// through the same channel as the built-in checks.
func (res *Result) Warn(text string) {
	res.warnings = append(res.warnings, text)
}

// Warnings returns the accumulated findings in order.
func (res *Result) Warnings() []string {
	return res.warnings
}

// Linter checks records against a rule table.
//
// The rule table and the check registry are fixed at construction (aside
// from explicit RegisterCheck calls, which must not race with Check); each
// Check call returns a fresh Result, so one Linter may validate many records
// concurrently.
type Linter struct {
	rules  *RuleSet
	checks map[string]CheckFunc
}

// NewLinter creates a Linter using the embedded MARC21 bibliographic rule
// table and the built-in per-tag checks.
func NewLinter() (*Linter, error) {
	rules, err := DefaultRules()
	if err != nil {
		return nil, err
	}

	return NewLinterFromRules(rules), nil
}

// NewLinterFromRules creates a Linter over a caller-supplied rule table, for
// local cataloging profiles. The built-in per-tag checks are registered;
// RegisterCheck overrides them.
func NewLinterFromRules(rules *RuleSet) *Linter {
	l := &Linter{
		rules:  rules,
		checks: make(map[string]CheckFunc, len(builtinChecks)),
	}
	for tag, fn := range builtinChecks {
		l.checks[tag] = fn
	}

	return l
}

// RegisterCheck installs (or overrides) the custom check for a tag. A nil fn
// removes the check. Tags without an entry simply have no custom check.
func (l *Linter) RegisterCheck(tag string, fn CheckFunc) {
	if fn == nil {
		delete(l.checks, tag)
		return
	}
	l.checks[tag] = fn
}

// Check validates one record and returns the findings.
//
// Global checks run first: at most one 1XX field, and a 245 must be present.
// Then every field whose tag appears in the rule table is checked in record
// order: field repeatability, then both indicators, then each subfield
// (allowed, then repeatable) in sequence order, then the tag's custom check.
//
// Returns:
//   - *Result: the ordered findings; empty for a clean record
//   - error: ErrNotARecord if r is nil
func (l *Linter) Check(r *record.Record) (*Result, error) {
	if r == nil {
		return nil, errs.ErrNotARecord
	}

	res := &Result{}

	if n := len(r.FieldsByTag("1XX")); n > 1 {
		res.Warn(fmt.Sprintf("1XX: Only one 1XX tag is allowed, but I found %d of them.", n))
	}
	if r.Field("245") == nil {
		res.Warn("245: No 245 tag.")
	}

	seenTags := make(map[string]bool)
	for _, f := range r.Fields() {
		tag := f.Tag()
		rule, ok := l.rules.Rule(tag)
		if !ok {
			continue
		}

		if !rule.Repeatable && seenTags[tag] {
			res.Warn(fmt.Sprintf("%s: Field is not repeatable.", tag))
		}
		seenTags[tag] = true

		if tag >= section.ControlTagLimit {
			l.checkIndicators(res, f, rule)
			l.checkSubfields(res, f, rule)
		}

		if check := l.checks[tag]; check != nil {
			check(res, f)
		}
	}

	return res, nil
}

func (l *Linter) checkIndicators(res *Result, f *record.Field, rule Rule) {
	indRules := [2]IndicatorRule{rule.Ind1, rule.Ind2}
	for n := 1; n <= 2; n++ {
		ir := indRules[n-1]
		if !ir.Constrained() {
			continue
		}
		ind, err := f.Indicator(n)
		if err != nil {
			continue
		}
		if !ir.Allows(ind) {
			res.Warn(fmt.Sprintf("%s: Indicator %d must be %s but it's %q",
				f.Tag(), n, ir.Describe(), string(ind)))
		}
	}
}

func (l *Linter) checkSubfields(res *Result, f *record.Field, rule Rule) {
	seen := make(map[byte]bool)
	for _, sf := range f.Subfields() {
		sfRule, allowed := rule.Subfields[sf.Code]
		switch {
		case !allowed:
			res.Warn(fmt.Sprintf("%s: Subfield _%s is not allowed.", f.Tag(), string(sf.Code)))
		case !sfRule.Repeatable && seen[sf.Code]:
			res.Warn(fmt.Sprintf("%s: Subfield _%s is not repeatable.", f.Tag(), string(sf.Code)))
		}
		seen[sf.Code] = true
	}
}
