package lint

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bibkit/marc21/errs"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// IndicatorRule is the set of characters one indicator may hold. The empty
// rule places no constraint; a rule of " " requires the indicator to be
// blank.
type IndicatorRule struct {
	allowed string
}

// Constrained reports whether the rule restricts the indicator at all.
func (ir IndicatorRule) Constrained() bool {
	return ir.allowed != ""
}

// Allows reports whether c is an acceptable indicator value.
func (ir IndicatorRule) Allows(c byte) bool {
	if !ir.Constrained() {
		return true
	}

	return strings.IndexByte(ir.allowed, c) >= 0
}

// Describe renders the allowed set for warning messages, e.g. "0 or 1" or
// "blank or 2 or 3".
func (ir IndicatorRule) Describe() string {
	parts := make([]string, 0, len(ir.allowed))
	for i := 0; i < len(ir.allowed); i++ {
		if ir.allowed[i] == ' ' {
			parts = append(parts, "blank")
		} else {
			parts = append(parts, string(ir.allowed[i]))
		}
	}

	return strings.Join(parts, " or ")
}

// SubfieldRule is the cardinality of one subfield code within its field.
type SubfieldRule struct {
	// Repeatable reports whether the code may occur more than once per field.
	Repeatable bool
}

// Rule is the complete rule set for one tag.
type Rule struct {
	// Tag is the 3-digit field tag the rule applies to.
	Tag string

	// Repeatable reports whether the field may occur more than once per
	// record.
	Repeatable bool

	// Ind1 and Ind2 constrain the two indicators. Unset for control fields.
	Ind1, Ind2 IndicatorRule

	// Subfields maps each allowed subfield code to its cardinality. Codes
	// absent from the map are not allowed in the field.
	Subfields map[byte]SubfieldRule
}

// RuleSet is an immutable tag-to-rule table, shared read-only across checks.
type RuleSet struct {
	rules map[string]Rule
}

// Rule returns the rule for tag. ok reports whether the table has one.
func (rs *RuleSet) Rule(tag string) (Rule, bool) {
	r, ok := rs.rules[tag]
	return r, ok
}

// Len returns the number of tags in the table.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// ruleYAML is the on-disk shape of one rule entry.
type ruleYAML struct {
	Tag        string            `yaml:"tag"`
	Repeatable bool              `yaml:"repeatable"`
	Ind1       string            `yaml:"ind1"`
	Ind2       string            `yaml:"ind2"`
	Subfields  map[string]string `yaml:"subfields"`
}

type rulesFileYAML struct {
	Fields []ruleYAML `yaml:"fields"`
}

// ParseRules loads a rule table from its YAML form.
//
// Each entry carries a quoted 3-digit tag, a repeatable flag, the allowed
// character enumerations for both indicators (" " meaning blank-only, absent
// meaning unconstrained), and a code-to-cardinality subfield map with values
// "R" or "NR".
func ParseRules(data []byte) (*RuleSet, error) {
	var file rulesFileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRules, err)
	}

	rs := &RuleSet{rules: make(map[string]Rule, len(file.Fields))}
	for _, entry := range file.Fields {
		rule, err := entry.toRule()
		if err != nil {
			return nil, err
		}
		if _, dup := rs.rules[rule.Tag]; dup {
			return nil, fmt.Errorf("%w: duplicate tag %s", errs.ErrInvalidRules, rule.Tag)
		}
		rs.rules[rule.Tag] = rule
	}

	return rs, nil
}

func (ry ruleYAML) toRule() (Rule, error) {
	if len(ry.Tag) != 3 {
		return Rule{}, fmt.Errorf("%w: tag %q is not three characters", errs.ErrInvalidRules, ry.Tag)
	}
	for i := 0; i < 3; i++ {
		if ry.Tag[i] < '0' || ry.Tag[i] > '9' {
			return Rule{}, fmt.Errorf("%w: tag %q is not numeric", errs.ErrInvalidRules, ry.Tag)
		}
	}

	rule := Rule{Tag: ry.Tag, Repeatable: ry.Repeatable}

	var err error
	if rule.Ind1, err = parseIndicatorRule(ry.Tag, 1, ry.Ind1); err != nil {
		return Rule{}, err
	}
	if rule.Ind2, err = parseIndicatorRule(ry.Tag, 2, ry.Ind2); err != nil {
		return Rule{}, err
	}

	if len(ry.Subfields) > 0 {
		rule.Subfields = make(map[byte]SubfieldRule, len(ry.Subfields))
		for code, card := range ry.Subfields {
			if len(code) != 1 || !validSubfieldCode(code[0]) {
				return Rule{}, fmt.Errorf("%w: tag %s has invalid subfield code %q",
					errs.ErrInvalidRules, ry.Tag, code)
			}
			switch card {
			case "R":
				rule.Subfields[code[0]] = SubfieldRule{Repeatable: true}
			case "NR":
				rule.Subfields[code[0]] = SubfieldRule{Repeatable: false}
			default:
				return Rule{}, fmt.Errorf("%w: tag %s subfield _%s cardinality %q is not R or NR",
					errs.ErrInvalidRules, ry.Tag, code, card)
			}
		}
	}

	return rule, nil
}

func parseIndicatorRule(tag string, n int, allowed string) (IndicatorRule, error) {
	for i := 0; i < len(allowed); i++ {
		c := allowed[i]
		if c != ' ' && (c < '0' || c > '9') {
			return IndicatorRule{}, fmt.Errorf("%w: tag %s indicator %d allows invalid character %q",
				errs.ErrInvalidRules, tag, n, string(c))
		}
	}

	return IndicatorRule{allowed: allowed}, nil
}

// validSubfieldCode reports whether c is a legal subfield code: a lowercase
// letter or a digit.
func validSubfieldCode(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

var (
	defaultRulesOnce sync.Once
	defaultRules     *RuleSet
	defaultRulesErr  error
)

// DefaultRules returns the embedded MARC21 bibliographic rule table. The
// table is parsed once and shared; it is immutable.
func DefaultRules() (*RuleSet, error) {
	defaultRulesOnce.Do(func() {
		defaultRules, defaultRulesErr = ParseRules(defaultRulesYAML)
	})

	return defaultRules, defaultRulesErr
}
