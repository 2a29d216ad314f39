// Package validation evaluates ordered, declarative rules against a field value.
//
// Rules are data. Evaluate walks them in the order supplied and reports the
// message of the first one the value violates, so callers control which
// message wins by ordering their rules.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Kind tags the condition a Rule checks.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindPattern
	KindMinLength
	KindMaxLength
)

var kindNames = map[Kind]string{
	KindRequired:  "required",
	KindPattern:   "pattern",
	KindMinLength: "minLength",
	KindMaxLength: "maxLength",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a rule type name such as "minLength" into a Kind.
// Matching ignores case and accepts snake_case spellings.
func ParseKind(name string) (Kind, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for kind, known := range kindNames {
		if strings.ToLower(known) == normalized {
			return kind, true
		}
	}
	return 0, false
}

// Rule is one declarative condition with the message shown when it fails.
// A malformed rule (no pattern, a negative limit, an unknown kind) never fails.
type Rule struct {
	kind    Kind
	pattern *regexp.Regexp
	limit   int
	message string
}

// Required fails on an empty value.
func Required(message string) Rule {
	return Rule{kind: KindRequired, message: message}
}

// Pattern fails when the value does not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{kind: KindPattern, pattern: re, message: message}
}

// PatternString compiles expr and behaves like Pattern. An expression that
// does not compile yields a rule that never fails.
func PatternString(expr, message string) Rule {
	re, err := regexp.Compile(expr)
	if err != nil {
		re = nil
	}
	return Pattern(re, message)
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{kind: KindMinLength, limit: n, message: message}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int, message string) Rule {
	return Rule{kind: KindMaxLength, limit: n, message: message}
}

// FromSpec builds a rule from loosely typed data such as a decoded YAML
// document. Values that do not fit the kind produce a rule that never fails:
// pattern rules need a string or *regexp.Regexp, length rules need a whole number.
func FromSpec(kind string, value any, message string) Rule {
	parsed, ok := ParseKind(kind)
	if !ok {
		return Rule{message: message}
	}

	switch parsed {
	case KindRequired:
		return Required(message)
	case KindPattern:
		switch v := value.(type) {
		case *regexp.Regexp:
			return Pattern(v, message)
		case string:
			return PatternString(v, message)
		default:
			return Pattern(nil, message)
		}
	default:
		limit, ok := wholeNumber(value)
		if !ok {
			limit = -1
		}
		return Rule{kind: parsed, limit: limit, message: message}
	}
}

// wholeNumber converts a numeric limit to an int. Limits past math.MaxInt
// are clamped; NaN, infinities and fractions are not whole numbers.
func wholeNumber(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		if v > math.MaxInt {
			return math.MaxInt, true
		}
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return math.MaxInt, true
		}
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		if v >= math.MaxInt {
			return math.MaxInt, true
		}
		if v <= math.MinInt {
			return math.MinInt, true
		}
		return int(v), true
	default:
		return 0, false
	}
}

// Kind returns the rule tag.
func (r Rule) Kind() Kind { return r.kind }

// Message returns the text reported when the rule fails.
func (r Rule) Message() string { return r.message }

// Limit returns the length bound of a minLength or maxLength rule.
func (r Rule) Limit() int { return r.limit }

// Pattern returns the expression of a pattern rule, or nil.
func (r Rule) Pattern() *regexp.Regexp { return r.pattern }

// Malformed reports whether the rule is skipped during evaluation.
func (r Rule) Malformed() bool {
	switch r.kind {
	case KindRequired:
		return false
	case KindPattern:
		return r.pattern == nil
	case KindMinLength, KindMaxLength:
		return r.limit < 0
	default:
		return true
	}
}

func (r Rule) String() string {
	switch r.kind {
	case KindPattern:
		if r.pattern != nil {
			return fmt.Sprintf("pattern(%s)", r.pattern.String())
		}
	case KindMinLength, KindMaxLength:
		return fmt.Sprintf("%s(%d)", r.kind, r.limit)
	}
	return r.kind.String()
}
