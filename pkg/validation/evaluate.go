package validation

import "unicode/utf8"

// Result describes the outcome of evaluating a rule list.
type Result struct {
	// Failed is true when some rule was violated.
	Failed bool
	// Message is the violated rule's message.
	Message string
	// Index is the position of the violated rule, or -1.
	Index int
}

// Valid is the result of an evaluation that found no violation.
var Valid = Result{Index: -1}

// Evaluate returns the message of the first rule value violates.
//
// A nil value means the field has not been interacted with yet; evaluation
// is skipped and no error is reported, even for required rules.
func Evaluate(value *string, rules []Rule) (message string, failed bool) {
	res := EvaluateResult(value, rules)
	return res.Message, res.Failed
}

// Check evaluates a value that is known to be set.
func Check(value string, rules []Rule) (message string, failed bool) {
	return Evaluate(&value, rules)
}

// EvaluateResult is Evaluate with the index of the violated rule.
func EvaluateResult(value *string, rules []Rule) Result {
	if value == nil {
		return Valid
	}
	for i, rule := range rules {
		if rule.violatedBy(*value) {
			return Result{Failed: true, Message: rule.message, Index: i}
		}
	}
	return Valid
}

func (r Rule) violatedBy(value string) bool {
	if r.Malformed() {
		return false
	}
	switch r.kind {
	case KindRequired:
		return violatesRequired(value)
	case KindPattern:
		return violatesPattern(r, value)
	case KindMinLength:
		return violatesMinLength(r, value)
	case KindMaxLength:
		return violatesMaxLength(r, value)
	default:
		return false
	}
}

func violatesRequired(value string) bool {
	return value == ""
}

func violatesPattern(r Rule, value string) bool {
	return !r.pattern.MatchString(value)
}

func violatesMinLength(r Rule, value string) bool {
	return utf8.RuneCountInString(value) < r.limit
}

func violatesMaxLength(r Rule, value string) bool {
	return utf8.RuneCountInString(value) > r.limit
}
