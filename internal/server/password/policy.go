// Package password implements credential handling for the account service:
// the password policy validator and the bcrypt hashing wrapper.
package password

import "unicode"

// Rule names reported by Validate.
const (
	RuleMinLength = "min-length"
	RuleDigit     = "digit"
	RuleLetter    = "letter"
)

// MinLength is the minimum accepted password length.
const MinLength = 8

// RuleResult is the outcome of a single policy rule evaluation.
type RuleResult struct {
	Rule      string
	Satisfied bool
	Message   string
}

// Validate evaluates the plaintext password against the fixed rule set and
// returns one result per rule, in a stable order. All rules are always
// evaluated so the output is deterministic and total over any input,
// including the empty string.
func Validate(plaintext string) []RuleResult {
	var hasDigit, hasLetter bool
	for _, r := range plaintext {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}

	return []RuleResult{
		{
			Rule:      RuleMinLength,
			Satisfied: len([]rune(plaintext)) >= MinLength,
			Message:   "password must be at least 8 characters long",
		},
		{
			Rule:      RuleDigit,
			Satisfied: hasDigit,
			Message:   "password must contain at least one digit",
		},
		{
			Rule:      RuleLetter,
			Satisfied: hasLetter,
			Message:   "password must contain at least one letter",
		},
	}
}

// FirstFailure returns the first unsatisfied rule, if any. Callers abort on
// the first failure and report its message.
func FirstFailure(results []RuleResult) (RuleResult, bool) {
	for _, r := range results {
		if !r.Satisfied {
			return r, true
		}
	}
	return RuleResult{}, false
}
