// Package validation implements field-level and form-level validation
// for registration and login input. Each field has an ordered rule
// chain; single-field checks report only the first failing rule, while
// form checks aggregate the first failure of every field at once.
package validation

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Recognized field names. They match the wire names the backend expects.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldPhoneNumber = "phone_number"
)

// Rule is one validation step: Test returns true when the value passes.
type Rule struct {
	Test    func(value string) bool
	Message string
}

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	phonePattern    = regexp.MustCompile(`^\+?[\d\s-]+$`)
)

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// rules maps each recognized field to its chain, evaluated in order.
var rules = map[string][]Rule{
	FieldUsername: {
		{Test: func(v string) bool { return utf8.RuneCountInString(v) >= 3 },
			Message: "Username must be at least 3 characters"},
		{Test: usernamePattern.MatchString,
			Message: "Username can only contain letters, numbers, and underscores"},
	},
	FieldPassword: {
		{Test: func(v string) bool { return utf8.RuneCountInString(v) >= 8 },
			Message: "Password must be at least 8 characters"},
		{Test: func(v string) bool { return strings.ContainsFunc(v, unicode.IsUpper) },
			Message: "Password must contain at least one uppercase letter"},
		{Test: func(v string) bool { return strings.ContainsFunc(v, unicode.IsLower) },
			Message: "Password must contain at least one lowercase letter"},
		{Test: func(v string) bool { return strings.ContainsFunc(v, unicode.IsDigit) },
			Message: "Password must contain at least one number"},
	},
	// Phone number is optional: an empty value passes both rules.
	FieldPhoneNumber: {
		{Test: func(v string) bool { return v == "" || countDigits(v) >= 10 },
			Message: "Phone number must be at least 10 digits"},
		{Test: func(v string) bool { return v == "" || phonePattern.MatchString(v) },
			Message: "Invalid phone number format"},
	},
}

// Field runs the chain for a single field and returns the first failing
// rule's message, or "" when the value passes (or the field is unknown).
// This is the per-keystroke entry point: feedback is field-local.
func Field(field, value string) string {
	for _, rule := range rules[field] {
		if !rule.Test(value) {
			return rule.Message
		}
	}
	return ""
}

// FieldErrors maps field names to their first failing rule's message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Form validates every recognized field before submission and reports
// all failures at once. In login mode the phone number is not part of
// the form and is skipped. Returns nil when everything passes.
func Form(fields map[string]string, login bool) FieldErrors {
	errs := FieldErrors{}
	for field := range rules {
		if field == FieldPhoneNumber && login {
			continue
		}
		if msg := Field(field, fields[field]); msg != "" {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
