package marketplace

import (
	"regexp"
	"unicode/utf8"
)

// Field names a registration form input.
type Field string

const (
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Violation is the kind of rule a registration field failed.
type Violation string

const (
	ViolationTooShort      Violation = "too_short"
	ViolationInvalidChars  Violation = "invalid_chars"
	ViolationInvalidFormat Violation = "invalid_format"
	ViolationMismatch      Violation = "mismatch"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// emailSpace is \s widened to Unicode spaces, vertical tab and the BOM.
	emailSpace   = `\s\p{Z}\v\x{FEFF}`
	emailPattern = regexp.MustCompile(`^[^` + emailSpace + `@]+@[^` + emailSpace + `@]+\.[^` + emailSpace + `@]+$`)
)

// Registration is the submitted sign-up form.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Violations maps each failing field to the rule it broke.
type Violations map[Field]Violation

// OK reports whether no rule failed.
func (v Violations) OK() bool {
	return len(v) == 0
}

// Validate checks every rule. Each field reports at most one violation; when a
// username breaks both rules the character rule wins.
func (form Registration) Validate() Violations {
	out := Violations{}
	if utf8.RuneCountInString(form.Username) < minUsernameLength {
		out[FieldUsername] = ViolationTooShort
	}
	if !usernamePattern.MatchString(form.Username) {
		out[FieldUsername] = ViolationInvalidChars
	}
	if !emailPattern.MatchString(form.Email) {
		out[FieldEmail] = ViolationInvalidFormat
	}
	if utf8.RuneCountInString(form.Password) < minPasswordLength {
		out[FieldPassword] = ViolationTooShort
	}
	if form.Password != form.ConfirmPassword {
		out[FieldConfirmPassword] = ViolationMismatch
	}
	return out
}
