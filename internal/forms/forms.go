// Package forms holds the field validators for the signup, login, profile
// and password reset forms. Every call re-checks every field and returns a
// fresh error map; an empty map means the form is valid.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

const MinPasswordLength = 8

const (
	MsgRequired         = "You must fill out this field."
	MsgInvalidEmail     = "Invalid email."
	MsgPasswordTooShort = "Password must be at least 8 characters."
	MsgPasswordMismatch = "Passwords do not match."
	MsgInvalidPhone     = "Invalid phone number."

	MsgProfileNameRequired     = "Please enter your name."
	MsgProfileEmailRequired    = "Please enter your email."
	MsgEnterValidEmail         = "Enter a valid email address."
	MsgProfilePasswordRequired = "Please enter a password."

	MsgResetEmailRequired    = "Please enter your email address."
	MsgNewPasswordRequired   = "Please enter a new password."
	MsgConfirmPasswordNeeded = "Please re-enter your password."
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Errors maps a form field name to its message.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields lists the failing field names in no particular order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	return out
}

// IsEmail reports whether the trimmed value has the local@domain.tld shape.
func IsEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func tooShort(password string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(password)) < MinPasswordLength
}

// IsValidPhone parses the trimmed number against region, which may be empty
// when no country could be resolved. Without a region only numbers in
// international format can pass.
func IsValidPhone(number, region string) bool {
	num, err := phonenumbers.Parse(strings.TrimSpace(number), strings.ToUpper(region))
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
