// Package validation checks request bodies and collects every failing field,
// in the shape the HTTP layer returns as the "errors" array.
package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const locationBody = "body"

// FieldError describes one rejected input field.
type FieldError struct {
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Errors is the list of failures for one request; nil or empty means valid.
type Errors []FieldError

func (e Errors) Empty() bool { return len(e) == 0 }

func (e *Errors) add(param, value, msg string) {
	*e = append(*e, FieldError{Value: value, Msg: msg, Param: param, Location: locationBody})
}

// Email rejects values that are not a bare address, e.g. "Jo <a@x.com>".
func Email(param, value, msg string, errs *Errors) {
	if !isEmail(value) {
		errs.add(param, value, msg)
	}
}

// MinLength counts runes, not bytes.
func MinLength(param, value string, n int, msg string, errs *Errors) {
	if utf8.RuneCountInString(value) < n {
		errs.add(param, value, msg)
	}
}

func Required(param, value, msg string, errs *Errors) {
	if value == "" {
		errs.add(param, value, msg)
	}
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	domain := value[strings.LastIndex(value, "@")+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
