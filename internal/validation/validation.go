// Package validation checks request shape before any store access. Validators
// are pure: they inspect the request, collect every field-level issue, and
// return a single apierr.Validation error or nil.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/yungbote/contactbook-backend/internal/apierr"
)

// Practical email shape check, not full RFC 5322.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

const (
	// MaxPageSize caps a single search page.
	MaxPageSize = 50
	// DefaultPageSize applies when the caller omits size.
	DefaultPageSize = 10
)

type issues struct {
	list []apierr.FieldIssue
}

func (is *issues) add(field, message string) {
	is.list = append(is.list, apierr.FieldIssue{Field: field, Message: message})
}

func (is *issues) err() error {
	if len(is.list) == 0 {
		return nil
	}
	return apierr.Validation(is.list)
}

func (is *issues) required(field, value string, max int) {
	if value == "" {
		is.add(field, fmt.Sprintf("%s is required", field))
		return
	}
	is.bounded(field, value, max)
}

// optional enforces bounds only when the value is present; "" means absent.
func (is *issues) optional(field, value string, max int) {
	if value == "" {
		return
	}
	is.bounded(field, value, max)
}

func (is *issues) bounded(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		is.add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

func (is *issues) email(field, value string, max int) {
	if value == "" {
		return
	}
	is.bounded(field, value, max)
	if !emailRe.MatchString(value) {
		is.add(field, fmt.Sprintf("%s must be a valid email address", field))
	}
}

func (is *issues) positiveID(field string, id int64) {
	if id <= 0 {
		is.add(field, fmt.Sprintf("%s must be a positive number", field))
	}
}
