package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/mcnijman/go-emailaddress"
)

const (
	nameMaxLength     = 50
	passwordMinLength = 8
	userIDLength      = 36
)

// Error carries a human-readable reason for rejecting caller input.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func newError(format string, args ...any) *Error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// Email checks the address against one canonical grammar. The same rule is
// applied on create, update, and lookup.
func Email(email string) error {
	if _, err := emailaddress.Parse(strings.TrimSpace(email)); err != nil {
		return newError("invalid email address")
	}
	return nil
}

// Name checks a first or last name: non-empty after trimming whitespace and
// bounded in length.
func Name(field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return newError("%s is required", field)
	}
	if len([]rune(trimmed)) > nameMaxLength {
		return newError("%s must be at most %d characters", field, nameMaxLength)
	}
	return nil
}

// Password enforces the strength rules: minimum length plus at least one
// uppercase letter, one lowercase letter, and one digit.
func Password(password string) error {
	if len(password) < passwordMinLength {
		return newError("password must be at least %d characters long", passwordMinLength)
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	switch {
	case !upper:
		return newError("password must contain at least one uppercase letter")
	case !lower:
		return newError("password must contain at least one lowercase letter")
	case !digit:
		return newError("password must contain at least one digit")
	}
	return nil
}

// UserID rejects malformed identifiers before the store is consulted.
func UserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return newError("user id is required")
	}
	if len(id) != userIDLength {
		return newError("invalid user id format")
	}
	if _, err := uuid.Parse(id); err != nil {
		return newError("invalid user id format")
	}
	return nil
}
