package services

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	// MaxPasswordBytes is the most bcrypt will hash.
	MaxPasswordBytes = 72
)

var (
	ErrWeakPassword    = errors.New("weak password")
	ErrPasswordTooLong = errors.New("password too long")
)

// ValidatePasswordStrength accepts passwords of at least eight characters
// that contain a letter and a digit and fit in 72 bytes. Case is not checked.
func ValidatePasswordStrength(password string) error {
	switch {
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrWeakPassword
	case !strings.ContainsFunc(password, unicode.IsLetter):
		return ErrWeakPassword
	case !strings.ContainsFunc(password, unicode.IsDigit):
		return ErrWeakPassword
	}
	return nil
}
