package services

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrAuthInputInvalid = errors.New("auth input invalid")
	ErrAuthPhoneInvalid = errors.New("auth phone invalid")
)

var phoneFormatRegex = regexp.MustCompile(`^\+?[0-9]{3,20}$`)

var phoneSeparatorReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

type RegistrationInput struct {
	Username string
	Phone    string
	FullName string
	Location string
	Password string
	Language string
}

// NormalizePhone strips common separators; the result is the login identifier.
// An empty string means the input is not a usable phone number.
func NormalizePhone(raw string) string {
	phone := phoneSeparatorReplacer.Replace(strings.TrimSpace(raw))
	if !phoneFormatRegex.MatchString(phone) {
		return ""
	}
	return phone
}

func NormalizeRegistrationInput(input RegistrationInput) (RegistrationInput, error) {
	normalized := RegistrationInput{
		Username: strings.TrimSpace(input.Username),
		Phone:    strings.TrimSpace(input.Phone),
		FullName: strings.TrimSpace(input.FullName),
		Location: strings.TrimSpace(input.Location),
		Password: input.Password,
		Language: strings.TrimSpace(input.Language),
	}
	if normalized.Username == "" ||
		normalized.Phone == "" ||
		normalized.FullName == "" ||
		normalized.Location == "" ||
		strings.TrimSpace(normalized.Password) == "" {
		return normalized, ErrAuthInputInvalid
	}

	normalized.Phone = NormalizePhone(normalized.Phone)
	if normalized.Phone == "" {
		return normalized, ErrAuthPhoneInvalid
	}
	if err := ValidatePasswordStrength(normalized.Password); err != nil {
		return normalized, err
	}
	return normalized, nil
}

func NormalizeCredentialsInput(phoneRaw string, passwordRaw string) (string, string, error) {
	phone := NormalizePhone(phoneRaw)
	if phone == "" || strings.TrimSpace(passwordRaw) == "" {
		return "", "", ErrAuthInputInvalid
	}
	return phone, passwordRaw, nil
}
