package services

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"555":                "555",
		" +265 991-234 567 ": "+265991234567",
		"(0888) 123.456":     "0888123456",
		"12":                 "",
		"phone":              "",
		"++265":              "",
	}
	for raw, want := range tests {
		if got := NormalizePhone(raw); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeRegistrationInput(t *testing.T) {
	valid := RegistrationInput{
		Username: "  chisomo ",
		Phone:    "+265 888 000 111",
		FullName: " Chisomo Banda ",
		Location: "Dedza",
		Password: " mbewu2024 ",
	}

	normalized, err := NormalizeRegistrationInput(valid)
	if err != nil {
		t.Fatalf("expected valid registration, got %v", err)
	}
	if normalized.Username != "chisomo" || normalized.Phone != "+265888000111" || normalized.FullName != "Chisomo Banda" {
		t.Fatalf("unexpected normalization: %+v", normalized)
	}
	if normalized.Password != " mbewu2024 " {
		t.Fatalf("expected password to be kept as typed, got %q", normalized.Password)
	}

	blankPassword := valid
	blankPassword.Password = "   "
	if _, err := NormalizeRegistrationInput(blankPassword); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid for blank password, got %v", err)
	}

	missing := valid
	missing.Location = "   "
	if _, err := NormalizeRegistrationInput(missing); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid for blank location, got %v", err)
	}

	badPhone := valid
	badPhone.Phone = "call me"
	if _, err := NormalizeRegistrationInput(badPhone); !errors.Is(err, ErrAuthPhoneInvalid) {
		t.Fatalf("expected ErrAuthPhoneInvalid, got %v", err)
	}

	weak := valid
	weak.Password = "abc"
	if _, err := NormalizeRegistrationInput(weak); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	phone, password, err := NormalizeCredentialsInput(" 555 ", " secret99 ")
	if err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	if phone != "555" || password != " secret99 " {
		t.Fatalf("unexpected credentials %q %q", phone, password)
	}

	if _, _, err := NormalizeCredentialsInput("", "secret99"); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("555", "  "); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid for blank password, got %v", err)
	}
}
