package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{password: "short1", wantErr: true},
		{password: "lettersonly", wantErr: true},
		{password: "12345678", wantErr: true},
		{password: "mbewu2024", wantErr: false},
		{password: "Chimanga 7", wantErr: false},
	}

	for _, test := range tests {
		err := ValidatePasswordStrength(test.password)
		if test.wantErr && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("ValidatePasswordStrength(%q) = %v, want ErrWeakPassword", test.password, err)
		}
		if !test.wantErr && err != nil {
			t.Fatalf("ValidatePasswordStrength(%q) = %v, want nil", test.password, err)
		}
	}
}

func TestValidatePasswordStrengthRejectsPasswordsBcryptCannotHash(t *testing.T) {
	if err := ValidatePasswordStrength(strings.Repeat("a1", 36)); err != nil {
		t.Fatalf("expected a 72 byte password to pass, got %v", err)
	}
	if err := ValidatePasswordStrength(strings.Repeat("a1", 40)); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong for 80 bytes, got %v", err)
	}
	// 36 two-byte letters plus a digit: 37 characters, 73 bytes.
	if err := ValidatePasswordStrength(strings.Repeat("é", 36) + "1"); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected byte length to count, got %v", err)
	}
}
