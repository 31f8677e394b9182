package services

import (
	"errors"
	"math"
	"testing"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "2.5", want: 2.5},
		{raw: " 2,5 ", want: 2.5},
		{raw: "0", want: 0},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "1e400", wantErr: true},
		{raw: "0,25", want: 0.25},
		{raw: "1,000", wantErr: true},
		{raw: "1.000,5", wantErr: true},
		{raw: "1,5,0", wantErr: true},
		{raw: "12,345", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseMeasurement(test.raw, 0, math.MaxFloat64)
		if test.wantErr {
			if !errors.Is(err, ErrInvalidMeasurement) {
				t.Fatalf("ParseMeasurement(%q) error = %v, want ErrInvalidMeasurement", test.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMeasurement(%q) unexpected error: %v", test.raw, err)
		}
		if got != test.want {
			t.Fatalf("ParseMeasurement(%q) = %v, want %v", test.raw, got, test.want)
		}
	}
}

func TestParseOptionalMeasurement(t *testing.T) {
	value, err := ParseOptionalMeasurement("  ", 0, 14)
	if err != nil || value != nil {
		t.Fatalf("expected nil for blank input, got %v, %v", value, err)
	}

	value, err = ParseOptionalMeasurement("6.8", 0, 14)
	if err != nil || value == nil || *value != 6.8 {
		t.Fatalf("expected 6.8, got %v, %v", value, err)
	}

	if _, err := ParseOptionalMeasurement("15", 0, 14); !errors.Is(err, ErrInvalidMeasurement) {
		t.Fatalf("expected pH 15 to be rejected, got %v", err)
	}
}
