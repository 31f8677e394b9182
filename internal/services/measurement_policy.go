package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

// ParseMeasurement reads a decimal number typed into a form. A single comma
// is accepted as the decimal separator. NaN, infinities, values outside
// [min, max] and anything that reads like digit grouping ("1,000",
// "1.000,5") are rejected.
func ParseMeasurement(raw string, min float64, max float64) (float64, error) {
	value, ok := decimalCommaToPoint(strings.TrimSpace(raw))
	if !ok || value == "" {
		return 0, ErrInvalidMeasurement
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, ErrInvalidMeasurement
	}
	if parsed < min || parsed > max {
		return 0, ErrInvalidMeasurement
	}
	return parsed, nil
}

// decimalCommaToPoint rewrites "2,5" as "2.5". It refuses a comma next to a
// point, a second comma, or a comma followed by exactly three digits, since
// those may be thousands separators.
func decimalCommaToPoint(value string) (string, bool) {
	whole, fraction, found := strings.Cut(value, ",")
	if !found {
		return value, true
	}
	if strings.ContainsAny(value, ".") || strings.Contains(fraction, ",") {
		return "", false
	}
	if len(fraction) == 3 && strings.Trim(fraction, "0123456789") == "" {
		return "", false
	}
	return whole + "." + fraction, true
}

// ParseOptionalMeasurement is ParseMeasurement for fields that may be left
// blank; blank yields nil.
func ParseOptionalMeasurement(raw string, min float64, max float64) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := ParseMeasurement(raw, min, max)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
