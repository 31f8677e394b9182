package api

import (
	"math"
	"strconv"
	"time"
)

func formatTemplateDate(value time.Time, layout string, location *time.Location) string {
	if value.IsZero() {
		return ""
	}
	return value.In(location).Format(layout)
}

func formatTemplateFloat(value float64) string {
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// formatTemplateMeasurement prints an optional reading, or the fallback when
// nothing was measured.
func formatTemplateMeasurement(value *float64, fallback string) string {
	if value == nil {
		return fallback
	}
	return formatTemplateFloat(*value)
}

func nowInLocation(location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return time.Now().In(location)
}
