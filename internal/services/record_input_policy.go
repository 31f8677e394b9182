package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/mlimi/internal/models"
)

const (
	recordDateLayout = "2006-01-02"
	maxPHLevel       = 14
)

var (
	ErrInvalidPHLevel        = errors.New("invalid ph level")
	ErrInvalidNutrientLevel  = errors.New("invalid nutrient level")
	ErrInvalidOrganicMatter  = errors.New("invalid organic matter")
	ErrInvalidRecordDate     = errors.New("invalid record date")
	ErrAnimalTypeRequired    = errors.New("animal type required")
	ErrInvalidRecoveryStatus = errors.New("invalid recovery status")
)

type SoilRecordInput struct {
	TestDate        string
	PHLevel         string
	Nitrogen        string
	Phosphorus      string
	Potassium       string
	OrganicMatter   string
	Recommendations string
	Notes           string
}

type AnimalHealthInput struct {
	AnimalType       string
	Symptoms         string
	DiseaseDiagnosed string
	TreatmentApplied string
	TreatmentDate    string
	RecoveryStatus   string
	Notes            string
}

// NormalizeSoilRecordInput parses optional soil measurements. Nutrient levels
// and organic matter must be non-negative, pH must lie within [0, 14]. A blank
// test date means now.
func NormalizeSoilRecordInput(input SoilRecordInput, now time.Time, location *time.Location) (models.SoilRecord, error) {
	testDate, err := parseRecordDate(input.TestDate, now, location)
	if err != nil {
		return models.SoilRecord{}, err
	}

	record := models.SoilRecord{
		TestDate:        testDate,
		Recommendations: truncateText(input.Recommendations, maxLongTextLength),
		Notes:           truncateText(input.Notes, maxLongTextLength),
	}

	if record.PHLevel, err = ParseOptionalMeasurement(input.PHLevel, 0, maxPHLevel); err != nil {
		return models.SoilRecord{}, ErrInvalidPHLevel
	}
	if record.Nitrogen, err = ParseOptionalMeasurement(input.Nitrogen, 0, math.MaxFloat64); err != nil {
		return models.SoilRecord{}, ErrInvalidNutrientLevel
	}
	if record.Phosphorus, err = ParseOptionalMeasurement(input.Phosphorus, 0, math.MaxFloat64); err != nil {
		return models.SoilRecord{}, ErrInvalidNutrientLevel
	}
	if record.Potassium, err = ParseOptionalMeasurement(input.Potassium, 0, math.MaxFloat64); err != nil {
		return models.SoilRecord{}, ErrInvalidNutrientLevel
	}
	if record.OrganicMatter, err = ParseOptionalMeasurement(input.OrganicMatter, 0, 100); err != nil {
		return models.SoilRecord{}, ErrInvalidOrganicMatter
	}
	return record, nil
}

func NormalizeAnimalHealthInput(input AnimalHealthInput, now time.Time, location *time.Location) (models.AnimalHealthRecord, error) {
	animalType := truncateText(input.AnimalType, maxShortTextLength)
	if animalType == "" {
		return models.AnimalHealthRecord{}, ErrAnimalTypeRequired
	}

	status := strings.ToLower(strings.TrimSpace(input.RecoveryStatus))
	if status != "" && !IsValidRecoveryStatus(status) {
		return models.AnimalHealthRecord{}, ErrInvalidRecoveryStatus
	}

	treatmentDate, err := parseRecordDate(input.TreatmentDate, now, location)
	if err != nil {
		return models.AnimalHealthRecord{}, err
	}

	return models.AnimalHealthRecord{
		AnimalType:       animalType,
		Symptoms:         truncateText(input.Symptoms, maxLongTextLength),
		DiseaseDiagnosed: truncateText(input.DiseaseDiagnosed, maxShortTextLength),
		TreatmentApplied: truncateText(input.TreatmentApplied, maxLongTextLength),
		TreatmentDate:    treatmentDate,
		RecoveryStatus:   status,
		Notes:            truncateText(input.Notes, maxLongTextLength),
	}, nil
}

func IsValidRecoveryStatus(status string) bool {
	for _, candidate := range models.RecoveryStatuses() {
		if candidate == status {
			return true
		}
	}
	return false
}

// parseRecordDate keeps the time of day for "today" so several observations
// entered on the same day still sort in entry order; past dates land on noon.
func parseRecordDate(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return now.UTC(), nil
	}

	day, err := time.ParseInLocation(recordDateLayout, value, location)
	if err != nil {
		return time.Time{}, ErrInvalidRecordDate
	}

	today := now.In(location)
	if day.Year() == today.Year() && day.YearDay() == today.YearDay() {
		return now.UTC(), nil
	}
	if day.After(today) {
		return time.Time{}, ErrInvalidRecordDate
	}
	return day.Add(12 * time.Hour).UTC(), nil
}
