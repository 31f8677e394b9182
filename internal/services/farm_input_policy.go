package services

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/mlimi/internal/models"
)

const (
	maxFarmNameLength  = 100
	maxShortTextLength = 100
	maxLongTextLength  = 2000
)

var (
	ErrFarmNameRequired = errors.New("farm name required")
	ErrInvalidFarmSize  = errors.New("invalid farm size")
	ErrInvalidFarmType  = errors.New("invalid farm type")
)

type FarmInput struct {
	FarmName       string
	FarmSize       string
	FarmType       string
	SoilType       string
	LocationCoords string
	MainCrops      string
	LivestockTypes string
}

// NormalizeFarmInput validates a submitted farm form and returns the farm
// fields ready to persist. The size must parse as a finite number above zero.
func NormalizeFarmInput(input FarmInput) (models.Farm, error) {
	name := strings.TrimSpace(input.FarmName)
	if name == "" || utf8.RuneCountInString(name) > maxFarmNameLength {
		return models.Farm{}, ErrFarmNameRequired
	}

	size, err := ParseMeasurement(input.FarmSize, 0, math.MaxFloat64)
	if err != nil || size <= 0 {
		return models.Farm{}, ErrInvalidFarmSize
	}

	farmType := strings.ToLower(strings.TrimSpace(input.FarmType))
	if !IsValidFarmType(farmType) {
		return models.Farm{}, ErrInvalidFarmType
	}

	return models.Farm{
		FarmName:       name,
		FarmSize:       size,
		FarmType:       farmType,
		SoilType:       truncateText(input.SoilType, maxShortTextLength),
		LocationCoords: truncateText(input.LocationCoords, maxShortTextLength),
		MainCrops:      truncateText(input.MainCrops, maxLongTextLength),
		LivestockTypes: truncateText(input.LivestockTypes, maxLongTextLength),
	}, nil
}

func IsValidFarmType(farmType string) bool {
	for _, candidate := range models.FarmTypes() {
		if candidate == farmType {
			return true
		}
	}
	return false
}

func truncateText(raw string, limit int) string {
	value := strings.TrimSpace(raw)
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}
