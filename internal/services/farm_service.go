package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/mlimi/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFarmNotFound   = errors.New("farm not found")
	ErrFarmSaveFailed = errors.New("failed to save farm")
)

type FarmRepository interface {
	Create(farm *models.Farm) error
	ListByUser(userID uint) ([]models.Farm, error)
	FindOwned(userID uint, farmID uint) (models.Farm, error)
}

type FarmService struct {
	farms FarmRepository
	now   func() time.Time
}

func NewFarmService(farms FarmRepository) *FarmService {
	return &FarmService{farms: farms, now: time.Now}
}

func (service *FarmService) CreateFarm(userID uint, input FarmInput) (models.Farm, error) {
	farm, err := NormalizeFarmInput(input)
	if err != nil {
		return models.Farm{}, err
	}

	farm.UserID = userID
	farm.CreatedAt = service.now().UTC()
	if err := service.farms.Create(&farm); err != nil {
		return models.Farm{}, fmt.Errorf("%w: %v", ErrFarmSaveFailed, err)
	}
	return farm, nil
}

func (service *FarmService) ListFarms(userID uint) ([]models.Farm, error) {
	return service.farms.ListByUser(userID)
}

func (service *FarmService) LoadOwnedFarm(userID uint, farmID uint) (models.Farm, error) {
	return loadOwnedFarm(service.farms, userID, farmID)
}

func loadOwnedFarm(farms FarmRepository, userID uint, farmID uint) (models.Farm, error) {
	farm, err := farms.FindOwned(userID, farmID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Farm{}, ErrFarmNotFound
	}
	if err != nil {
		return models.Farm{}, err
	}
	return farm, nil
}
