package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/models"
)

var ErrRecordSaveFailed = errors.New("failed to save record")

type SoilRecordRepository interface {
	Create(record *models.SoilRecord) error
	ListByFarm(userID uint, farmID uint) ([]models.SoilRecord, error)
}

type AnimalHealthRepository interface {
	Create(record *models.AnimalHealthRecord) error
	ListByFarm(userID uint, farmID uint) ([]models.AnimalHealthRecord, error)
}

type RecordService struct {
	farms    FarmRepository
	soil     SoilRecordRepository
	animals  AnimalHealthRepository
	location *time.Location
	now      func() time.Time
}

func NewRecordService(farms FarmRepository, soil SoilRecordRepository, animals AnimalHealthRepository, location *time.Location) *RecordService {
	if location == nil {
		location = time.UTC
	}
	return &RecordService{
		farms:    farms,
		soil:     soil,
		animals:  animals,
		location: location,
		now:      time.Now,
	}
}

// CreateSoilRecord stores an observation for a farm the user owns. The user id
// on the record always comes from the session, never from the form.
func (service *RecordService) CreateSoilRecord(userID uint, farmID uint, input SoilRecordInput) (models.SoilRecord, error) {
	if _, err := service.ownedFarm(userID, farmID); err != nil {
		return models.SoilRecord{}, err
	}

	record, err := NormalizeSoilRecordInput(input, service.now(), service.location)
	if err != nil {
		return models.SoilRecord{}, err
	}
	record.FarmID = farmID
	record.UserID = userID

	if err := service.soil.Create(&record); err != nil {
		return models.SoilRecord{}, translateRecordWriteError(err)
	}
	return record, nil
}

func (service *RecordService) CreateAnimalHealthRecord(userID uint, farmID uint, input AnimalHealthInput) (models.AnimalHealthRecord, error) {
	if _, err := service.ownedFarm(userID, farmID); err != nil {
		return models.AnimalHealthRecord{}, err
	}

	record, err := NormalizeAnimalHealthInput(input, service.now(), service.location)
	if err != nil {
		return models.AnimalHealthRecord{}, err
	}
	record.FarmID = farmID
	record.UserID = userID

	if err := service.animals.Create(&record); err != nil {
		return models.AnimalHealthRecord{}, translateRecordWriteError(err)
	}
	return record, nil
}

type FarmRecords struct {
	Farm    models.Farm
	Soil    []models.SoilRecord
	Animals []models.AnimalHealthRecord
}

func (service *RecordService) LoadFarmRecords(userID uint, farmID uint) (FarmRecords, error) {
	farm, err := service.ownedFarm(userID, farmID)
	if err != nil {
		return FarmRecords{}, err
	}

	soil, err := service.soil.ListByFarm(userID, farmID)
	if err != nil {
		return FarmRecords{}, fmt.Errorf("load soil records: %w", err)
	}
	animals, err := service.animals.ListByFarm(userID, farmID)
	if err != nil {
		return FarmRecords{}, fmt.Errorf("load animal health records: %w", err)
	}
	return FarmRecords{Farm: farm, Soil: soil, Animals: animals}, nil
}

func (service *RecordService) ownedFarm(userID uint, farmID uint) (models.Farm, error) {
	if farmID == 0 {
		return models.Farm{}, ErrFarmNotFound
	}
	return loadOwnedFarm(service.farms, userID, farmID)
}

func translateRecordWriteError(err error) error {
	if errors.Is(err, db.ErrFarmNotOwned) {
		return ErrFarmNotFound
	}
	return fmt.Errorf("%w: %v", ErrRecordSaveFailed, err)
}
