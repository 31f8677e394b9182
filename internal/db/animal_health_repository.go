package db

import (
	"github.com/terraincognita07/mlimi/internal/models"
	"gorm.io/gorm"
)

type AnimalHealthRepository struct {
	database *gorm.DB
}

func NewAnimalHealthRepository(database *gorm.DB) *AnimalHealthRepository {
	return &AnimalHealthRepository{database: database}
}

func (repo *AnimalHealthRepository) Create(record *models.AnimalHealthRecord) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := ensureFarmOwnedTx(tx, record.UserID, record.FarmID); err != nil {
			return err
		}
		return translateConstraintError(tx.Create(record).Error)
	})
}

func (repo *AnimalHealthRepository) RecentByFarms(farmIDs []uint, limit int) ([]models.AnimalHealthRecord, error) {
	records := make([]models.AnimalHealthRecord, 0, limit)
	if len(farmIDs) == 0 || limit <= 0 {
		return records, nil
	}
	if err := repo.database.
		Where("farm_id IN ?", farmIDs).
		Order("treatment_date DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *AnimalHealthRepository) ListByFarm(userID uint, farmID uint) ([]models.AnimalHealthRecord, error) {
	records := make([]models.AnimalHealthRecord, 0)
	if err := repo.database.
		Where("farm_id = ? AND user_id = ?", farmID, userID).
		Order("treatment_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *AnimalHealthRepository) ListByUser(userID uint) ([]models.AnimalHealthRecord, error) {
	records := make([]models.AnimalHealthRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("farm_id ASC, treatment_date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
