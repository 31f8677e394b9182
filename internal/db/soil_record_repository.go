package db

import (
	"github.com/terraincognita07/mlimi/internal/models"
	"gorm.io/gorm"
)

type SoilRecordRepository struct {
	database *gorm.DB
}

func NewSoilRecordRepository(database *gorm.DB) *SoilRecordRepository {
	return &SoilRecordRepository{database: database}
}

// Create stores the record after checking, inside the same transaction, that
// record.FarmID belongs to record.UserID.
func (repo *SoilRecordRepository) Create(record *models.SoilRecord) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := ensureFarmOwnedTx(tx, record.UserID, record.FarmID); err != nil {
			return err
		}
		return translateConstraintError(tx.Create(record).Error)
	})
}

func (repo *SoilRecordRepository) RecentByFarms(farmIDs []uint, limit int) ([]models.SoilRecord, error) {
	records := make([]models.SoilRecord, 0, limit)
	if len(farmIDs) == 0 || limit <= 0 {
		return records, nil
	}
	if err := repo.database.
		Where("farm_id IN ?", farmIDs).
		Order("test_date DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SoilRecordRepository) ListByFarm(userID uint, farmID uint) ([]models.SoilRecord, error) {
	records := make([]models.SoilRecord, 0)
	if err := repo.database.
		Where("farm_id = ? AND user_id = ?", farmID, userID).
		Order("test_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SoilRecordRepository) ListByUser(userID uint) ([]models.SoilRecord, error) {
	records := make([]models.SoilRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("farm_id ASC, test_date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
