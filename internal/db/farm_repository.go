package db

import (
	"github.com/terraincognita07/mlimi/internal/models"
	"gorm.io/gorm"
)

type FarmRepository struct {
	database *gorm.DB
}

func NewFarmRepository(database *gorm.DB) *FarmRepository {
	return &FarmRepository{database: database}
}

func (repo *FarmRepository) Create(farm *models.Farm) error {
	return translateConstraintError(repo.database.Create(farm).Error)
}

func (repo *FarmRepository) ListByUser(userID uint) ([]models.Farm, error) {
	farms := make([]models.Farm, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

// FindOwned loads a farm only when it belongs to userID; any other farm is
// reported as gorm.ErrRecordNotFound.
func (repo *FarmRepository) FindOwned(userID uint, farmID uint) (models.Farm, error) {
	var farm models.Farm
	if err := repo.database.Where("id = ? AND user_id = ?", farmID, userID).First(&farm).Error; err != nil {
		return models.Farm{}, err
	}
	return farm, nil
}

func ensureFarmOwnedTx(tx *gorm.DB, userID uint, farmID uint) error {
	var owned int64
	if err := tx.Model(&models.Farm{}).Where("id = ? AND user_id = ?", farmID, userID).Count(&owned).Error; err != nil {
		return err
	}
	if owned == 0 {
		return ErrFarmNotOwned
	}
	return nil
}
