package db

import (
	"github.com/terraincognita07/mlimi/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByPhone(phone string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("phone = ?", phone).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByPhone(phone string) (bool, error) {
	return repo.exists("phone = ?", phone)
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	return repo.exists("username = ?", username)
}

func (repo *UserRepository) exists(query string, value string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where(query, value).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Create inserts a user. A lost race on the username or phone index comes
// back as ErrDuplicateKey.
func (repo *UserRepository) Create(user *models.User) error {
	return translateConstraintError(repo.database.Create(user).Error)
}

// UpdateProfile only ever touches the editable profile columns of userID.
func (repo *UserRepository) UpdateProfile(userID uint, fullName string, location string, language string) error {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"full_name": fullName,
		"location":  location,
		"language":  language,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *UserRepository) UpdatePasswordHash(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}
