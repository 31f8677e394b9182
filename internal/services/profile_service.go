package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/mlimi/internal/models"
)

var (
	ErrProfileInputInvalid = errors.New("profile input invalid")
	ErrProfileSaveFailed   = errors.New("failed to update profile")
)

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateProfile(userID uint, fullName string, location string, language string) error
}

type ProfileInput struct {
	FullName string
	Location string
	Language string
}

type ProfileService struct {
	users      ProfileUserRepository
	languageOf func(string) string
}

func NewProfileService(users ProfileUserRepository, normalizeLanguage func(string) string) *ProfileService {
	if normalizeLanguage == nil {
		normalizeLanguage = func(string) string { return models.LanguageEnglish }
	}
	return &ProfileService{users: users, languageOf: normalizeLanguage}
}

func (service *ProfileService) LoadProfile(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// UpdateProfile changes full name, location and language of userID and
// nothing else. Callers pass the session user's id.
func (service *ProfileService) UpdateProfile(userID uint, input ProfileInput) (models.User, error) {
	fullName := truncateText(input.FullName, maxShortTextLength)
	location := truncateText(input.Location, maxShortTextLength)
	if fullName == "" || location == "" {
		return models.User{}, ErrProfileInputInvalid
	}
	language := service.languageOf(strings.TrimSpace(input.Language))

	if err := service.users.UpdateProfile(userID, fullName, location, language); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}
	return service.users.FindByID(userID)
}
