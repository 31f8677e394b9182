package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneTaken          = errors.New("phone already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRegistrationFailed  = errors.New("registration failed")
	ErrPasswordHashFailure = errors.New("failed to secure password")
)

type AuthUserRepository interface {
	ExistsByPhone(phone string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	FindByPhone(phone string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users      AuthUserRepository
	hashCost   int
	dummyHash  []byte
	now        func() time.Time
	languageOf func(string) string
}

type AuthOption func(*AuthService)

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) AuthOption {
	return func(service *AuthService) {
		service.hashCost = cost
	}
}

// WithLanguageNormalizer maps the requested UI language onto a supported one.
func WithLanguageNormalizer(normalize func(string) string) AuthOption {
	return func(service *AuthService) {
		service.languageOf = normalize
	}
}

func NewAuthService(users AuthUserRepository, options ...AuthOption) *AuthService {
	service := &AuthService{
		users:    users,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
		languageOf: func(string) string {
			return models.LanguageEnglish
		},
	}
	for _, option := range options {
		option(service)
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("mlimi-dummy-password"), service.hashCost)
	if err == nil {
		service.dummyHash = dummyHash
	}
	return service
}

// Register validates the input and creates the user with a bcrypt hash.
// Duplicate phone or username, whether caught by the lookup or by the unique
// index after a concurrent insert, is reported as ErrPhoneTaken or
// ErrUsernameTaken.
func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	normalized, err := NormalizeRegistrationInput(input)
	if err != nil {
		return models.User{}, err
	}

	if err := service.ensureIdentityAvailable(normalized.Phone, normalized.Username); err != nil {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(normalized.Password), service.hashCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username:     normalized.Username,
		Phone:        normalized.Phone,
		PasswordHash: string(passwordHash),
		FullName:     normalized.FullName,
		Location:     normalized.Location,
		Language:     service.languageOf(normalized.Language),
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			if conflictErr := service.ensureIdentityAvailable(normalized.Phone, normalized.Username); conflictErr != nil {
				return models.User{}, conflictErr
			}
			return models.User{}, ErrPhoneTaken
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	return user, nil
}

func (service *AuthService) ensureIdentityAvailable(phone string, username string) error {
	phoneTaken, err := service.users.ExistsByPhone(phone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	if phoneTaken {
		return ErrPhoneTaken
	}

	usernameTaken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	if usernameTaken {
		return ErrUsernameTaken
	}
	return nil
}

// Authenticate never reveals whether the phone exists: an unknown phone still
// costs one bcrypt comparison and yields the same ErrInvalidCredentials.
func (service *AuthService) Authenticate(phoneRaw string, passwordRaw string) (models.User, error) {
	phone, password, err := NormalizeCredentialsInput(phoneRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByPhone(phone)
	if err != nil {
		if service.dummyHash != nil {
			_ = bcrypt.CompareHashAndPassword(service.dummyHash, []byte(password))
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
