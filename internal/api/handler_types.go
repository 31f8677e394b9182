package api

import (
	"html/template"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/i18n"
	"github.com/terraincognita07/mlimi/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	logger       *zap.Logger
	templates    map[string]*template.Template
	cookieCodec  *secureCookieCodec
	loginLimiter *attemptLimiter

	repositories     *db.Repositories
	authService      *services.AuthService
	farmService      *services.FarmService
	recordService    *services.RecordService
	dashboardService *services.DashboardService
	profileService   *services.ProfileService
	exportService    *services.ExportService
}

type FlashPayload struct {
	AuthError   string            `json:"auth_error,omitempty"`
	AuthSuccess string            `json:"auth_success,omitempty"`
	FormError   string            `json:"form_error,omitempty"`
	FormSuccess string            `json:"form_success,omitempty"`
	LoginPhone  string            `json:"login_phone,omitempty"`
	FormValues  map[string]string `json:"form_values,omitempty"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type loginInput struct {
	Phone      string `form:"phone"`
	Password   string `form:"password"`
	RememberMe bool   `form:"remember_me"`
}

type registerInput struct {
	Username string `form:"username"`
	Phone    string `form:"phone"`
	FullName string `form:"full_name"`
	Location string `form:"location"`
	Password string `form:"password"`
	Language string `form:"language"`
}

type profileInput struct {
	FullName string `form:"full_name"`
	Location string `form:"location"`
	Language string `form:"language"`
}

type farmInput struct {
	FarmName       string `form:"farm_name"`
	FarmSize       string `form:"farm_size"`
	FarmType       string `form:"farm_type"`
	SoilType       string `form:"soil_type"`
	LocationCoords string `form:"location_coords"`
	MainCrops      string `form:"main_crops"`
	LivestockTypes string `form:"livestock_types"`
}

type soilRecordInput struct {
	TestDate        string `form:"test_date"`
	PHLevel         string `form:"ph_level"`
	Nitrogen        string `form:"nitrogen"`
	Phosphorus      string `form:"phosphorus"`
	Potassium       string `form:"potassium"`
	OrganicMatter   string `form:"organic_matter"`
	Recommendations string `form:"recommendations"`
	Notes           string `form:"notes"`
}

type animalHealthInput struct {
	AnimalType       string `form:"animal_type"`
	Symptoms         string `form:"symptoms"`
	DiseaseDiagnosed string `form:"disease_diagnosed"`
	TreatmentApplied string `form:"treatment_applied"`
	TreatmentDate    string `form:"treatment_date"`
	RecoveryStatus   string `form:"recovery_status"`
	Notes            string `form:"notes"`
}
