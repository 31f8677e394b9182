package api

import (
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	if database == nil {
		return handler
	}
	handler.repositories = db.NewRepositories(database)
	handler.ensureDependencies()
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	repos := handler.repositories

	if handler.authService == nil {
		handler.authService = services.NewAuthService(repos.Users, services.WithLanguageNormalizer(handler.i18n.NormalizeLanguage))
	}
	if handler.farmService == nil {
		handler.farmService = services.NewFarmService(repos.Farms)
	}
	if handler.recordService == nil {
		handler.recordService = services.NewRecordService(repos.Farms, repos.SoilRecords, repos.AnimalRecords, handler.location)
	}
	if handler.dashboardService == nil {
		handler.dashboardService = services.NewDashboardService(repos.Farms, repos.SoilRecords, repos.AnimalRecords)
	}
	if handler.profileService == nil {
		handler.profileService = services.NewProfileService(repos.Users, handler.i18n.NormalizeLanguage)
	}
	if handler.exportService == nil {
		handler.exportService = services.NewExportService(repos.Farms, repos.SoilRecords, repos.AnimalRecords, handler.location)
	}
}
