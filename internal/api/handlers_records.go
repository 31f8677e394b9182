package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/mlimi/internal/services"
)

func (handler *Handler) ShowSoilRecordForm(c *fiber.Ctx) error {
	return handler.showRecordForm(c, "soil_record_new", "meta.title.soil_record_new", "Mlimi | Soil test")
}

func (handler *Handler) ShowAnimalRecordForm(c *fiber.Ctx) error {
	return handler.showRecordForm(c, "animal_record_new", "meta.title.animal_record_new", "Mlimi | Animal health")
}

func (handler *Handler) showRecordForm(c *fiber.Ctx, page string, titleKey string, fallbackTitle string) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	handler.ensureDependencies()
	farm, err := handler.farmService.LoadOwnedFarm(user.ID, farmIDParam(c))
	if errors.Is(err, services.ErrFarmNotFound) {
		return handler.NotFound(c)
	}
	if err != nil {
		handler.logger.Error("load farm", zap.Uint("user_id", user.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load farm")
	}

	return handler.render(c, page, fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), titleKey, fallbackTitle),
		"Farm":  farm,
		"Today": formatTemplateDate(nowInLocation(handler.location), "2006-01-02", handler.location),
		"Flash": handler.popFlashCookie(c),
	})
}

func (handler *Handler) CreateSoilRecord(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}
	farmID := farmIDParam(c)
	formPath := farmPath(farmID, "/soil/new")

	input := soilRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.setFlashCookie(c, FlashPayload{FormError: "invalid input"})
		return redirectTo(c, formPath)
	}

	handler.ensureDependencies()
	_, err = handler.recordService.CreateSoilRecord(user.ID, farmID, services.SoilRecordInput{
		TestDate:        input.TestDate,
		PHLevel:         input.PHLevel,
		Nitrogen:        input.Nitrogen,
		Phosphorus:      input.Phosphorus,
		Potassium:       input.Potassium,
		OrganicMatter:   input.OrganicMatter,
		Recommendations: input.Recommendations,
		Notes:           input.Notes,
	})
	if errors.Is(err, services.ErrFarmNotFound) {
		return handler.NotFound(c)
	}
	if err != nil {
		message := recordErrorMessage(err)
		if message == "failed to save record" {
			handler.logger.Error("create soil record", zap.Uint("user_id", user.ID), zap.Uint("farm_id", farmID), zap.Error(err))
		}
		handler.setFlashCookie(c, FlashPayload{
			FormError: message,
			FormValues: map[string]string{
				"test_date":       input.TestDate,
				"ph_level":        input.PHLevel,
				"nitrogen":        input.Nitrogen,
				"phosphorus":      input.Phosphorus,
				"potassium":       input.Potassium,
				"organic_matter":  input.OrganicMatter,
				"recommendations": input.Recommendations,
				"notes":           input.Notes,
			},
		})
		return redirectTo(c, formPath)
	}

	handler.setFlashCookie(c, FlashPayload{FormSuccess: "soil record saved"})
	return redirectTo(c, farmPath(farmID, ""))
}

func (handler *Handler) CreateAnimalRecord(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}
	farmID := farmIDParam(c)
	formPath := farmPath(farmID, "/animals/new")

	input := animalHealthInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.setFlashCookie(c, FlashPayload{FormError: "invalid input"})
		return redirectTo(c, formPath)
	}

	handler.ensureDependencies()
	_, err = handler.recordService.CreateAnimalHealthRecord(user.ID, farmID, services.AnimalHealthInput{
		AnimalType:       input.AnimalType,
		Symptoms:         input.Symptoms,
		DiseaseDiagnosed: input.DiseaseDiagnosed,
		TreatmentApplied: input.TreatmentApplied,
		TreatmentDate:    input.TreatmentDate,
		RecoveryStatus:   input.RecoveryStatus,
		Notes:            input.Notes,
	})
	if errors.Is(err, services.ErrFarmNotFound) {
		return handler.NotFound(c)
	}
	if err != nil {
		message := recordErrorMessage(err)
		if message == "failed to save record" {
			handler.logger.Error("create animal health record", zap.Uint("user_id", user.ID), zap.Uint("farm_id", farmID), zap.Error(err))
		}
		handler.setFlashCookie(c, FlashPayload{
			FormError: message,
			FormValues: map[string]string{
				"animal_type":       input.AnimalType,
				"symptoms":          input.Symptoms,
				"disease_diagnosed": input.DiseaseDiagnosed,
				"treatment_applied": input.TreatmentApplied,
				"treatment_date":    input.TreatmentDate,
				"recovery_status":   input.RecoveryStatus,
				"notes":             input.Notes,
			},
		})
		return redirectTo(c, formPath)
	}

	handler.setFlashCookie(c, FlashPayload{FormSuccess: "animal record saved"})
	return redirectTo(c, farmPath(farmID, ""))
}

func recordErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidPHLevel):
		return "invalid ph level"
	case errors.Is(err, services.ErrInvalidNutrientLevel):
		return "invalid nutrient level"
	case errors.Is(err, services.ErrInvalidOrganicMatter):
		return "invalid organic matter"
	case errors.Is(err, services.ErrInvalidRecordDate):
		return "invalid record date"
	case errors.Is(err, services.ErrAnimalTypeRequired):
		return "animal type required"
	case errors.Is(err, services.ErrInvalidRecoveryStatus):
		return "invalid recovery status"
	default:
		return "failed to save record"
	}
}
