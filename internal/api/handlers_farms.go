package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/mlimi/internal/services"
)

func (handler *Handler) ShowFarmCreatePage(c *fiber.Ctx) error {
	if _, handled, err := handler.requireSessionUser(c); handled || err != nil {
		return err
	}

	return handler.render(c, "farm_create", fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), "meta.title.farm_create", "Mlimi | New farm"),
		"Flash": handler.popFlashCookie(c),
	})
}

func (handler *Handler) CreateFarm(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	input := farmInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.setFlashCookie(c, FlashPayload{FormError: "invalid input"})
		return redirectTo(c, "/farm/create")
	}

	handler.ensureDependencies()
	farm, err := handler.farmService.CreateFarm(user.ID, services.FarmInput{
		FarmName:       input.FarmName,
		FarmSize:       input.FarmSize,
		FarmType:       input.FarmType,
		SoilType:       input.SoilType,
		LocationCoords: input.LocationCoords,
		MainCrops:      input.MainCrops,
		LivestockTypes: input.LivestockTypes,
	})
	if err != nil {
		message := farmErrorMessage(err)
		if message == "failed to save farm" {
			handler.logger.Error("create farm", zap.Uint("user_id", user.ID), zap.Error(err))
		}
		handler.setFlashCookie(c, FlashPayload{
			FormError: message,
			FormValues: map[string]string{
				"farm_name":       input.FarmName,
				"farm_size":       input.FarmSize,
				"farm_type":       input.FarmType,
				"soil_type":       input.SoilType,
				"location_coords": input.LocationCoords,
				"main_crops":      input.MainCrops,
				"livestock_types": input.LivestockTypes,
			},
		})
		return redirectTo(c, "/farm/create")
	}

	handler.logger.Info("farm created", zap.Uint("user_id", user.ID), zap.Uint("farm_id", farm.ID))
	handler.setFlashCookie(c, FlashPayload{FormSuccess: "farm created"})
	return redirectTo(c, "/dashboard")
}

func (handler *Handler) ShowFarmDetail(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	handler.ensureDependencies()
	records, err := handler.recordService.LoadFarmRecords(user.ID, farmIDParam(c))
	if errors.Is(err, services.ErrFarmNotFound) {
		return handler.NotFound(c)
	}
	if err != nil {
		handler.logger.Error("load farm records", zap.Uint("user_id", user.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load farm")
	}

	return handler.render(c, "farm_detail", fiber.Map{
		"Title":   records.Farm.FarmName + " | Mlimi",
		"Records": records,
		"Flash":   handler.popFlashCookie(c),
	})
}

func farmErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrFarmNameRequired):
		return "farm name required"
	case errors.Is(err, services.ErrInvalidFarmSize):
		return "invalid farm size"
	case errors.Is(err, services.ErrInvalidFarmType):
		return "invalid farm type"
	default:
		return "failed to save farm"
	}
}

func farmPath(farmID uint, suffix string) string {
	return "/farm/" + strconv.FormatUint(uint64(farmID), 10) + suffix
}
