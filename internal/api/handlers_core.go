package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Health reports whether the database still answers.
func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		handler.logger.Warn("health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	return handler.renderStatus(c, fiber.StatusOK, name, data)
}

// renderStatus executes the page into a buffer first so a template error
// never leaves a half-written page behind.
func (handler *Handler) renderStatus(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	page, ok := handler.templates[name]
	if !ok {
		handler.logger.Error("unknown page template", zap.String("template", name))
		return fiber.NewError(fiber.StatusInternalServerError, "page unavailable")
	}

	var body bytes.Buffer
	if err := page.ExecuteTemplate(&body, "base", handler.withTemplateDefaults(c, data)); err != nil {
		handler.logger.Error("render page", zap.String("template", name), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "page unavailable")
	}
	return c.Status(status).Type("html", "utf-8").Send(body.Bytes())
}
