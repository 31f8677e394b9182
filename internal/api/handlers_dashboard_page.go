package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	handler.ensureDependencies()
	dashboard, loadErr := handler.dashboardService.Load(user.ID)
	if loadErr != nil {
		handler.logger.Warn("dashboard degraded to empty view", zap.Uint("user_id", user.ID), zap.Error(loadErr))
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":      localizedPageTitle(currentMessages(c), "meta.title.dashboard", "Mlimi | Dashboard"),
		"Dashboard":  dashboard,
		"LoadFailed": loadErr != nil,
		"Flash":      handler.popFlashCookie(c),
	})
}
