package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		user = handler.sessionUserIfAny(c)
		if user != nil {
			c.Locals(contextUserKey, user)
		}
	}

	primaryPath := "/login"
	primaryLabelKey := "not_found.action_login"
	if user != nil {
		primaryPath = "/dashboard"
		primaryLabelKey = "not_found.action_dashboard"
	}

	return handler.renderStatus(c, fiber.StatusNotFound, "not_found", fiber.Map{
		"Title":           localizedPageTitle(currentMessages(c), "meta.title.not_found", "Mlimi | Not found"),
		"PrimaryPath":     primaryPath,
		"PrimaryLabelKey": primaryLabelKey,
	})
}
