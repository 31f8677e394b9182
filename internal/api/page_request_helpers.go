package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/mlimi/internal/models"
)

// skipForSignedInUser sends visitors with a valid session straight to the
// dashboard. It reports whether the response has been written.
func (handler *Handler) skipForSignedInUser(c *fiber.Ctx) (bool, error) {
	if handler.sessionUserIfAny(c) == nil {
		return false, nil
	}
	return true, redirectTo(c, "/dashboard")
}

// requireSessionUser returns the user stored by AuthRequired. When there is
// none the request is redirected to the login page and handled is true.
func (handler *Handler) requireSessionUser(c *fiber.Ctx) (user *models.User, handled bool, err error) {
	if user, ok := currentUser(c); ok {
		return user, false, nil
	}
	return nil, true, redirectTo(c, "/login")
}

func (handler *Handler) sessionUserIfAny(c *fiber.Ctx) *models.User {
	if user, err := handler.authenticateRequest(c); err == nil {
		return user
	}
	return nil
}
