package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/mlimi/internal/services"
)

// respondAuthError sends the visitor back to the form it came from with the
// message and the non-secret fields preserved in the flash cookie.
func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	handler.logger.Debug("auth form rejected", zap.String("path", c.Path()), zap.Int("status", status), zap.String("reason", message))
	flash := FlashPayload{AuthError: message}
	switch c.Path() {
	case "/register":
		flash.FormValues = map[string]string{
			"username":  c.FormValue("username"),
			"phone":     c.FormValue("phone"),
			"full_name": c.FormValue("full_name"),
			"location":  c.FormValue("location"),
			"language":  c.FormValue("language"),
		}
		handler.setFlashCookie(c, flash)
		return redirectTo(c, "/register")
	default:
		flash.LoginPhone = strings.TrimSpace(c.FormValue("phone"))
		handler.setFlashCookie(c, flash)
		return redirectTo(c, "/login")
	}
}

func registrationErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrAuthInputInvalid):
		return "invalid input"
	case errors.Is(err, services.ErrAuthPhoneInvalid):
		return "invalid phone"
	case errors.Is(err, services.ErrWeakPassword):
		return "weak password"
	case errors.Is(err, services.ErrPasswordTooLong):
		return "password too long"
	case errors.Is(err, services.ErrPhoneTaken):
		return "phone already registered"
	case errors.Is(err, services.ErrUsernameTaken):
		return "username already taken"
	default:
		return "registration failed"
	}
}

func registrationErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrPhoneTaken), errors.Is(err, services.ErrUsernameTaken):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrRegistrationFailed), errors.Is(err, services.ErrPasswordHashFailure):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
