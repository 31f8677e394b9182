package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/mlimi/internal/models"
)

const (
	authCookieName     = "mlimi_auth"
	languageCookieName = "mlimi_lang"
	flashCookieName    = "mlimi_flash"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"

	authCookiePurpose = "auth"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}
