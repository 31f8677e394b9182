package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const languageCookieLifetime = 365 * 24 * time.Hour

// LanguageMiddleware resolves the page language once per request. A saved
// cookie wins over Accept-Language; a missing or unsupported cookie is
// rewritten with the resolved value.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	saved := c.Cookies(languageCookieName)

	var language string
	if saved != "" {
		language = handler.i18n.NormalizeLanguage(saved)
	} else {
		language = handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	}
	if language != saved {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}

// setLanguageCookie is readable by scripts so the switcher can mark the
// active language.
func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		Expires:  time.Now().Add(languageCookieLifetime),
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
