package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func redirectTo(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

// localizedPageTitle falls back when the catalog has no title for the page.
func localizedPageTitle(messages map[string]string, key string, fallback string) string {
	if title := strings.TrimSpace(translateMessage(messages, key)); title != "" && title != key {
		return title
	}
	return fallback
}

// sanitizeRedirectPath only lets through local absolute paths, so ?next=
// cannot send the visitor to another host.
func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if len(candidate) == 0 || candidate[0] != '/' {
		return fallback
	}
	if len(candidate) > 1 && (candidate[1] == '/' || candidate[1] == '\\') {
		return fallback
	}
	if parsed, err := url.Parse(candidate); err != nil || parsed.Host != "" || parsed.Scheme != "" {
		return fallback
	}
	return candidate
}

// farmIDParam reads the :id route parameter. Zero means absent or malformed.
func farmIDParam(c *fiber.Ctx) uint {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}
