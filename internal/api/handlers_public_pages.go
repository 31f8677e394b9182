package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	return redirectTo(c, sanitizeRedirectPath(c.Query("next"), "/"))
}

func (handler *Handler) ShowLandingPage(c *fiber.Ctx) error {
	if user := handler.sessionUserIfAny(c); user != nil {
		c.Locals(contextUserKey, user)
	}
	return handler.render(c, "index", fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), "meta.title.index", "Mlimi | Farm records"),
	})
}

func (handler *Handler) ShowSoilGuide(c *fiber.Ctx) error {
	return handler.render(c, "soil", fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), "meta.title.soil", "Mlimi | Soil"),
	})
}

func (handler *Handler) ShowAnimalsGuide(c *fiber.Ctx) error {
	return handler.render(c, "animals", fiber.Map{
		"Title":      localizedPageTitle(currentMessages(c), "meta.title.animals", "Mlimi | Animals"),
		"Categories": animalCategories,
	})
}

func (handler *Handler) ShowAnimalCategory(c *fiber.Ctx) error {
	category := strings.ToLower(strings.TrimSpace(c.Params("category")))
	if !isAnimalCategory(category) {
		return handler.NotFound(c)
	}
	return handler.render(c, "animal_category", fiber.Map{
		"Title":    localizedPageTitle(currentMessages(c), "animals."+category+".title", "Mlimi | Animals"),
		"Category": category,
	})
}
