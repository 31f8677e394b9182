package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if redirected, err := handler.skipForSignedInUser(c); redirected || err != nil {
		return err
	}

	flash := handler.popFlashCookie(c)
	language := flash.formValue("language")
	if language == "" {
		language = currentLanguage(c)
	}
	return handler.render(c, "register", fiber.Map{
		"Title":            localizedPageTitle(currentMessages(c), "meta.title.register", "Mlimi | Register"),
		"Flash":            flash,
		"SelectedLanguage": handler.i18n.NormalizeLanguage(language),
	})
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if redirected, err := handler.skipForSignedInUser(c); redirected || err != nil {
		return err
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), "meta.title.login", "Mlimi | Sign in"),
		"Flash": flash,
	})
}
