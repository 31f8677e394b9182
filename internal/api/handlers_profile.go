package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/mlimi/internal/services"
)

func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	return handler.render(c, "profile", fiber.Map{
		"Title":   localizedPageTitle(currentMessages(c), "meta.title.profile", "Mlimi | Profile"),
		"Profile": user,
		"Flash":   handler.popFlashCookie(c),
	})
}

// UpdateProfile always targets the session user. Any id submitted with the
// form is not read.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.setFlashCookie(c, FlashPayload{FormError: "profile input invalid"})
		return redirectTo(c, "/profile")
	}

	handler.ensureDependencies()
	updated, err := handler.profileService.UpdateProfile(user.ID, services.ProfileInput{
		FullName: input.FullName,
		Location: input.Location,
		Language: input.Language,
	})
	if err != nil {
		message := "failed to update profile"
		if errors.Is(err, services.ErrProfileInputInvalid) {
			message = "profile input invalid"
		} else {
			handler.logger.Error("update profile", zap.Uint("user_id", user.ID), zap.Error(err))
		}
		handler.setFlashCookie(c, FlashPayload{
			FormError: message,
			FormValues: map[string]string{
				"full_name": input.FullName,
				"location":  input.Location,
			},
		})
		return redirectTo(c, "/profile")
	}

	handler.setLanguageCookie(c, updated.Language)
	handler.setFlashCookie(c, FlashPayload{FormSuccess: "profile updated"})
	return redirectTo(c, "/profile")
}
