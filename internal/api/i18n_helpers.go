package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/mlimi/internal/models"
)

var flashMessageKeys = map[string]string{
	"invalid input":            "auth.error.invalid_input",
	"invalid phone":            "auth.error.invalid_phone",
	"weak password":            "auth.error.weak_password",
	"password too long":        "auth.error.password_too_long",
	"phone already registered": "auth.error.phone_taken",
	"username already taken":   "auth.error.username_taken",
	"invalid credentials":      "auth.error.invalid_credentials",
	"too many login attempts":  "auth.error.too_many_login_attempts",
	"registration failed":      "auth.error.registration_failed",
	"failed to create session": "auth.error.session_failed",
	"registration successful":  "auth.success.registered",
	"farm name required":       "farm.error.name_required",
	"invalid farm size":        "farm.error.invalid_size",
	"invalid farm type":        "farm.error.invalid_type",
	"failed to save farm":      "farm.error.save_failed",
	"farm created":             "farm.success.created",
	"invalid ph level":         "record.error.invalid_ph",
	"invalid nutrient level":   "record.error.invalid_nutrient",
	"invalid organic matter":   "record.error.invalid_organic_matter",
	"invalid record date":      "record.error.invalid_date",
	"animal type required":     "record.error.animal_type_required",
	"invalid recovery status":  "record.error.invalid_recovery_status",
	"failed to save record":    "record.error.save_failed",
	"soil record saved":        "record.success.soil_saved",
	"animal record saved":      "record.success.animal_saved",
	"profile input invalid":    "profile.error.invalid_input",
	"failed to update profile": "profile.error.save_failed",
	"profile updated":          "profile.success.updated",
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

func flashMessageTranslationKey(message string) string {
	key, ok := flashMessageKeys[strings.ToLower(strings.TrimSpace(message))]
	if !ok {
		return ""
	}
	return key
}

// localizedFlashMessage renders a flash message in the current language,
// falling back to the raw message when no catalog entry exists.
func localizedFlashMessage(messages map[string]string, message string) string {
	key := flashMessageTranslationKey(message)
	if key == "" {
		return message
	}
	if localized := translateMessage(messages, key); localized != key {
		return localized
	}
	return message
}

func farmTypeTranslationKey(farmType string) string {
	switch strings.ToLower(strings.TrimSpace(farmType)) {
	case models.FarmTypeCrops:
		return "farm.type.crops"
	case models.FarmTypeLivestock:
		return "farm.type.livestock"
	case models.FarmTypeMixed:
		return "farm.type.mixed"
	default:
		return ""
	}
}

func recoveryStatusTranslationKey(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.RecoveryUnderTreatment:
		return "record.status.under_treatment"
	case models.RecoveryRecovering:
		return "record.status.recovering"
	case models.RecoveryRecovered:
		return "record.status.recovered"
	case models.RecoveryDeceased:
		return "record.status.deceased"
	default:
		return ""
	}
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	messages := currentMessages(c)
	if _, ok := data["Messages"]; !ok {
		data["Messages"] = messages
	}
	if _, ok := data["Lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["Lang"] = language
	}
	if _, ok := data["Languages"]; !ok {
		data["Languages"] = handler.i18n.SupportedLanguages()
	}
	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}
	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}
	if _, ok := data["CurrentUser"]; !ok {
		if user, found := currentUser(c); found {
			data["CurrentUser"] = user
		}
	}
	if _, ok := data["NoDataLabel"]; !ok {
		data["NoDataLabel"] = localizedPageTitle(messages, "common.not_available", "-")
	}
	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}
