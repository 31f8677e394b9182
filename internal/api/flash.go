package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload = normalizeFlashPayload(payload)
	if payload.isEmpty() {
		handler.clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(serialized),
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	handler.clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return normalizeFlashPayload(payload)
}

func (handler *Handler) clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func normalizeFlashPayload(payload FlashPayload) FlashPayload {
	payload.AuthError = strings.TrimSpace(payload.AuthError)
	payload.AuthSuccess = strings.TrimSpace(payload.AuthSuccess)
	payload.FormError = strings.TrimSpace(payload.FormError)
	payload.FormSuccess = strings.TrimSpace(payload.FormSuccess)
	payload.LoginPhone = strings.TrimSpace(payload.LoginPhone)

	values := make(map[string]string, len(payload.FormValues))
	for key, value := range payload.FormValues {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values[key] = trimmed
		}
	}
	payload.FormValues = values
	if len(values) == 0 {
		payload.FormValues = nil
	}
	return payload
}

func (payload FlashPayload) isEmpty() bool {
	return payload.AuthError == "" &&
		payload.AuthSuccess == "" &&
		payload.FormError == "" &&
		payload.FormSuccess == "" &&
		payload.LoginPhone == "" &&
		len(payload.FormValues) == 0
}

// formValue returns the preserved field from a failed submission, if any.
func (payload FlashPayload) formValue(name string) string {
	if payload.FormValues == nil {
		return ""
	}
	return payload.FormValues[name]
}
