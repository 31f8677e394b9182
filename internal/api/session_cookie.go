package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/terraincognita07/mlimi/internal/models"
)

func sessionTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return rememberAuthTokenTTL
	}
	return defaultAuthTokenTTL
}

// startSession signs a session token for the farmer and stores it sealed in
// the auth cookie. Without remember-me the cookie lives for the browser
// session only, while the token itself still expires after a week.
func (handler *Handler) startSession(c *fiber.Ctx, user *models.User, rememberMe bool) error {
	ttl := sessionTTL(rememberMe)
	signed, err := handler.signSessionToken(user.ID, time.Now(), ttl)
	if err != nil {
		return err
	}
	sealed, err := handler.cookieCodec.seal(authCookiePurpose, []byte(signed))
	if err != nil {
		return err
	}

	var expires time.Time
	if rememberMe {
		expires = time.Now().Add(ttl)
	}
	c.Cookie(handler.sessionCookie(sealed, expires))
	return nil
}

func (handler *Handler) endSession(c *fiber.Ctx) {
	c.Cookie(handler.sessionCookie("", time.Unix(0, 0)))
}

func (handler *Handler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (handler *Handler) signSessionToken(userID uint, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}
