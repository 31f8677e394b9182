package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/terraincognita07/mlimi/internal/models"
)

var errInvalidSession = errors.New("invalid session")

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawCookie := strings.TrimSpace(c.Cookies(authCookieName))
	if rawCookie == "" {
		return nil, errors.New("missing auth cookie")
	}

	tokenValue, err := handler.cookieCodec.open(authCookiePurpose, rawCookie)
	if err != nil {
		return nil, errInvalidSession
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(string(tokenValue), claims, func(token *jwt.Token) (interface{}, error) {
		return handler.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, errInvalidSession
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
