package api

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/terraincognita07/mlimi/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Register(services.RegistrationInput{
		Username: input.Username,
		Phone:    input.Phone,
		FullName: input.FullName,
		Location: input.Location,
		Password: input.Password,
		Language: input.Language,
	})
	if err != nil {
		status := registrationErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			handler.logger.Error("register user", zap.Error(err))
		}
		return handler.respondAuthError(c, status, registrationErrorMessage(err))
	}

	handler.logger.Info("user registered", zap.Uint("user_id", user.ID))
	handler.setFlashCookie(c, FlashPayload{AuthSuccess: "registration successful", LoginPhone: user.Phone})
	return redirectTo(c, "/login")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if wait := handler.loginLimiter.retryAfter(limiterKey, now); wait > 0 {
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid credentials")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Phone, input.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			handler.logger.Error("authenticate user", zap.Error(err))
		}
		handler.loginLimiter.recordFailure(limiterKey, now)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.startSession(c, &user, input.RememberMe); err != nil {
		handler.logger.Error("issue session", zap.Uint("user_id", user.ID), zap.Error(err))
		return handler.respondAuthError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setLanguageCookie(c, user.Language)
	return redirectTo(c, "/dashboard")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.endSession(c)
	handler.clearFlashCookie(c)
	return redirectTo(c, "/login")
}
