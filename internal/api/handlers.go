package api

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/i18n"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool, logger *zap.Logger) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	templates, err := parsePageTemplates(templateDir, newTemplateFuncMap(location), pageTemplates)
	if err != nil {
		return nil, err
	}

	codec, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("init cookie codec: %w", err)
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		logger:       logger.Named("http"),
		templates:    templates,
		cookieCodec:  codec,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}
	return handler.withDependencies(database), nil
}
