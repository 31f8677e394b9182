package api

import (
	"github.com/terraincognita07/mlimi/internal/i18n"
	"github.com/terraincognita07/mlimi/internal/models"
)

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func templateFarmTypeLabel(messages map[string]string, farmType string) string {
	key := farmTypeTranslationKey(farmType)
	if key == "" {
		return farmType
	}
	return translateMessage(messages, key)
}

func templateRecoveryLabel(messages map[string]string, status string) string {
	key := recoveryStatusTranslationKey(status)
	if key == "" {
		return status
	}
	return translateMessage(messages, key)
}

func templateLanguageName(language string) string {
	return i18n.LanguageName(language)
}

func templateRecoveryStatuses() []string {
	return models.RecoveryStatuses()
}

func templateFarmTypes() []string {
	return models.FarmTypes()
}
