package api

import (
	"html/template"
	"time"
)

func newTemplateFuncMap(location *time.Location) template.FuncMap {
	if location == nil {
		location = time.UTC
	}
	return template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			return formatTemplateDate(value, layout, location)
		},
		"formatFloat":    formatTemplateFloat,
		"measurement":    formatTemplateMeasurement,
		"t":              templateTranslate,
		"flash":          localizedFlashMessage,
		"farmTypeLabel":  templateFarmTypeLabel,
		"recoveryLabel":  templateRecoveryLabel,
		"languageName":   templateLanguageName,
		"userIdentity":   templateUserIdentity,
		"isActiveRoute":  isActiveTemplateRoute,
		"formValue":      templateFormValue,
		"dict":           templateDict,
		"recoveryStates": templateRecoveryStatuses,
		"farmTypes":      templateFarmTypes,
	}
}
