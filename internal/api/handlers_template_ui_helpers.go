package api

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/mlimi/internal/models"
)

// templateUserIdentity prefers the farmer's full name over the username.
func templateUserIdentity(user *models.User) string {
	if user == nil {
		return ""
	}
	for _, candidate := range []string{user.FullName, user.Username} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// isActiveTemplateRoute marks a nav entry for the route itself and for any
// page nested below it. The root only matches itself.
func isActiveTemplateRoute(currentPath string, route string) bool {
	path, _, _ := strings.Cut(strings.TrimSpace(currentPath), "?")
	if path == "" {
		path = "/"
	}
	if path == route {
		return true
	}
	return route != "/" && strings.HasPrefix(path, strings.TrimSuffix(route, "/")+"/")
}

func templateFormValue(flash FlashPayload, name string) string {
	return flash.formValue(name)
}

// templateDict builds a map from alternating keys and values so partials can
// receive more than one argument.
func templateDict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 == 1 {
		return nil, fmt.Errorf("dict: odd number of arguments (%d)", len(pairs))
	}
	values := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is %T, not string", pairs[i], pairs[i])
		}
		values[key] = pairs[i+1]
	}
	return values, nil
}
