package api

import (
	"fmt"
	"html/template"
	"path/filepath"
)

// parsePageTemplates parses base.html once and gives every page its own
// clone, so each page can define "content" without clashing.
func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	layout, err := template.New("base").Funcs(funcMap).ParseFiles(filepath.Join(templateDir, "base.html"))
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, err)
		}
		if _, err := clone.ParseFiles(filepath.Join(templateDir, page+".html")); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		templates[page] = clone
	}
	return templates, nil
}
