package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/terraincognita07/gutlog/internal/db"
	"github.com/terraincognita07/gutlog/internal/models"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	location     *time.Location
	templates    map[string]*template.Template
}

func NewHandler(database *gorm.DB, templateDir string, location *time.Location) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatTime": func(value time.Time) string {
			if value.IsZero() {
				return ""
			}
			return value.In(location).Format("Mon, Jan 2 2006 · 3:04 PM")
		},
		"formatClock": func(value time.Time) string {
			if value.IsZero() {
				return ""
			}
			return value.In(location).Format("3:04 PM")
		},
		"fieldError": func(errs models.ValidationErrors, name string) string {
			if errs == nil {
				return ""
			}
			return errs[name]
		},
		"fieldValue": func(values map[string]string, name string) string {
			if values == nil {
				return ""
			}
			return values[name]
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"home",
		"timeline",
		"entries",
		"entry_form",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	return &Handler{
		db:           database,
		repositories: db.NewRepositories(database),
		location:     location,
		templates:    templates,
	}, nil
}
