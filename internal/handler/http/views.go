// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/internal/hours"
	"github.com/MKhiriev/billable-hours/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "templates/layout.html"

// views holds one template set per page, each combined with the layout.
type views struct {
	pages map[string]*template.Template
}

func newViews() (*views, error) {
	layout, err := template.New(path.Base(layoutTemplate)).Funcs(viewFuncs).ParseFS(templateFS, layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	v := &views{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutTemplate {
			continue
		}
		page, err := template.Must(layout.Clone()).ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		v.pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}

	return v, nil
}

func (v *views) render(w io.Writer, name string, data any) error {
	page, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

var viewFuncs = template.FuncMap{
	"hhmm":    hours.Format,
	"decimal": hours.FormatDecimal,
	"date": func(t time.Time) string {
		return t.Format(models.DateLayout)
	},
	"datePtr": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(models.DateLayout)
	},
	"stamp": func(t time.Time) string {
		return t.Format(models.TimestampLayout)
	},
	"weekday": func(d time.Weekday) string {
		return d.String()
	},
	"money": func(symbol string, amount float64) string {
		return fmt.Sprintf("%s%.2f", symbol, amount)
	},
	"percent": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
	"hasID": slices.Contains[[]int64, int64],
}
