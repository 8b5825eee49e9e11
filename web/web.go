// Package web holds the server-rendered views. Templates are embedded and
// named by their path under templates/, e.g. "farms/show.html".
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates
var templateFS embed.FS

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"price": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
		"capitalize": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}
}

// Templates parses every view. Partials are parsed into the same set so
// pages can call {{template "header" .}}.
func Templates() (*template.Template, error) {
	root := template.New("").Funcs(FuncMap())
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}

	err = fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		content, err := fs.ReadFile(sub, p)
		if err != nil {
			return err
		}

		if _, err := root.New(p).Parse(string(content)); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return root, nil
}
