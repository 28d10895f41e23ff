// Package web holds the page templates and stylesheet served by the HTTP layer.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("pages").ParseFS(assets, "templates/*.html")
}

// Static is the stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
