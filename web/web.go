// Package web holds the embedded HTML templates and static assets
// for the server-side views.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static/*
var Static embed.FS
