// Package web bundles the HTML dashboard templates and the mock media assets
// into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/Princegupta101/instinctive/internal/dashboard"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const timeLayout = "Jan 2, 15:04:05"

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"display":    dashboard.DisplayFor,
		"feed":       dashboard.FeedFor,
		"isLive":     dashboard.IsLiveFeed,
		"clock":      dashboard.FormatClock,
		"formatTime": formatTime,
		"shortID":    shortID,
	}
}

func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
}

// Assets serves one directory of the embedded static tree, e.g. "videos".
func Assets(dir string) (http.FileSystem, error) {
	sub, err := fs.Sub(staticFS, "static/"+dir)
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
