// Package web embeds the dashboard templates and static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v3"
)

//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

// NewEngine returns the html template engine backed by the embedded views.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Static returns the embedded static asset tree.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
