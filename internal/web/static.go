// Package web delivers the embedded front-end for the activities site.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler serves the front-end assets. Mount it at /static/.
func Handler() http.Handler {
	return http.FileServer(http.FS(assets))
}
