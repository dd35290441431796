package webui

import (
	"net/http"

	"pitstop.roadtripper.org/internal/app"
)

// WebUI serves the built frontend bundle from the public directory, with a
// single-page-app fallback to index.html for client-side routes.
type WebUI struct {
	*app.Application

	// PublicDir is where the built frontend lives. Defaults to ./public.
	PublicDir string
}

func (webUI *WebUI) publicDir() string {
	if webUI.PublicDir != "" {
		return webUI.PublicDir
	}
	return "public"
}

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", webUI.staticHandler)
}
