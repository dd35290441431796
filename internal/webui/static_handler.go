package webui

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// staticHandler serves files out of the public directory. Paths that do not
// match a file fall back to index.html so client-side routing works after a
// page reload.
func (webUI *WebUI) staticHandler(w http.ResponseWriter, r *http.Request) {
	dir := webUI.publicDir()

	requested := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	if requested == "" || requested == "." {
		requested = "index.html"
	}

	filePath := filepath.Join(dir, requested)
	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, filePath)
		return
	}

	indexPath := filepath.Join(dir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, indexPath)
}
