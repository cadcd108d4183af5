package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// handleStatic serves the site's static bundle. Unknown paths fall back to
// index.html so the page's own hash router keeps working on deep links.
func (a *API) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}

	filePath := filepath.Join(a.staticDir, filepath.Clean("/"+urlPath))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(a.staticDir, "index.html"))
		return
	}
	http.ServeFile(w, r, filePath)
}
