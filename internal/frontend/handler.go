package frontend

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Handler serves a built SPA from dir. Existing files are served as-is;
// any route in the table gets index.html so the browser router can take
// over. Everything else is a 404.
func Handler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" {
			if fi, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean))); err == nil && !fi.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}

		if _, ok := Lookup(clean); ok {
			w.Header().Set("Cache-Control", "no-cache")
			http.ServeFile(w, r, index)
			return
		}
		http.Error(w, "Not Found", http.StatusNotFound)
	})
}
