package handler

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// StaticHandler serves the public site and the admin page from disk.
type StaticHandler struct {
	frontend fs.FS
	admin    fs.FS
}

// NewStaticHandler roots the frontend and admin file systems at the given directories.
func NewStaticHandler(frontendDir, adminDir string) *StaticHandler {
	return &StaticHandler{frontend: os.DirFS(frontendDir), admin: os.DirFS(adminDir)}
}

// ServeHTTP handles "/" → index.html, "/admin" → admin.html and any other
// path as a file under the frontend directory.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	switch name {
	case "":
		h.serveFile(w, r, h.frontend, "index.html")
	case "admin":
		h.serveFile(w, r, h.admin, "admin.html")
	default:
		h.serveFile(w, r, h.frontend, name)
	}
}

// serveFile writes name from fsys, or a JSON 404 when it is missing or a directory.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) {
	if !fs.ValidPath(name) {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	http.ServeFileFS(w, r, fsys, name)
}
