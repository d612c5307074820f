package handlers

import (
	"io/fs"
	"net/http"
)

// Pages serves the embedded promotional site pages.
type Pages struct {
	fs fs.FS
}

func NewPages(pages fs.FS) *Pages {
	return &Pages{fs: pages}
}

// Serve returns a handler for one named page.
func (p *Pages) Serve(name string) http.HandlerFunc {
	return p.serve(name, http.StatusOK)
}

// NotFound serves the 404 page for unknown paths.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.serve("404.html", http.StatusNotFound)(w, r)
}

func (p *Pages) serve(name string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := fs.ReadFile(p.fs, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}
