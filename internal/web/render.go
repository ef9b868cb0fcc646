package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"gigbook/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageFiles lists every page template; each is parsed together with the
// shared layout into its own template set.
var pageFiles = []string{
	"home.html",
	"venues.html",
	"search_venues.html",
	"show_venue.html",
	"new_venue.html",
	"edit_venue.html",
	"artists.html",
	"search_artists.html",
	"show_artist.html",
	"new_artist.html",
	"edit_artist.html",
	"shows.html",
	"new_show.html",
	"404.html",
	"500.html",
}

// Page is the payload every template set is executed with.
type Page struct {
	Title   string
	Flashes []Flash
	Data    interface{}
}

// Renderer executes the embedded HTML templates.
type Renderer struct {
	templates map[string]*template.Template
	Logger    *logger.Logger
}

func NewRenderer(log *logger.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates, Logger: log}, nil
}

// HTML renders one page, draining any pending flash notices into it.
func (r *Renderer) HTML(w http.ResponseWriter, req *http.Request, status int, page, title string, data interface{}) {
	r.HTMLWithFlash(w, req, status, page, title, data)
}

// HTMLWithFlash renders one page with extra notices appended after the
// drained pending ones, for handlers that re-render instead of
// redirecting. The template executes into a buffer first so a
// rendering fault never leaves a half-written page on the wire.
func (r *Renderer) HTMLWithFlash(w http.ResponseWriter, req *http.Request, status int, page, title string, data interface{}, flashes ...Flash) {
	tmpl, ok := r.templates[page]
	if !ok {
		r.Logger.Error("RENDER", fmt.Sprintf("unknown template: %s", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	payload := Page{
		Title:   title,
		Flashes: append(PopFlashes(w, req), flashes...),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", payload); err != nil {
		r.Logger.Error("RENDER", fmt.Sprintf("failed to render %s: %v", page, err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// NotFound renders the dedicated 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request) {
	r.HTML(w, req, http.StatusNotFound, "404.html", "Not Found", nil)
}

// ServerError renders the dedicated 500 page.
func (r *Renderer) ServerError(w http.ResponseWriter, req *http.Request) {
	r.HTML(w, req, http.StatusInternalServerError, "500.html", "Server Error", nil)
}
