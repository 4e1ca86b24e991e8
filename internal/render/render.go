// Package render turns handler output into HTML pages. Templates are embedded
// in the binary and parsed once at startup; each page shares base.html.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{
	"homepage.html",
	"list.html",
	"details.html",
	"user_form.html",
	"edit_user.html",
	"show_post.html",
	"new_post.html",
	"edit_post.html",
	"404.html",
}

type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(files, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// HTML writes the named page with the given context. An unknown name is a
// programming error, not a user-facing mode.
func (rn *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	t, ok := rn.pages[name]
	if !ok {
		log.Println("render: unknown template:", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Println("render:", name, err)
	}
}

// NotFound renders the shared 404 page. Used for missing entities and
// unmatched routes alike.
func (rn *Renderer) NotFound(w http.ResponseWriter) {
	rn.HTML(w, http.StatusNotFound, "404.html", nil)
}
