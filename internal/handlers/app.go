// Package handlers maps HTTP routes onto store operations and rendered pages.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Anastasia-Osteen/blogly-2/internal/render"
	"github.com/Anastasia-Osteen/blogly-2/internal/store"
)

// App holds every dependency the handlers need. Constructed once in main and
// once per test; there is no package-level state.
type App struct {
	store  *store.Store
	render *render.Renderer
}

func NewApp(s *store.Store, r *render.Renderer) *App {
	return &App{store: s, render: r}
}

// Register attaches every route to r. Post-scoped routes live under /posts so
// a post id can never be mistaken for a user id; the remaining static
// segments (/list, /user_form) win over the user-id wildcard.
func (a *App) Register(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		a.render.NotFound(w)
	})

	r.Get("/", a.Homepage)
	r.Get("/list", a.ListUsers)
	r.Get("/user_form", a.NewUserForm)
	r.Post("/user_form", a.CreateUser)

	r.Route("/posts/{postID:[0-9]+}", func(r chi.Router) {
		r.Get("/", a.ShowPost)
		r.Get("/edit", a.EditPostForm)
		r.Post("/edit", a.UpdatePost)
		r.Post("/delete", a.DeletePost)
	})

	r.Route("/{userID:[0-9]+}", func(r chi.Router) {
		r.Get("/", a.ShowUser)
		r.Get("/edit", a.EditUserForm)
		r.Post("/edit", a.UpdateUser)
		r.Get("/delete", a.DeleteUser)
		r.Post("/delete", a.DeleteUser)
		r.Get("/posts/new", a.NewPostForm)
		r.Post("/posts/new", a.CreatePost)
	})
}

// idParam reads a numeric chi URL param. The route patterns constrain params
// to digits, so the only parse failure left is overflow, which maps to id 0
// and a not-found lookup.
func idParam(r *http.Request, name string) uint {
	id, _ := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	return uint(id)
}

// fail translates store errors into responses: missing rows become the 404
// page, empty form fields a 400, everything else a 500.
func (a *App) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		a.render.NotFound(w)
		return
	}
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		http.Error(w, "Missing required field: "+ve.Field, http.StatusBadRequest)
		return
	}
	log.Println("handler error:", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
