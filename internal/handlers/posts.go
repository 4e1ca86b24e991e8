package handlers

import (
	"fmt"
	"net/http"
)

func (a *App) NewPostForm(w http.ResponseWriter, r *http.Request) {
	// The form needs the author for its heading and action URL, and a
	// missing author must 404 before anything is submitted.
	user, err := a.store.GetUser(r.Context(), idParam(r, "userID"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "new_post.html", user)
}

func (a *App) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := idParam(r, "userID")
	form := bindPostForm(r)
	if _, err := a.store.CreatePost(r.Context(), userID, form.fields()); err != nil {
		a.fail(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%d", userID), http.StatusSeeOther)
}

func (a *App) ShowPost(w http.ResponseWriter, r *http.Request) {
	post, err := a.store.GetPost(r.Context(), idParam(r, "postID"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "show_post.html", post)
}

func (a *App) EditPostForm(w http.ResponseWriter, r *http.Request) {
	post, err := a.store.GetPost(r.Context(), idParam(r, "postID"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "edit_post.html", post)
}

func (a *App) UpdatePost(w http.ResponseWriter, r *http.Request) {
	form := bindPostForm(r)
	post, err := a.store.UpdatePost(r.Context(), idParam(r, "postID"), form.fields())
	if err != nil {
		a.fail(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%d", post.UserID), http.StatusSeeOther)
}

func (a *App) DeletePost(w http.ResponseWriter, r *http.Request) {
	post, err := a.store.DeletePost(r.Context(), idParam(r, "postID"))
	if err != nil {
		a.fail(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%d", post.UserID), http.StatusSeeOther)
}
