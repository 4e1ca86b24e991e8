package handlers

import (
	"fmt"
	"net/http"
)

func (a *App) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.ListUsers(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "list.html", users)
}

func (a *App) NewUserForm(w http.ResponseWriter, r *http.Request) {
	a.render.HTML(w, http.StatusOK, "user_form.html", nil)
}

func (a *App) CreateUser(w http.ResponseWriter, r *http.Request) {
	form := bindUserForm(r)
	user, err := a.store.CreateUser(r.Context(), form.fields())
	if err != nil {
		a.fail(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%d", user.ID), http.StatusSeeOther)
}

func (a *App) ShowUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.store.GetUser(r.Context(), idParam(r, "userID"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "details.html", user)
}

func (a *App) EditUserForm(w http.ResponseWriter, r *http.Request) {
	user, err := a.store.GetUser(r.Context(), idParam(r, "userID"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "edit_user.html", user)
}

func (a *App) UpdateUser(w http.ResponseWriter, r *http.Request) {
	form := bindUserForm(r)
	user, err := a.store.UpdateUser(r.Context(), idParam(r, "userID"), form.fields())
	if err != nil {
		a.fail(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%d", user.ID), http.StatusSeeOther)
}

func (a *App) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteUser(r.Context(), idParam(r, "userID")); err != nil {
		a.fail(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
