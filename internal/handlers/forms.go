package handlers

import (
	"net/http"

	"github.com/Anastasia-Osteen/blogly-2/internal/store"
)

// Each mutating route binds its body into one of these typed schemas before
// any handler logic runs. Presence checks happen in the store, so no write
// path can bypass them.

type userForm struct {
	FirstName string
	LastName  string
	ImageURL  string
}

func bindUserForm(r *http.Request) userForm {
	return userForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		ImageURL:  r.PostFormValue("image_url"),
	}
}

func (f userForm) fields() store.UserFields {
	return store.UserFields{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		ImageURL:  f.ImageURL,
	}
}

type postForm struct {
	Title   string
	Content string
}

func bindPostForm(r *http.Request) postForm {
	return postForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}
}

func (f postForm) fields() store.PostFields {
	return store.PostFields{
		Title:   f.Title,
		Content: f.Content,
	}
}
