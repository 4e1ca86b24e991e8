package handlers

import "net/http"

const homepagePostCount = 5

func (a *App) Homepage(w http.ResponseWriter, r *http.Request) {
	posts, err := a.store.RecentPosts(r.Context(), homepagePostCount)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.render.HTML(w, http.StatusOK, "homepage.html", posts)
}
