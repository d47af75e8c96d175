package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ysocial/internal/pkg/resp"
)

// HandleGetFollowers lists the followers of the user in the path.
func HandleGetFollowers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followers, err := deps.Users.Followers(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			resp.RespondError(w, r, err)
			return
		}

		resp.Respond(w, r, http.StatusOK, "Followers found", followers)
	}
}

// HandleGetPosts lists every post of the user in the path.
func HandleGetPosts(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := deps.Users.Posts(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			resp.RespondError(w, r, err)
			return
		}

		resp.Respond(w, r, http.StatusOK, "Posts found", posts)
	}
}

// HandleGetPostsByDate lists the user's posts published at the instant in the path.
func HandleGetPostsByDate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := deps.Users.PostsByDate(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"))
		if err != nil {
			resp.RespondError(w, r, err)
			return
		}

		resp.Respond(w, r, http.StatusOK, "Posts found", posts)
	}
}
