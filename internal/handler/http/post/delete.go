package post

import (
	"errors"
	"net/http"

	"github.com/siawash1991/my-website/internal/handler/http/pathutil"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

type DeleteHandler struct{ Svc *postUC.Service }

// ServeHTTP delete post
// @Summary      Delete a blog post
// @Description  Deletes the post with the given id. Requires a session.
// @Tags         posts
// @Security     SessionCookie
// @Param        id path string true "post id"
// @Success      204 "No Content"
// @Failure      401 {string} string "authentication required"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/posts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/posts/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, postUC.ErrPostNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, postUC.ErrPostNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
