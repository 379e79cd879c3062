package post

import (
	"errors"
	"net/http"

	"github.com/siawash1991/my-website/internal/handler/http/pathutil"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

type GetHandler struct{ Svc *postUC.Service }

// ServeHTTP get one post
// @Summary      Get a blog post
// @Description  Returns the post with the given id.
// @Tags         posts
// @Produce      json
// @Param        id path string true "post id"
// @Success      200 {object} DTO "post"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/posts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/posts/")
	if err != nil {
		// ids are opaque, so a malformed one is just an id that doesn't exist
		respond.SafeError(w, http.StatusNotFound, postUC.ErrPostNotFound)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, postUC.ErrPostNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(p))
}
