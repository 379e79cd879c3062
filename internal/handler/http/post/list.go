package post

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/siawash1991/my-website/internal/handler/http/requestid"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

type ListHandler struct {
	Svc    *postUC.Service
	Logger *slog.Logger
}

// ServeHTTP list posts
// @Summary      List blog posts
// @Description  Returns all posts, both languages, ordered by publication date.
// @Tags         posts
// @Produce      json
// @Success      200 {array} DTO "post list"
// @Failure      500 {string} string "server error"
// @Router       /api/posts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	reqID := requestid.FromContext(ctx)

	posts, err := h.Svc.List(ctx)
	if err != nil {
		h.Logger.Error("failed to list posts",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, fromEntity(p))
	}

	h.Logger.Info("post list",
		"count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, dtos)
}
