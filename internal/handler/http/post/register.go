package post

import (
	"log/slog"
	"net/http"

	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

// Register wires the post routes onto the mux. Reads are public; create,
// update and delete go through gate, which rejects anonymous requests before
// any input is even decoded.
func Register(mux *http.ServeMux, svc *postUC.Service, gate func(http.Handler) http.Handler, logger *slog.Logger) {
	mux.Handle("GET /api/posts", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/posts/", GetHandler{Svc: svc})

	mux.Handle("POST /api/posts", gate(CreateHandler{Svc: svc}))
	mux.Handle("PUT /api/posts/", gate(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /api/posts/", gate(DeleteHandler{Svc: svc}))
}
