package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/handler/http/pathutil"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

type UpdateHandler struct{ Svc *postUC.Service }

// ServeHTTP update post
// @Summary      Update a blog post
// @Description  Partially updates a post; omitted fields keep their value. Requires a session.
// @Tags         posts
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id path string true "post id"
// @Param        post body object true "fields to change"
// @Success      200 {object} DTO "updated post"
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/posts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/posts/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, postUC.ErrPostNotFound)
		return
	}

	var req struct {
		TitleEn    *string `json:"titleEn"`
		TitleFa    *string `json:"titleFa"`
		ExcerptEn  *string `json:"excerptEn"`
		ExcerptFa  *string `json:"excerptFa"`
		ContentEn  *string `json:"contentEn"`
		ContentFa  *string `json:"contentFa"`
		CategoryEn *string `json:"categoryEn"`
		CategoryFa *string `json:"categoryFa"`
		ReadTime   *int    `json:"readTime"`
		Date       *string `json:"date"`
		Thumbnail  *string `json:"thumbnail"`
		ArticleURL *string `json:"articleUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	p, err := h.Svc.Update(r.Context(), id, postUC.UpdateInput{
		TitleEn:    req.TitleEn,
		TitleFa:    req.TitleFa,
		ExcerptEn:  req.ExcerptEn,
		ExcerptFa:  req.ExcerptFa,
		ContentEn:  req.ContentEn,
		ContentFa:  req.ContentFa,
		CategoryEn: req.CategoryEn,
		CategoryFa: req.CategoryFa,
		ReadTime:   req.ReadTime,
		Date:       req.Date,
		Thumbnail:  req.Thumbnail,
		ArticleURL: req.ArticleURL,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var ve *entity.ValidationError
		switch {
		case errors.As(err, &ve):
			code = http.StatusBadRequest
		case errors.Is(err, postUC.ErrPostNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(p))
}
