package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

type CreateHandler struct{ Svc *postUC.Service }

// ServeHTTP create post
// @Summary      Create a blog post
// @Description  Creates a post. Requires a session.
// @Tags         posts
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        post body object true "post fields"
// @Success      201 {object} DTO "created post"
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      500 {string} string "server error"
// @Router       /api/posts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TitleEn    string  `json:"titleEn"`
		TitleFa    string  `json:"titleFa"`
		ExcerptEn  string  `json:"excerptEn"`
		ExcerptFa  string  `json:"excerptFa"`
		ContentEn  string  `json:"contentEn"`
		ContentFa  string  `json:"contentFa"`
		CategoryEn string  `json:"categoryEn"`
		CategoryFa string  `json:"categoryFa"`
		ReadTime   int     `json:"readTime"`
		Date       string  `json:"date"`
		Thumbnail  string  `json:"thumbnail"`
		ArticleURL *string `json:"articleUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	p, err := h.Svc.Create(r.Context(), postUC.CreateInput{
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
		if errors.As(err, &ve) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, fromEntity(p))
}
