package startup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/handler/http/pathutil"
	"github.com/siawash1991/my-website/internal/handler/http/requestid"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	startupUC "github.com/siawash1991/my-website/internal/usecase/startup"
)

type ListHandler struct {
	Svc    *startupUC.Service
	Logger *slog.Logger
}

// ServeHTTP list profiles
// @Summary      List startup profiles
// @Tags         startups
// @Produce      json
// @Success      200 {array} DTO "profile list"
// @Failure      500 {string} string "server error"
// @Router       /api/startups [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	reqID := requestid.FromContext(ctx)

	startups, err := h.Svc.List(ctx)
	if err != nil {
		h.Logger.Error("failed to list startups",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(startups))
	for _, s := range startups {
		dtos = append(dtos, fromEntity(s))
	}

	h.Logger.Info("startup list",
		"count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, dtos)
}

type GetHandler struct{ Svc *startupUC.Service }

// ServeHTTP get one profile
// @Summary      Get a startup profile
// @Tags         startups
// @Produce      json
// @Param        id path string true "profile id"
// @Success      200 {object} DTO "profile"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/startups/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/startups/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, startupUC.ErrStartupNotFound)
		return
	}

	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, startupUC.ErrStartupNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(s))
}

type createRequest struct {
	NameEn        string  `json:"nameEn"`
	NameFa        string  `json:"nameFa"`
	DescriptionEn string  `json:"descriptionEn"`
	DescriptionFa string  `json:"descriptionFa"`
	StatusEn      string  `json:"statusEn"`
	StatusFa      string  `json:"statusFa"`
	CategoryEn    string  `json:"categoryEn"`
	CategoryFa    string  `json:"categoryFa"`
	Thumbnail     string  `json:"thumbnail"`
	WebsiteURL    *string `json:"websiteUrl"`
	ArticleURL    *string `json:"articleUrl"`
}

type CreateHandler struct{ Svc *startupUC.Service }

// ServeHTTP create profile
// @Summary      Create a startup profile
// @Tags         startups
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        startup body object true "profile fields"
// @Success      201 {object} DTO "created profile"
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      500 {string} string "server error"
// @Router       /api/startups [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	s, err := h.Svc.Create(r.Context(), startupUC.CreateInput{
		NameEn:        req.NameEn,
		NameFa:        req.NameFa,
		DescriptionEn: req.DescriptionEn,
		DescriptionFa: req.DescriptionFa,
		StatusEn:      req.StatusEn,
		StatusFa:      req.StatusFa,
		CategoryEn:    req.CategoryEn,
		CategoryFa:    req.CategoryFa,
		Thumbnail:     req.Thumbnail,
		WebsiteURL:    req.WebsiteURL,
		ArticleURL:    req.ArticleURL,
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

	respond.JSON(w, http.StatusCreated, fromEntity(s))
}

type updateRequest struct {
	NameEn        *string `json:"nameEn"`
	NameFa        *string `json:"nameFa"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionFa *string `json:"descriptionFa"`
	StatusEn      *string `json:"statusEn"`
	StatusFa      *string `json:"statusFa"`
	CategoryEn    *string `json:"categoryEn"`
	CategoryFa    *string `json:"categoryFa"`
	Thumbnail     *string `json:"thumbnail"`
	WebsiteURL    *string `json:"websiteUrl"`
	ArticleURL    *string `json:"articleUrl"`
}

type UpdateHandler struct{ Svc *startupUC.Service }

// ServeHTTP update profile
// @Summary      Update a startup profile
// @Tags         startups
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id path string true "profile id"
// @Param        startup body object true "fields to change"
// @Success      200 {object} DTO "updated profile"
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/startups/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/startups/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, startupUC.ErrStartupNotFound)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	s, err := h.Svc.Update(r.Context(), id, startupUC.UpdateInput{
		NameEn:        req.NameEn,
		NameFa:        req.NameFa,
		DescriptionEn: req.DescriptionEn,
		DescriptionFa: req.DescriptionFa,
		StatusEn:      req.StatusEn,
		StatusFa:      req.StatusFa,
		CategoryEn:    req.CategoryEn,
		CategoryFa:    req.CategoryFa,
		Thumbnail:     req.Thumbnail,
		WebsiteURL:    req.WebsiteURL,
		ArticleURL:    req.ArticleURL,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var ve *entity.ValidationError
		switch {
		case errors.As(err, &ve):
			code = http.StatusBadRequest
		case errors.Is(err, startupUC.ErrStartupNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(s))
}

type DeleteHandler struct{ Svc *startupUC.Service }

// ServeHTTP delete profile
// @Summary      Delete a startup profile
// @Tags         startups
// @Security     SessionCookie
// @Param        id path string true "profile id"
// @Success      204 "No Content"
// @Failure      401 {string} string "authentication required"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/startups/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/startups/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, startupUC.ErrStartupNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, startupUC.ErrStartupNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register wires the startup routes onto the mux.
func Register(mux *http.ServeMux, svc *startupUC.Service, gate func(http.Handler) http.Handler, logger *slog.Logger) {
	mux.Handle("GET /api/startups", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/startups/", GetHandler{Svc: svc})

	mux.Handle("POST /api/startups", gate(CreateHandler{Svc: svc}))
	mux.Handle("PUT /api/startups/", gate(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /api/startups/", gate(DeleteHandler{Svc: svc}))
}
