package podcast

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
	podcastUC "github.com/siawash1991/my-website/internal/usecase/podcast"
)

type ListHandler struct {
	Svc    *podcastUC.Service
	Logger *slog.Logger
}

// ServeHTTP list episodes
// @Summary      List podcast episodes
// @Tags         podcasts
// @Produce      json
// @Success      200 {array} DTO "episode list"
// @Failure      500 {string} string "server error"
// @Router       /api/podcasts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	reqID := requestid.FromContext(ctx)

	podcasts, err := h.Svc.List(ctx)
	if err != nil {
		h.Logger.Error("failed to list podcasts",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(podcasts))
	for _, p := range podcasts {
		dtos = append(dtos, fromEntity(p))
	}

	h.Logger.Info("podcast list",
		"count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, dtos)
}

type GetHandler struct{ Svc *podcastUC.Service }

// ServeHTTP get one episode
// @Summary      Get a podcast episode
// @Tags         podcasts
// @Produce      json
// @Param        id path string true "episode id"
// @Success      200 {object} DTO "episode"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/podcasts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/podcasts/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, podcastUC.ErrPodcastNotFound)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, podcastUC.ErrPodcastNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(p))
}

type createRequest struct {
	TitleEn       string  `json:"titleEn"`
	TitleFa       string  `json:"titleFa"`
	DescriptionEn string  `json:"descriptionEn"`
	DescriptionFa string  `json:"descriptionFa"`
	Duration      string  `json:"duration"`
	Date          string  `json:"date"`
	AudioURL      *string `json:"audioUrl"`
	YoutubeURL    *string `json:"youtubeUrl"`
}

type CreateHandler struct{ Svc *podcastUC.Service }

// ServeHTTP create episode
// @Summary      Create a podcast episode
// @Tags         podcasts
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        podcast body object true "episode fields"
// @Success      201 {object} DTO "created episode"
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      500 {string} string "server error"
// @Router       /api/podcasts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	p, err := h.Svc.Create(r.Context(), podcastUC.CreateInput{
		TitleEn:       req.TitleEn,
		TitleFa:       req.TitleFa,
		DescriptionEn: req.DescriptionEn,
		DescriptionFa: req.DescriptionFa,
		Duration:      req.Duration,
		Date:          req.Date,
		AudioURL:      req.AudioURL,
		YoutubeURL:    req.YoutubeURL,
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

type updateRequest struct {
	TitleEn       *string `json:"titleEn"`
	TitleFa       *string `json:"titleFa"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionFa *string `json:"descriptionFa"`
	Duration      *string `json:"duration"`
	Date          *string `json:"date"`
	AudioURL      *string `json:"audioUrl"`
	YoutubeURL    *string `json:"youtubeUrl"`
}

type UpdateHandler struct{ Svc *podcastUC.Service }

// ServeHTTP update episode
// @Summary      Update a podcast episode
// @Tags         podcasts
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id path string true "episode id"
// @Param        podcast body object true "fields to change"
// @Success      200 {object} DTO "updated episode"
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/podcasts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/podcasts/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, podcastUC.ErrPodcastNotFound)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	p, err := h.Svc.Update(r.Context(), id, podcastUC.UpdateInput{
		TitleEn:       req.TitleEn,
		TitleFa:       req.TitleFa,
		DescriptionEn: req.DescriptionEn,
		DescriptionFa: req.DescriptionFa,
		Duration:      req.Duration,
		Date:          req.Date,
		AudioURL:      req.AudioURL,
		YoutubeURL:    req.YoutubeURL,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var ve *entity.ValidationError
		switch {
		case errors.As(err, &ve):
			code = http.StatusBadRequest
		case errors.Is(err, podcastUC.ErrPodcastNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(p))
}

type DeleteHandler struct{ Svc *podcastUC.Service }

// ServeHTTP delete episode
// @Summary      Delete a podcast episode
// @Tags         podcasts
// @Security     SessionCookie
// @Param        id path string true "episode id"
// @Success      204 "No Content"
// @Failure      401 {string} string "authentication required"
// @Failure      404 {string} string "not found"
// @Failure      500 {string} string "server error"
// @Router       /api/podcasts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractKey(r.URL.Path, "/api/podcasts/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, podcastUC.ErrPodcastNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, podcastUC.ErrPodcastNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register wires the podcast routes onto the mux.
func Register(mux *http.ServeMux, svc *podcastUC.Service, gate func(http.Handler) http.Handler, logger *slog.Logger) {
	mux.Handle("GET /api/podcasts", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/podcasts/", GetHandler{Svc: svc})

	mux.Handle("POST /api/podcasts", gate(CreateHandler{Svc: svc}))
	mux.Handle("PUT /api/podcasts/", gate(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /api/podcasts/", gate(DeleteHandler{Svc: svc}))
}
