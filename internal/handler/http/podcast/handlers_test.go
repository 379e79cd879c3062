package podcast_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
	podcastHTTP "github.com/siawash1991/my-website/internal/handler/http/podcast"
	podcastUC "github.com/siawash1991/my-website/internal/usecase/podcast"
)

type stubRepo struct {
	podcasts map[string]*entity.Podcast
	order    []string
	err      error
}

func newStubRepo() *stubRepo {
	return &stubRepo{podcasts: make(map[string]*entity.Podcast)}
}

func (r *stubRepo) List(ctx context.Context) ([]*entity.Podcast, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Podcast, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.podcasts[id])
	}
	return out, nil
}

func (r *stubRepo) Get(ctx context.Context, id string) (*entity.Podcast, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.podcasts[id], nil
}

func (r *stubRepo) Create(ctx context.Context, p *entity.Podcast) error {
	if r.err != nil {
		return r.err
	}
	r.podcasts[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubRepo) Update(ctx context.Context, p *entity.Podcast) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.podcasts[p.ID]; !ok {
		return false, nil
	}
	r.podcasts[p.ID] = p
	return true, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.podcasts[id]; !ok {
		return false, nil
	}
	delete(r.podcasts, id)
	return true, nil
}

func (r *stubRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.podcasts)), r.err
}

func passGate(next http.Handler) http.Handler { return next }

func denyGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func newMux(repo *stubRepo, gate func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	podcastHTTP.Register(mux, &podcastUC.Service{Repo: repo}, gate, logger)
	return mux
}

func seedPodcast(repo *stubRepo, id string) *entity.Podcast {
	audio := "https://cdn.example.com/ep1.mp3"
	p := &entity.Podcast{
		ID:            id,
		TitleEn:       "ChatGPT and the Future of Work",
		TitleFa:       "چت‌جی‌پی‌تی و آینده کار",
		DescriptionEn: "A conversation about automation.",
		DescriptionFa: "گفتگویی درباره اتوماسیون.",
		Duration:      "45:30",
		Date:          "2024-09-20",
		AudioURL:      &audio,
		CreatedAt:     time.Date(2024, 9, 20, 8, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 9, 20, 8, 0, 0, 0, time.UTC),
	}
	repo.podcasts[id] = p
	repo.order = append(repo.order, id)
	return p
}

func TestListAndGet(t *testing.T) {
	repo := newStubRepo()
	seedPodcast(repo, "e1")
	mux := newMux(repo, denyGate) // reads must not care about the gate

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/podcasts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(list) != 1 || list[0]["duration"] != "45:30" {
		t.Errorf("list = %v", list)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/podcasts/e1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["audioUrl"] != "https://cdn.example.com/ep1.mp3" {
		t.Errorf("audioUrl = %v", got["audioUrl"])
	}
	if got["youtubeUrl"] != nil {
		t.Errorf("youtubeUrl = %v, want null", got["youtubeUrl"])
	}
}

func TestGet_Unknown404(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/podcasts/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreate_OK(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo, passGate)

	body := `{
		"titleEn": "Building Products with LLMs",
		"titleFa": "ساخت محصول با مدل‌های زبانی",
		"descriptionEn": "d", "descriptionFa": "ت",
		"duration": "38:12",
		"date": "2024-12-01",
		"youtubeUrl": "https://youtube.com/watch?v=abc"
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/podcasts", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["youtubeUrl"] != "https://youtube.com/watch?v=abc" {
		t.Errorf("youtubeUrl = %v", got["youtubeUrl"])
	}
	if got["audioUrl"] != nil {
		t.Errorf("audioUrl = %v, want null", got["audioUrl"])
	}
}

func TestCreate_MissingDuration400(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	body := `{
		"titleEn": "t", "titleFa": "ع",
		"descriptionEn": "d", "descriptionFa": "ت",
		"date": "2024-12-01"
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/podcasts", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "duration") {
		t.Errorf("error should name duration, got %s", rec.Body.String())
	}
}

func TestUpdate_ClearAudioURL(t *testing.T) {
	repo := newStubRepo()
	seedPodcast(repo, "e1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/podcasts/e1",
		strings.NewReader(`{"audioUrl": ""}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["audioUrl"] != nil {
		t.Errorf("audioUrl = %v, want null after clearing", got["audioUrl"])
	}
	if got["titleEn"] != "ChatGPT and the Future of Work" {
		t.Errorf("titleEn = %v, merge lost untouched fields", got["titleEn"])
	}
}

func TestDelete_Lifecycle(t *testing.T) {
	repo := newStubRepo()
	seedPodcast(repo, "e1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/podcasts/e1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/podcasts/e1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want 404", rec.Code)
	}
}

func TestWrites_Gated401(t *testing.T) {
	repo := newStubRepo()
	seedPodcast(repo, "e1")
	mux := newMux(repo, denyGate)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/podcasts"},
		{http.MethodPut, "/api/podcasts/e1"},
		{http.MethodDelete, "/api/podcasts/e1"},
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}")))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}
