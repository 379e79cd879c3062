package startup_test

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
	startupHTTP "github.com/siawash1991/my-website/internal/handler/http/startup"
	startupUC "github.com/siawash1991/my-website/internal/usecase/startup"
)

type stubRepo struct {
	startups map[string]*entity.Startup
	order    []string
	err      error
}

func newStubRepo() *stubRepo {
	return &stubRepo{startups: make(map[string]*entity.Startup)}
}

func (r *stubRepo) List(ctx context.Context) ([]*entity.Startup, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Startup, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.startups[id])
	}
	return out, nil
}

func (r *stubRepo) Get(ctx context.Context, id string) (*entity.Startup, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.startups[id], nil
}

func (r *stubRepo) Create(ctx context.Context, s *entity.Startup) error {
	if r.err != nil {
		return r.err
	}
	r.startups[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *stubRepo) Update(ctx context.Context, s *entity.Startup) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.startups[s.ID]; !ok {
		return false, nil
	}
	r.startups[s.ID] = s
	return true, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.startups[id]; !ok {
		return false, nil
	}
	delete(r.startups, id)
	return true, nil
}

func (r *stubRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.startups)), r.err
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
	startupHTTP.Register(mux, &startupUC.Service{Repo: repo}, gate, logger)
	return mux
}

func seedStartup(repo *stubRepo, id string) *entity.Startup {
	s := &entity.Startup{
		ID:            id,
		NameEn:        "Personalized Children's Story Creator",
		NameFa:        "سازنده داستان کودک شخصی‌سازی‌شده",
		DescriptionEn: "Stories generated per child.",
		DescriptionFa: "داستان‌هایی که برای هر کودک ساخته می‌شوند.",
		StatusEn:      "In Development",
		StatusFa:      "در حال توسعه",
		CategoryEn:    "EdTech",
		CategoryFa:    "فناوری آموزشی",
		Thumbnail:     "sparkles",
		CreatedAt:     time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	repo.startups[id] = s
	repo.order = append(repo.order, id)
	return s
}

func validCreateBody() string {
	return `{
		"nameEn": "AI Resume Reviewer",
		"nameFa": "بازبین رزومه هوشمند",
		"descriptionEn": "d", "descriptionFa": "ت",
		"statusEn": "Idea", "statusFa": "مرحله ایده",
		"categoryEn": "Career", "categoryFa": "شغلی",
		"thumbnail": "briefcase",
		"websiteUrl": "https://resume.example.com"
	}`
}

func TestListAndGet(t *testing.T) {
	repo := newStubRepo()
	seedStartup(repo, "s1")
	mux := newMux(repo, denyGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/startups", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(list) != 1 || list[0]["statusFa"] != "در حال توسعه" {
		t.Errorf("list = %v", list)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/startups/s1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["thumbnail"] != "sparkles" {
		t.Errorf("thumbnail = %v", got["thumbnail"])
	}
	if got["websiteUrl"] != nil || got["articleUrl"] != nil {
		t.Errorf("optional URLs should be null, got %v / %v", got["websiteUrl"], got["articleUrl"])
	}
}

func TestGet_Unknown404(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/startups/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreate_OK(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/startups", strings.NewReader(validCreateBody())))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["websiteUrl"] != "https://resume.example.com" {
		t.Errorf("websiteUrl = %v", got["websiteUrl"])
	}
	if len(repo.startups) != 1 {
		t.Errorf("stored %d startups, want 1", len(repo.startups))
	}
}

func TestCreate_MissingStatus400(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	body := strings.Replace(validCreateBody(), `"statusEn": "Idea", `, `"statusEn": "", `, 1)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/startups", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "statusEn") {
		t.Errorf("error should name statusEn, got %s", rec.Body.String())
	}
}

func TestCreate_BadWebsiteURL400(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	body := strings.Replace(validCreateBody(), "https://resume.example.com", "ftp://resume.example.com", 1)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/startups", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdate_StatusTransition(t *testing.T) {
	repo := newStubRepo()
	seedStartup(repo, "s1")
	mux := newMux(repo, passGate)

	body := `{"statusEn": "Launched", "statusFa": "راه‌اندازی شده"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/startups/s1", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["statusEn"] != "Launched" || got["statusFa"] != "راه‌اندازی شده" {
		t.Errorf("status = %v / %v", got["statusEn"], got["statusFa"])
	}
	if got["nameEn"] != "Personalized Children's Story Creator" {
		t.Errorf("nameEn = %v, merge lost untouched fields", got["nameEn"])
	}
}

func TestUpdate_Unknown404(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/startups/missing",
		strings.NewReader(`{"nameEn":"x"}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDelete_Lifecycle(t *testing.T) {
	repo := newStubRepo()
	seedStartup(repo, "s1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/startups/s1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/startups/s1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want 404", rec.Code)
	}
}

func TestWrites_Gated401(t *testing.T) {
	repo := newStubRepo()
	seedStartup(repo, "s1")
	mux := newMux(repo, denyGate)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/startups"},
		{http.MethodPut, "/api/startups/s1"},
		{http.MethodDelete, "/api/startups/s1"},
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}")))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
	if len(repo.startups) != 1 {
		t.Errorf("gated writes mutated the store")
	}
}
