package post_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
	postHTTP "github.com/siawash1991/my-website/internal/handler/http/post"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
)

/* ─── test doubles ─── */

type stubRepo struct {
	posts       map[string]*entity.Post
	order       []string
	err         error
	createCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{posts: make(map[string]*entity.Post)}
}

func (r *stubRepo) List(ctx context.Context) ([]*entity.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Post, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.posts[id])
	}
	return out, nil
}

func (r *stubRepo) Get(ctx context.Context, id string) (*entity.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.posts[id], nil
}

func (r *stubRepo) Create(ctx context.Context, p *entity.Post) error {
	r.createCalls++
	if r.err != nil {
		return r.err
	}
	r.posts[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubRepo) Update(ctx context.Context, p *entity.Post) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.posts[p.ID]; !ok {
		return false, nil
	}
	r.posts[p.ID] = p
	return true, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *stubRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.posts)), nil
}

// passGate admits every request, standing in for an authenticated session.
func passGate(next http.Handler) http.Handler { return next }

// denyGate rejects every request before the wrapped handler runs.
func denyGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func newMux(repo *stubRepo, gate func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	svc := &postUC.Service{Repo: repo}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	postHTTP.Register(mux, svc, gate, logger)
	return mux
}

func seedPost(repo *stubRepo, id string) *entity.Post {
	p := &entity.Post{
		ID:         id,
		TitleEn:    "The Future of AI-Powered Content Creation",
		TitleFa:    "آینده تولید محتوای مبتنی بر هوش مصنوعی",
		ExcerptEn:  "How language models change publishing.",
		ExcerptFa:  "چطور مدل‌های زبانی نشر را تغییر می‌دهند.",
		ContentEn:  "Long form content.",
		ContentFa:  "متن کامل مقاله.",
		CategoryEn: "Content AI",
		CategoryFa: "هوش مصنوعی محتوا",
		ReadTime:   8,
		Date:       "2024-10-15",
		Thumbnail:  "ai-content",
		CreatedAt:  time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC),
	}
	repo.posts[id] = p
	repo.order = append(repo.order, id)
	return p
}

func createBody() string {
	return `{
		"titleEn": "Prompt Engineering in Practice",
		"titleFa": "مهندسی پرامپت در عمل",
		"excerptEn": "e", "excerptFa": "ف",
		"contentEn": "c", "contentFa": "م",
		"categoryEn": "AI", "categoryFa": "هوش مصنوعی",
		"readTime": 6,
		"date": "2024-11-01",
		"thumbnail": "prompts"
	}`
}

/* ─── reads ─── */

func TestList_OK(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	seedPost(repo, "p2")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0]["titleFa"] != "آینده تولید محتوای مبتنی بر هوش مصنوعی" {
		t.Errorf("titleFa = %v", got[0]["titleFa"])
	}
}

func TestList_RepoError500(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("pq: connection refused")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestGet_OK(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/p1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["id"] != "p1" {
		t.Errorf("id = %v", got["id"])
	}
	if got["articleUrl"] != nil {
		t.Errorf("articleUrl = %v, want null", got["articleUrl"])
	}
}

func TestGet_Unknown404(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGet_NestedPath404(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/p1/extra", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

/* ─── writes ─── */

func TestCreate_OK(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(createBody())))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["id"] == "" || got["id"] == nil {
		t.Errorf("created record has no id")
	}
	if got["titleEn"] != "Prompt Engineering in Practice" {
		t.Errorf("titleEn = %v", got["titleEn"])
	}
	if len(repo.posts) != 1 {
		t.Errorf("stored %d posts, want 1", len(repo.posts))
	}
}

func TestCreate_InvalidJSON400(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreate_MissingField400(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo, passGate)

	body := strings.Replace(createBody(), `"titleEn": "Prompt Engineering in Practice",`, `"titleEn": "",`, 1)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "titleEn") {
		t.Errorf("error should name the field, got %s", rec.Body.String())
	}
	if repo.createCalls != 0 {
		t.Errorf("repo touched on invalid input")
	}
}

func TestCreate_NonPositiveReadTime400(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	body := strings.Replace(createBody(), `"readTime": 6`, `"readTime": 0`, 1)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "readTime") {
		t.Errorf("error should name readTime, got %s", rec.Body.String())
	}
}

func TestCreate_Unauthenticated401(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo, denyGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(createBody())))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if repo.createCalls != 0 {
		t.Errorf("handler ran despite missing session")
	}
}

func TestUpdate_OK(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, passGate)

	body := `{"titleEn": "Revised Title", "articleUrl": "https://example.com/full"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/posts/p1", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["titleEn"] != "Revised Title" {
		t.Errorf("titleEn = %v", got["titleEn"])
	}
	// untouched fields survive the merge
	if got["titleFa"] != "آینده تولید محتوای مبتنی بر هوش مصنوعی" {
		t.Errorf("titleFa = %v", got["titleFa"])
	}
	if got["articleUrl"] != "https://example.com/full" {
		t.Errorf("articleUrl = %v", got["articleUrl"])
	}
}

func TestUpdate_Unknown404(t *testing.T) {
	mux := newMux(newStubRepo(), passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/posts/nope", strings.NewReader(`{"titleEn":"x"}`)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdate_InvalidURL400(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/posts/p1",
		strings.NewReader(`{"articleUrl":"notaurl"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDelete_ThenGone(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/posts/p1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first delete status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 carried a body: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/posts/p1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestWrites_AllGated(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, denyGate)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/p1"},
		{http.MethodDelete, "/api/posts/p1"},
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}")))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
	if _, ok := repo.posts["p1"]; !ok {
		t.Errorf("gated delete still removed the record")
	}
}

func TestReads_NotGated(t *testing.T) {
	repo := newStubRepo()
	seedPost(repo, "p1")
	mux := newMux(repo, denyGate)

	for _, path := range []string{"/api/posts", "/api/posts/p1"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, rec.Code)
		}
	}
}

func TestCreate_EmptyURLStoredAbsent(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo, passGate)

	body := strings.Replace(createBody(), `"thumbnail": "prompts"`,
		`"thumbnail": "prompts", "articleUrl": ""`, 1)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got struct {
		ID         string  `json:"id"`
		ArticleURL *string `json:"articleUrl"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.ArticleURL != nil {
		t.Errorf("articleUrl = %q, want absent", *got.ArticleURL)
	}
	if stored := repo.posts[got.ID]; stored.ArticleURL != nil {
		t.Errorf("stored articleUrl = %v, want nil", *stored.ArticleURL)
	}
}

func TestCreate_RepoError500(t *testing.T) {
	repo := newStubRepo()
	repo.err = fmt.Errorf("insert failed: %w", errors.New("deadlock detected"))
	mux := newMux(repo, passGate)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(createBody())))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "deadlock") {
		t.Errorf("internal detail leaked: %s", rec.Body.String())
	}
}
