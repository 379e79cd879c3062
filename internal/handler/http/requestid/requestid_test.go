package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if seen == "" {
		t.Fatal("no request ID in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("header %q != context %q", got, seen)
	}
}

func TestMiddleware_PropagatesID(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "client-supplied-id" {
		t.Fatalf("seen=%q", seen)
	}
}

func TestFromContext_Missing(t *testing.T) {
	if got := FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
