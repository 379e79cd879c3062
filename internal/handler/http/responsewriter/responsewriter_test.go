package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_DefaultsTo200(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	_, _ = w.Write([]byte("ok"))

	if w.StatusCode() != http.StatusOK {
		t.Fatalf("status=%d", w.StatusCode())
	}
	if w.BytesWritten() != 2 {
		t.Fatalf("bytes=%d", w.BytesWritten())
	}
}

func TestWrap_RecordsExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)
	w.WriteHeader(http.StatusNoContent)
	// a late second WriteHeader must not overwrite the recorded code
	w.WriteHeader(http.StatusInternalServerError)

	if w.StatusCode() != http.StatusNoContent || rec.Code != http.StatusNoContent {
		t.Fatalf("recorded=%d sent=%d", w.StatusCode(), rec.Code)
	}
}
