package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that aborts requests running longer than
// duration with a 504. The handler keeps running in its goroutine until it
// observes the cancelled context; its late writes are discarded.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			tw := &timeoutWriter{inner: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				tw.abort()
			}
		})
	}
}

// timeoutWriter serializes the handler goroutine and the deadline path onto
// one response. Whichever side writes first wins; the loser's output is
// swallowed.
type timeoutWriter struct {
	inner http.ResponseWriter

	mu      sync.Mutex
	started bool
	aborted bool
}

// abort emits the 504 unless the handler already produced a response.
func (tw *timeoutWriter) abort() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.aborted = true
	if tw.started {
		return
	}
	tw.inner.Header().Set("Content-Type", "application/json")
	tw.inner.WriteHeader(http.StatusGatewayTimeout)
	_, _ = tw.inner.Write([]byte(`{"error":"request timeout"}`))
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.inner.Header()
}

func (tw *timeoutWriter) WriteHeader(statusCode int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.aborted || tw.started {
		return
	}
	tw.started = true
	tw.inner.WriteHeader(statusCode)
}

func (tw *timeoutWriter) Write(data []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.aborted {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.started {
		tw.started = true
		tw.inner.WriteHeader(http.StatusOK)
	}
	return tw.inner.Write(data)
}
