// Package responsewriter provides a wrapper for http.ResponseWriter that records
// the status code and bytes written, for logging and metrics.
package responsewriter

import (
	"net/http"
)

// ResponseWriter wraps http.ResponseWriter to record response metrics.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int
	headerWritten bool
}

// Wrap wraps an http.ResponseWriter for metric recording.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the status code and calls the underlying WriteHeader.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if !w.headerWritten {
		w.statusCode = statusCode
		w.headerWritten = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// Write writes the response body and records the size.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded HTTP status code.
func (w *ResponseWriter) StatusCode() int {
	return w.statusCode
}

// BytesWritten returns the number of bytes written to the response.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytesWritten
}

// Unwrap returns the underlying http.ResponseWriter for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
