package server

import (
	"bytes"
	"net/http"
)

// auditResponseCap bounds the copy of the response body kept for the audit
// trail. CSV exports can run to megabytes; the audit log does not need them.
const auditResponseCap = 64 * 1024

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	buffer      bytes.Buffer
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	if remaining := auditResponseCap - w.buffer.Len(); remaining > 0 {
		if len(b) <= remaining {
			w.buffer.Write(b)
		} else {
			w.buffer.Write(b[:remaining])
		}
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriterWrapper) GetStatusCode() int {
	return w.statusCode
}

func (w *responseWriterWrapper) GetBody() []byte {
	return w.buffer.Bytes()
}
