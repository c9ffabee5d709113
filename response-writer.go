package semantics

import (
	"bytes"
	"net/http"
)

// responseRecorder is a http.ResponseWriter that buffers the response,
// so that the final status line can be decided after the wrapped
// handler has run.
type responseRecorder struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newRecorder() *responseRecorder {
	return &responseRecorder{header: http.Header{}}
}

// Implementation of http.ResponseWriter
func (rec *responseRecorder) Header() http.Header {
	return rec.header
}

// Implementation of http.ResponseWriter
func (rec *responseRecorder) WriteHeader(statusCode int) {
	if rec.wroteHeader {
		return
	}
	rec.wroteHeader = true
	rec.status = statusCode
}

// Implementation of http.ResponseWriter
func (rec *responseRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	return rec.body.Write(b)
}

// statusCode returns the recorded status code.
func (rec *responseRecorder) statusCode() int {
	if !rec.wroteHeader {
		return http.StatusOK
	}
	return rec.status
}

// response returns the recorded response for header-level inspection.
// The body is not included.
func (rec *responseRecorder) response() *http.Response {
	return &http.Response{
		StatusCode: rec.statusCode(),
		Header:     rec.header,
	}
}

// replay writes the recorded response to the underlying writer.
func (rec *responseRecorder) replay(w http.ResponseWriter) {
	copyHeader(w.Header(), rec.header)
	w.WriteHeader(rec.statusCode())
	w.Write(rec.body.Bytes())
}

func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}
