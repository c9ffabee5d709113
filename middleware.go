// Package semantics applies HTTP caching and conditional-request
// semantics to a http.Handler: it injects configured Cache-Control
// defaults, answers conditional GETs with 304 Not Modified, and lets
// handlers of unsafe methods enforce preconditions.
//
// The semantic calculations themselves live in the pkg subpackages;
// this package owns the request/response plumbing around them.
package semantics

import (
	"net/http"
	"strings"
	"time"

	cachecontrol "github.com/always-cache/cache-semantics/pkg/cache-control"
	"github.com/always-cache/cache-semantics/pkg/conditional"
	"github.com/always-cache/cache-semantics/pkg/freshness"
	httpdate "github.com/always-cache/cache-semantics/pkg/http-date"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	defaults Defaults
	paths    []Path
}

func New(config Config) *Handler {
	return &Handler{
		defaults: config.Defaults,
		paths:    config.Paths,
	}
}

// Middleware wraps the next handler with caching semantics.
// The response is buffered, the configured Cache-Control default is
// applied if the handler did not set one, and a 200 response to a
// conditional GET or HEAD is converted to a 304 Not Modified when the
// request preconditions show the client copy is current.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newRecorder()
		next.ServeHTTP(rec, r)

		if rec.Header().Get("Date") == "" {
			rec.Header().Set("Date", httpdate.Format(time.Now()))
		}
		h.applyDefaults(rec.Header(), r)

		logger := log.With().Str("method", r.Method).Str("path", r.URL.Path).Logger()

		res := rec.response()
		if fresh, ok := freshness.IsFresh(res); ok {
			logger.Trace().
				Bool("fresh", fresh).
				Bool("cacheable", freshness.IsCacheable(res)).
				Msg("Response caching state")
		}

		if rec.statusCode() == http.StatusOK && conditional.IsNotModified(r, res) {
			logger.Debug().Msg("Client copy is current, serving 304")
			writeNotModified(w, rec.Header())
			return
		}

		rec.replay(w)
	})
}

// CheckPreconditions evaluates the request preconditions against the
// current state of the resource. When the state the client acted on is
// no longer current, it writes a 412 Precondition Failed and returns
// false; the handler must not act on the request in that case.
// Handlers of unsafe methods should call this before making changes.
func CheckPreconditions(w http.ResponseWriter, r *http.Request, etag string, lastModified time.Time) bool {
	if conditional.HasCurrentState(r, etag, lastModified) {
		return true
	}
	log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Precondition failed")
	w.WriteHeader(http.StatusPreconditionFailed)
	return false
}

// applyDefaults sets the configured default Cache-Control header on
// responses to safe requests that do not carry one already.
// The configured value is normalized through the directive codec.
func (h *Handler) applyDefaults(header http.Header, r *http.Request) {
	defaults := h.getDefaults(r)
	if defaults.CacheControl == "" {
		return
	}
	if !isSafeMethod(r.Method) && !defaults.SafeMethods.Has(r.Method) {
		return
	}
	if header.Get("Cache-Control") != "" {
		return
	}
	control := cachecontrol.ParseResponseCacheControl(defaults.CacheControl)
	header.Set("Cache-Control", control.String())
}

// getDefaults returns the defaults for the longest configured path
// prefix matching the request, falling back to the global defaults.
func (h *Handler) getDefaults(r *http.Request) Defaults {
	defaults := h.defaults
	longest := 0
	for _, path := range h.paths {
		if strings.HasPrefix(r.URL.Path, path.Prefix) && len(path.Prefix) > longest {
			defaults = path.Defaults
			longest = len(path.Prefix)
		}
	}
	return defaults
}

// writeNotModified sends a 304 with the recorded headers.
// Content metadata does not apply to a bodiless response.
func writeNotModified(w http.ResponseWriter, header http.Header) {
	copyHeader(w.Header(), header)
	w.Header().Del("Content-Type")
	w.Header().Del("Content-Length")
	w.Header().Del("Transfer-Encoding")
	w.WriteHeader(http.StatusNotModified)
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
