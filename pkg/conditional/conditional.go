// Package conditional evaluates the conditional request preconditions
// of RFC 9110 section 13: ETag and Last-Modified matching for
// revalidation and for protecting unsafe methods against lost updates.
//
// Every function is a pure function of its inputs; no state is kept
// between calls.
package conditional

import (
	"net/http"
	"strings"
	"time"

	httpdate "github.com/always-cache/cache-semantics/pkg/http-date"
)

// weakPrefix marks a weak validator, as per RFC 9110 section 8.8.3.
const weakPrefix = "W/"

// HasStateValidator returns whether the request carries a precondition
// on the current state of the resource, i.e. an If-Match or
// If-Unmodified-Since header. Callers use this to decide whether to
// enforce preconditions on unsafe methods.
func HasStateValidator(req *http.Request) bool {
	return req.Header.Get("If-Match") != "" || req.Header.Get("If-Unmodified-Since") != ""
}

// ETagMatches compares the current entity tag against a precondition
// header value, which is either "*" or a comma-separated list of
// entity tags.
//
// A wildcard matches any non-empty current tag. A weak current tag
// never matches unless weakAllowed. With weakAllowed, a tag also
// matches its weak/strong counterpart in the list, implementing the
// weak comparison of RFC 9110 section 8.8.3.2.
func ETagMatches(current, header string, weakAllowed bool) bool {
	header = strings.TrimSpace(header)
	if header == "*" {
		return current != ""
	}
	if current == "" {
		return false
	}
	if strings.HasPrefix(current, weakPrefix) && !weakAllowed {
		return false
	}
	strong := quote(strings.TrimPrefix(current, weakPrefix))
	candidates := strings.Split(header, ",")
	for i, candidate := range candidates {
		candidates[i] = strings.TrimSpace(candidate)
	}
	for _, candidate := range candidates {
		if candidate == strong {
			return true
		}
	}
	if !weakAllowed {
		return false
	}
	for _, candidate := range candidates {
		if candidate == weakPrefix+strong {
			return true
		}
	}
	return false
}

// ModifiedMatches returns whether the current modification time
// satisfies a date precondition, i.e. the resource has not been
// modified after the instant given in the header value.
// A zero modification time or an unparsable header never matches.
func ModifiedMatches(modified time.Time, headerDate string) bool {
	if modified.IsZero() {
		return false
	}
	date, err := httpdate.Parse(headerDate)
	if err != nil {
		return false
	}
	return !modified.Truncate(time.Second).After(date)
}

// HasCurrentState returns whether the state the client acted on is the
// current state of the resource, evaluating If-Match (strong
// comparison) with precedence over If-Unmodified-Since. When neither
// is present the state is considered current.
//
// For unsafe methods the check additionally fails when If-None-Match
// weak-matches the current tag: a client claiming it has no current
// copy must not overwrite one it actually has.
func HasCurrentState(req *http.Request, etag string, lastModified time.Time) bool {
	if ifMatch := req.Header.Get("If-Match"); ifMatch != "" {
		if !ETagMatches(etag, ifMatch, false) {
			return false
		}
	} else if ifUnmodified := req.Header.Get("If-Unmodified-Since"); ifUnmodified != "" {
		if !ModifiedMatches(lastModified, ifUnmodified) {
			return false
		}
	}
	if isSafeMethod(req.Method) {
		return true
	}
	if ifNoneMatch := req.Header.Get("If-None-Match"); ifNoneMatch != "" {
		if ETagMatches(etag, ifNoneMatch, true) {
			return false
		}
	}
	return true
}

// IsNotModified returns whether the response is unchanged from the
// state the client already holds, so that a 304 Not Modified may be
// sent instead.
//
// If-None-Match takes precedence over If-Modified-Since when the
// response has an entity tag. The date fallback only applies to GET
// and HEAD requests.
func IsNotModified(req *http.Request, res *http.Response) bool {
	etag := res.Header.Get("Etag")
	if ifNoneMatch := req.Header.Get("If-None-Match"); etag != "" && ifNoneMatch != "" {
		return ETagMatches(etag, ifNoneMatch, true)
	}
	if !isSafeMethod(req.Method) {
		return false
	}
	lastModified, err := httpdate.Parse(res.Header.Get("Last-Modified"))
	if err != nil {
		return false
	}
	ifModifiedSince := req.Header.Get("If-Modified-Since")
	if ifModifiedSince == "" {
		return false
	}
	return ModifiedMatches(lastModified, ifModifiedSince)
}

// quote normalizes an opaque tag to its quoted form.
func quote(tag string) string {
	return "\"" + strings.Trim(tag, "\"") + "\""
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
