// Package freshness calculates the freshness lifetime and age of HTTP
// responses, as per RFC 9111 section 4.2, and decides whether a
// response is cacheable at all.
package freshness

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	cachecontrol "github.com/always-cache/cache-semantics/pkg/cache-control"
	httpdate "github.com/always-cache/cache-semantics/pkg/http-date"
)

// cacheableStatusCodes lists the status codes that are heuristically
// cacheable, as per RFC 9110 section 15.1.
var cacheableStatusCodes = map[int]struct{}{
	200: {},
	203: {},
	204: {},
	300: {},
	301: {},
	404: {},
	405: {},
	410: {},
	414: {},
	501: {},
}

// Lifetime returns the freshness lifetime of a response,
// along with a boolean indicating whether any lifetime signal exists.
//
// The rules of RFC 9111 section 4.2.1 are evaluated in order:
// s-maxage, then max-age, then Expires minus Date. The current clock
// value stands in for a missing Date field. A negative Expires
// lifetime clamps to zero.
func Lifetime(res *http.Response) (time.Duration, bool) {
	control := cachecontrol.ParseResponseCacheControl(cacheControlHeader(res))
	if lifetime, ok := control.SharedMaxAge(); ok {
		return lifetime, true
	}
	if lifetime, ok := control.MaxAge(); ok {
		return lifetime, true
	}
	if expires, err := httpdate.Parse(res.Header.Get("Expires")); err == nil {
		date := time.Now()
		if d, err := httpdate.Parse(res.Header.Get("Date")); err == nil {
			date = d
		}
		return durationMax(0, expires.Sub(date)), true
	}
	return 0, false
}

// Age returns the age of a response, along with a boolean indicating
// whether the age could be determined.
//
// The Age header is used when present and valid; otherwise the age is
// the time elapsed since the Date header value, clamped to zero.
func Age(res *http.Response) (time.Duration, bool) {
	if ageStr := res.Header.Get("Age"); ageStr != "" {
		if seconds, err := strconv.Atoi(strings.TrimSpace(ageStr)); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second, true
		}
		// an invalid Age field is ignored
	}
	if date, err := httpdate.Parse(res.Header.Get("Date")); err == nil {
		return durationMax(0, time.Since(date)), true
	}
	return 0, false
}

// IsFresh returns whether the response is fresh, i.e. its lifetime is
// strictly greater than its age. The second return value is false when
// the response carries no lifetime signal, in which case freshness
// cannot be determined.
//
// Note the strict inequality: a response with a zero lifetime is stale
// from the moment it is generated.
func IsFresh(res *http.Response) (fresh bool, ok bool) {
	lifetime, ok := Lifetime(res)
	if !ok {
		return false, false
	}
	age, _ := Age(res)
	return lifetime > age, true
}

// IsCacheable returns whether the response may be stored by a shared
// cache: the status code must be in the cacheable set, and the
// Cache-Control header, if any, must contain neither no-store nor
// private. Freshness is not consulted.
func IsCacheable(res *http.Response) bool {
	if _, ok := cacheableStatusCodes[res.StatusCode]; !ok {
		return false
	}
	if header := cacheControlHeader(res); header != "" {
		control := cachecontrol.ParseResponseCacheControl(header)
		if control.Has("no-store") || control.Private() {
			return false
		}
	}
	return true
}

// cacheControlHeader returns the combined Cache-Control field value.
func cacheControlHeader(res *http.Response) string {
	return strings.Join(res.Header.Values("Cache-Control"), ", ")
}

func durationMax(d1, d2 time.Duration) time.Duration {
	if d1 > d2 {
		return d1
	}
	return d2
}
