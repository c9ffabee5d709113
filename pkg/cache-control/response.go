package cachecontrol

import (
	"fmt"
	"time"
)

// responseVocabulary lists the directives recognized in a response
// context, as per RFC 9111 section 5.2.2.
var responseVocabulary = map[string]directiveType{
	"max-age":                typeSeconds,
	"s-maxage":               typeSeconds,
	"stale-while-revalidate": typeSeconds,
	"stale-if-error":         typeSeconds,
	"no-cache":               typeFlag,
	"no-store":               typeFlag,
	"no-transform":           typeFlag,
	"must-revalidate":        typeFlag,
	"proxy-revalidate":       typeFlag,
	"public":                 typeFlag,
	"private":                typeFlag,
}

// ResponseCacheControl is an immutable Cache-Control directive set for
// a response. The zero value is an empty set.
type ResponseCacheControl struct {
	set directiveSet
}

// NewResponseCacheControl returns an empty response directive set.
func NewResponseCacheControl() ResponseCacheControl {
	return ResponseCacheControl{}
}

// ParseResponseCacheControl parses a Cache-Control header value in a
// response context. Parsing never fails; see parse.
func ParseResponseCacheControl(header string) ResponseCacheControl {
	return ResponseCacheControl{parse(header, responseVocabulary)}
}

// WithMaxAge sets the max-age directive, clamped to zero or above.
func (c ResponseCacheControl) WithMaxAge(seconds int) ResponseCacheControl {
	return ResponseCacheControl{c.set.withSeconds("max-age", seconds)}
}

// WithSharedMaxAge sets the s-maxage directive, clamped to zero or above.
func (c ResponseCacheControl) WithSharedMaxAge(seconds int) ResponseCacheControl {
	return ResponseCacheControl{c.set.withSeconds("s-maxage", seconds)}
}

// WithStaleWhileRevalidate sets the stale-while-revalidate directive.
func (c ResponseCacheControl) WithStaleWhileRevalidate(seconds int) ResponseCacheControl {
	return ResponseCacheControl{c.set.withSeconds("stale-while-revalidate", seconds)}
}

// WithStaleIfError sets the stale-if-error directive.
func (c ResponseCacheControl) WithStaleIfError(seconds int) ResponseCacheControl {
	return ResponseCacheControl{c.set.withSeconds("stale-if-error", seconds)}
}

// WithPublic sets or removes the public directive.
// Setting public removes private, the two are mutually exclusive.
func (c ResponseCacheControl) WithPublic(public bool) ResponseCacheControl {
	set := c.set.withFlag("public", public)
	if public {
		set = set.without("private")
	}
	return ResponseCacheControl{set}
}

// WithPrivate sets or removes the private directive.
// Setting private removes public, the two are mutually exclusive.
func (c ResponseCacheControl) WithPrivate(private bool) ResponseCacheControl {
	set := c.set.withFlag("private", private)
	if private {
		set = set.without("public")
	}
	return ResponseCacheControl{set}
}

// WithCacheType sets the cache visibility to "public" or "private".
// Any other value returns ErrorInvalidDirectiveType.
func (c ResponseCacheControl) WithCacheType(cacheType string) (ResponseCacheControl, error) {
	switch cacheType {
	case "public":
		return c.WithPublic(true), nil
	case "private":
		return c.WithPrivate(true), nil
	}
	return c, fmt.Errorf("%w: %q", ErrorInvalidDirectiveType, cacheType)
}

// WithNoCache sets or removes the no-cache directive.
func (c ResponseCacheControl) WithNoCache(noCache bool) ResponseCacheControl {
	return ResponseCacheControl{c.set.withFlag("no-cache", noCache)}
}

// WithNoStore sets or removes the no-store directive.
func (c ResponseCacheControl) WithNoStore(noStore bool) ResponseCacheControl {
	return ResponseCacheControl{c.set.withFlag("no-store", noStore)}
}

// WithNoTransform sets or removes the no-transform directive.
func (c ResponseCacheControl) WithNoTransform(noTransform bool) ResponseCacheControl {
	return ResponseCacheControl{c.set.withFlag("no-transform", noTransform)}
}

// WithMustRevalidate sets or removes the must-revalidate directive.
func (c ResponseCacheControl) WithMustRevalidate(mustRevalidate bool) ResponseCacheControl {
	return ResponseCacheControl{c.set.withFlag("must-revalidate", mustRevalidate)}
}

// WithProxyRevalidate sets or removes the proxy-revalidate directive.
func (c ResponseCacheControl) WithProxyRevalidate(proxyRevalidate bool) ResponseCacheControl {
	return ResponseCacheControl{c.set.withFlag("proxy-revalidate", proxyRevalidate)}
}

// WithDirective sets a directive by name.
// Names outside the response vocabulary return ErrorUnknownDirective.
// Non-integer values for delta-seconds directives return
// ErrorInvalidRelativeSeconds.
func (c ResponseCacheControl) WithDirective(name, value string) (ResponseCacheControl, error) {
	switch name {
	case "public":
		return c.WithPublic(true), nil
	case "private":
		return c.WithPrivate(true), nil
	}
	set, err := c.set.withDirective(responseVocabulary, name, value)
	if err != nil {
		return c, err
	}
	return ResponseCacheControl{set}, nil
}

// MaxAge returns the max-age directive as a duration,
// along with a boolean indicating whether the directive is present.
func (c ResponseCacheControl) MaxAge() (time.Duration, bool) {
	return c.set.getSeconds("max-age")
}

// SharedMaxAge returns the s-maxage directive as a duration,
// along with a boolean indicating whether the directive is present.
func (c ResponseCacheControl) SharedMaxAge() (time.Duration, bool) {
	return c.set.getSeconds("s-maxage")
}

// StaleWhileRevalidate returns the stale-while-revalidate directive.
func (c ResponseCacheControl) StaleWhileRevalidate() (time.Duration, bool) {
	return c.set.getSeconds("stale-while-revalidate")
}

// StaleIfError returns the stale-if-error directive.
func (c ResponseCacheControl) StaleIfError() (time.Duration, bool) {
	return c.set.getSeconds("stale-if-error")
}

// Public returns whether the public directive is present.
func (c ResponseCacheControl) Public() bool {
	return c.set.has("public")
}

// Private returns whether the private directive is present.
func (c ResponseCacheControl) Private() bool {
	return c.set.has("private")
}

// Has returns whether the named directive is present.
func (c ResponseCacheControl) Has(directive string) bool {
	return c.set.has(directive)
}

// Get returns the value of the named directive in token form,
// along with a boolean indicating whether the directive is present.
func (c ResponseCacheControl) Get(directive string) (string, bool) {
	return c.set.getValue(directive)
}

// String serializes the directive set as a Cache-Control header value.
func (c ResponseCacheControl) String() string {
	return c.set.String()
}
