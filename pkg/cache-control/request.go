package cachecontrol

import "time"

// requestVocabulary lists the directives recognized in a request
// context, as per RFC 9111 section 5.2.1.
var requestVocabulary = map[string]directiveType{
	"max-age":        typeSeconds,
	"max-stale":      typeSeconds,
	"min-fresh":      typeSeconds,
	"no-cache":       typeFlag,
	"no-store":       typeFlag,
	"no-transform":   typeFlag,
	"only-if-cached": typeFlag,
}

// RequestCacheControl is an immutable Cache-Control directive set for
// a request. The zero value is an empty set.
type RequestCacheControl struct {
	set directiveSet
}

// NewRequestCacheControl returns an empty request directive set.
func NewRequestCacheControl() RequestCacheControl {
	return RequestCacheControl{}
}

// ParseRequestCacheControl parses a Cache-Control header value in a
// request context. Parsing never fails; see parse.
func ParseRequestCacheControl(header string) RequestCacheControl {
	return RequestCacheControl{parse(header, requestVocabulary)}
}

// WithMaxAge sets the max-age directive, clamped to zero or above.
func (c RequestCacheControl) WithMaxAge(seconds int) RequestCacheControl {
	return RequestCacheControl{c.set.withSeconds("max-age", seconds)}
}

// WithMaxStale sets the max-stale directive, clamped to zero or above.
func (c RequestCacheControl) WithMaxStale(seconds int) RequestCacheControl {
	return RequestCacheControl{c.set.withSeconds("max-stale", seconds)}
}

// WithMinFresh sets the min-fresh directive, clamped to zero or above.
func (c RequestCacheControl) WithMinFresh(seconds int) RequestCacheControl {
	return RequestCacheControl{c.set.withSeconds("min-fresh", seconds)}
}

// WithNoCache sets or removes the no-cache directive.
func (c RequestCacheControl) WithNoCache(noCache bool) RequestCacheControl {
	return RequestCacheControl{c.set.withFlag("no-cache", noCache)}
}

// WithNoStore sets or removes the no-store directive.
func (c RequestCacheControl) WithNoStore(noStore bool) RequestCacheControl {
	return RequestCacheControl{c.set.withFlag("no-store", noStore)}
}

// WithNoTransform sets or removes the no-transform directive.
func (c RequestCacheControl) WithNoTransform(noTransform bool) RequestCacheControl {
	return RequestCacheControl{c.set.withFlag("no-transform", noTransform)}
}

// WithOnlyIfCached sets or removes the only-if-cached directive.
func (c RequestCacheControl) WithOnlyIfCached(onlyIfCached bool) RequestCacheControl {
	return RequestCacheControl{c.set.withFlag("only-if-cached", onlyIfCached)}
}

// WithDirective sets a directive by name.
// Names outside the request vocabulary return ErrorUnknownDirective.
// Non-integer values for delta-seconds directives return
// ErrorInvalidRelativeSeconds.
func (c RequestCacheControl) WithDirective(name, value string) (RequestCacheControl, error) {
	set, err := c.set.withDirective(requestVocabulary, name, value)
	if err != nil {
		return c, err
	}
	return RequestCacheControl{set}, nil
}

// MaxAge returns the max-age directive as a duration,
// along with a boolean indicating whether the directive is present.
func (c RequestCacheControl) MaxAge() (time.Duration, bool) {
	return c.set.getSeconds("max-age")
}

// MaxStale returns the max-stale directive as a duration.
func (c RequestCacheControl) MaxStale() (time.Duration, bool) {
	return c.set.getSeconds("max-stale")
}

// MinFresh returns the min-fresh directive as a duration.
func (c RequestCacheControl) MinFresh() (time.Duration, bool) {
	return c.set.getSeconds("min-fresh")
}

// Has returns whether the named directive is present.
func (c RequestCacheControl) Has(directive string) bool {
	return c.set.has(directive)
}

// Get returns the value of the named directive in token form,
// along with a boolean indicating whether the directive is present.
func (c RequestCacheControl) Get(directive string) (string, bool) {
	return c.set.getValue(directive)
}

// String serializes the directive set as a Cache-Control header value.
func (c RequestCacheControl) String() string {
	return c.set.String()
}
