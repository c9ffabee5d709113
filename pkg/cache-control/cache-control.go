// Package cachecontrol implements the Cache-Control directive model of
// RFC 9111 section 5.2: an ordered, immutable set of cache directives
// that can be parsed from and serialized to a header value.
//
// Directives are identified by a token, compared case-insensitively.
// Request and response contexts recognize different vocabularies, but
// share the same underlying directive table; there is no subtyping.
package cachecontrol

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrorUnknownDirective is returned when a directive outside the
	// vocabulary of the current context is set through the API.
	// Header parsing never returns this; unrecognized input is dropped
	// or preserved as an extension instead.
	ErrorUnknownDirective = fmt.Errorf("unknown cache directive")

	// ErrorInvalidDirectiveType is returned when the cache type is set
	// to something other than "public" or "private".
	ErrorInvalidDirectiveType = fmt.Errorf("cache type must be public or private")

	// ErrorInvalidRelativeSeconds is returned when a delta-seconds
	// directive is set to a value that is not an integer.
	ErrorInvalidRelativeSeconds = fmt.Errorf("directive value must be an integer number of seconds")
)

// directiveType is the value shape a recognized directive takes.
type directiveType int

const (
	typeFlag directiveType = iota
	typeSeconds
)

// directiveKind is the value shape of a stored directive.
// Extensions are never part of a vocabulary; they only enter a set
// through parsing.
type directiveKind int

const (
	flagDirective directiveKind = iota
	secondsDirective
	extensionDirective
)

type directive struct {
	name    string
	kind    directiveKind
	seconds int
	value   string
}

// directiveSet is an ordered mapping from directive name to directive.
// Insertion order is preserved for serialization.
// All mutators return a new set; a set is never modified in place.
// The context vocabulary is passed in where needed, so that the zero
// value is a usable empty set.
type directiveSet struct {
	directives []directive
}

// with returns a copy of the set with the given directive set.
// An existing directive with the same name keeps its position.
func (s directiveSet) with(d directive) directiveSet {
	directives := make([]directive, 0, len(s.directives)+1)
	replaced := false
	for _, existing := range s.directives {
		if existing.name == d.name {
			directives = append(directives, d)
			replaced = true
		} else {
			directives = append(directives, existing)
		}
	}
	if !replaced {
		directives = append(directives, d)
	}
	return directiveSet{directives}
}

// without returns a copy of the set with the named directive removed.
func (s directiveSet) without(name string) directiveSet {
	directives := make([]directive, 0, len(s.directives))
	for _, existing := range s.directives {
		if existing.name != name {
			directives = append(directives, existing)
		}
	}
	return directiveSet{directives}
}

// withFlag sets or removes a boolean directive.
// Setting a flag to false removes it instead of storing a negative.
func (s directiveSet) withFlag(name string, on bool) directiveSet {
	if !on {
		return s.without(name)
	}
	return s.with(directive{name: name, kind: flagDirective})
}

// withSeconds sets a delta-seconds directive, clamped to zero or above.
func (s directiveSet) withSeconds(name string, seconds int) directiveSet {
	if seconds < 0 {
		seconds = 0
	}
	return s.with(directive{name: name, kind: secondsDirective, seconds: seconds})
}

// withDirective is the strict generic entry point used by the API.
// It rejects names outside the vocabulary and non-integer values for
// delta-seconds directives.
func (s directiveSet) withDirective(vocabulary map[string]directiveType, name, value string) (directiveSet, error) {
	name = strings.ToLower(name)
	typ, known := vocabulary[name]
	if !known {
		return s, fmt.Errorf("%w: %s", ErrorUnknownDirective, name)
	}
	if typ == typeSeconds {
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%q", ErrorInvalidRelativeSeconds, name, value)
		}
		return s.withSeconds(name, seconds), nil
	}
	return s.withFlag(name, true), nil
}

func (s directiveSet) get(name string) (directive, bool) {
	for _, d := range s.directives {
		if d.name == name {
			return d, true
		}
	}
	return directive{}, false
}

func (s directiveSet) has(name string) bool {
	_, ok := s.get(name)
	return ok
}

// getSeconds returns a delta-seconds directive as a duration,
// along with a boolean indicating whether the directive is present.
func (s directiveSet) getSeconds(name string) (time.Duration, bool) {
	if d, ok := s.get(name); ok && d.kind == secondsDirective {
		return time.Duration(d.seconds) * time.Second, true
	}
	return 0, false
}

// getValue returns the value of a directive in token form:
// flags yield the empty string, delta-seconds the decimal value,
// extensions the stored opaque value.
func (s directiveSet) getValue(name string) (string, bool) {
	d, ok := s.get(name)
	if !ok {
		return "", false
	}
	switch d.kind {
	case secondsDirective:
		return strconv.Itoa(d.seconds), true
	case extensionDirective:
		return d.value, true
	}
	return "", true
}

// String serializes the set in insertion order.
// Flags emit as bare names, delta-seconds as name=N and extensions as
// name="value". An empty set serializes to the empty string.
func (s directiveSet) String() string {
	tokens := make([]string, 0, len(s.directives))
	for _, d := range s.directives {
		switch d.kind {
		case secondsDirective:
			tokens = append(tokens, fmt.Sprintf("%s=%d", d.name, d.seconds))
		case extensionDirective:
			tokens = append(tokens, fmt.Sprintf("%s=%q", d.name, d.value))
		default:
			tokens = append(tokens, d.name)
		}
	}
	return strings.Join(tokens, ", ")
}

// parse parses a Cache-Control header value against a vocabulary.
// Parsing never fails; malformed input degrades to fewer recognized
// directives. Unrecognized bare flags are dropped, while unrecognized
// name=value pairs are preserved as extension directives.
//
// Note splitting is done naively on ",", so a comma embedded in a
// quoted extension value splits the token. Known simplification.
func parse(header string, vocabulary map[string]directiveType) directiveSet {
	var set directiveSet
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts := strings.SplitN(token, "=", 2)
		name := strings.ToLower(strings.TrimSpace(parts[0]))
		if name == "" {
			continue
		}
		typ, known := vocabulary[name]
		if len(parts) == 1 {
			if known && typ == typeFlag {
				set = set.withFlag(name, true)
			}
			continue
		}
		value := strings.TrimSpace(parts[1])
		switch {
		case known && typ == typeSeconds:
			// an invalid delta-seconds value drops the directive
			if seconds, err := strconv.Atoi(value); err == nil {
				set = set.withSeconds(name, seconds)
			}
		case known:
			// qualified flag form, e.g. no-cache="set-cookie";
			// handled as the unqualified directive
			set = set.withFlag(name, true)
		default:
			set = set.with(directive{
				name:  name,
				kind:  extensionDirective,
				value: strings.Trim(value, "\""),
			})
		}
	}
	return set
}
