package cachecontrol

import (
	"errors"
	"testing"
)

func TestSettersReturnNewValue(t *testing.T) {
	original := NewResponseCacheControl().WithMaxAge(60)
	modified := original.WithMaxAge(600)
	if maxAge, _ := original.MaxAge(); maxAge.Seconds() != 60 {
		t.Fatalf("Original was mutated, max-age is %v", maxAge)
	}
	if maxAge, _ := modified.MaxAge(); maxAge.Seconds() != 600 {
		t.Fatalf("max-age is %v", maxAge)
	}
}

func TestSetterClampsNegativeSeconds(t *testing.T) {
	cc := NewResponseCacheControl().WithMaxAge(-1)
	if maxAge, ok := cc.MaxAge(); !ok || maxAge != 0 {
		t.Fatalf("max-age is %v, ok: %v", maxAge, ok)
	}
}

func TestFlagSetterWithFalseRemoves(t *testing.T) {
	cc := NewResponseCacheControl().WithNoStore(true).WithNoStore(false)
	if cc.Has("no-store") {
		t.Fatal("no-store still set")
	}
	if serialized := cc.String(); serialized != "" {
		t.Fatalf("Serialized as %q", serialized)
	}
}

func TestPublicRemovesPrivate(t *testing.T) {
	cc := NewResponseCacheControl().WithPrivate(true).WithPublic(true)
	if cc.Private() {
		t.Fatal("private still set")
	}
	if !cc.Public() {
		t.Fatal("public not set")
	}
}

func TestPrivateRemovesPublic(t *testing.T) {
	cc := NewResponseCacheControl().WithPublic(true).WithPrivate(true)
	if cc.Public() {
		t.Fatal("public still set")
	}
	if !cc.Private() {
		t.Fatal("private not set")
	}
}

func TestCacheTypeRejectsOtherTokens(t *testing.T) {
	if _, err := NewResponseCacheControl().WithCacheType("shared"); !errors.Is(err, ErrorInvalidDirectiveType) {
		t.Fatalf("Error is %v", err)
	}
}

func TestCacheTypePublic(t *testing.T) {
	cc, err := NewResponseCacheControl().WithCacheType("public")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !cc.Public() {
		t.Fatal("public not set")
	}
}

func TestDirectiveSetterRejectsUnknownName(t *testing.T) {
	if _, err := NewResponseCacheControl().WithDirective("min-fresh", "10"); !errors.Is(err, ErrorUnknownDirective) {
		t.Fatalf("Error is %v", err)
	}
}

func TestDirectiveSetterRejectsNonIntegerSeconds(t *testing.T) {
	if _, err := NewResponseCacheControl().WithDirective("max-age", "sixty"); !errors.Is(err, ErrorInvalidRelativeSeconds) {
		t.Fatalf("Error is %v", err)
	}
}

func TestDirectiveSetterKeepsExclusivity(t *testing.T) {
	cc := NewResponseCacheControl().WithPrivate(true)
	cc, err := cc.WithDirective("public", "")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if cc.Private() {
		t.Fatal("private still set")
	}
}

// Parsing tolerates third-party input that the setter API rejects.
// A header with an unrecognized directive parses fine, while setting
// the same directive explicitly is an error.
func TestParsePermissiveSetterStrict(t *testing.T) {
	cc := ParseResponseCacheControl("unicorn, max-age=60")
	if maxAge, ok := cc.MaxAge(); !ok || maxAge.Seconds() != 60 {
		t.Fatalf("max-age is %v", maxAge)
	}
	if cc.Has("unicorn") {
		t.Fatal("unicorn directive set")
	}
	if _, err := NewResponseCacheControl().WithDirective("unicorn", ""); !errors.Is(err, ErrorUnknownDirective) {
		t.Fatalf("Error is %v", err)
	}
}
