package httpdate

import (
	"errors"
	"testing"
	"time"
)

func TestParseImfDate(t *testing.T) {
	date, err := Parse("Mon, 10 Aug 2015 18:30:12 GMT")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	want := time.Date(2015, 8, 10, 18, 30, 12, 0, time.UTC)
	if !date.Equal(want) {
		t.Fatalf("Date is %v", date)
	}
}

func TestParseIsCaseRelaxed(t *testing.T) {
	date, err := Parse("mon, 10 aug 2015 18:30:12 gmt")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !date.Equal(time.Date(2015, 8, 10, 18, 30, 12, 0, time.UTC)) {
		t.Fatalf("Date is %v", date)
	}
}

func TestParseObsoleteRfc850Date(t *testing.T) {
	date, err := Parse("Monday, 10-Aug-15 18:30:12 GMT")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !date.Equal(time.Date(2015, 8, 10, 18, 30, 12, 0, time.UTC)) {
		t.Fatalf("Date is %v", date)
	}
}

func TestParseObsoleteAsctimeDate(t *testing.T) {
	date, err := Parse("Sun Nov  6 08:49:37 1994")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !date.Equal(time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC)) {
		t.Fatalf("Date is %v", date)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not a date"); !errors.Is(err, ErrorUnparsableTime) {
		t.Fatalf("Error is %v", err)
	}
}

func TestFormatIsAlwaysGmt(t *testing.T) {
	date := time.Date(2015, 8, 10, 21, 30, 12, 0, time.FixedZone("EEST", 3*60*60))
	if formatted := Format(date); formatted != "Mon, 10 Aug 2015 18:30:12 GMT" {
		t.Fatalf("Formatted date is %s", formatted)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	str := "Mon, 10 Aug 2015 18:30:12 GMT"
	date, err := Parse(str)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if formatted := Format(date); formatted != str {
		t.Fatalf("Formatted date is %s", formatted)
	}
}

func TestCoerceString(t *testing.T) {
	date, err := Coerce("Mon, 10 Aug 2015 18:30:12 GMT")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !date.Equal(time.Date(2015, 8, 10, 18, 30, 12, 0, time.UTC)) {
		t.Fatalf("Date is %v", date)
	}
}

func TestCoerceTimeTruncatesToSeconds(t *testing.T) {
	date, err := Coerce(time.Date(2015, 8, 10, 18, 30, 12, 999999999, time.UTC))
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !date.Equal(time.Date(2015, 8, 10, 18, 30, 12, 0, time.UTC)) {
		t.Fatalf("Date is %v", date)
	}
}

func TestCoerceUnixSeconds(t *testing.T) {
	date, err := Coerce(int64(1439231412))
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !date.Equal(time.Date(2015, 8, 10, 18, 30, 12, 0, time.UTC)) {
		t.Fatalf("Date is %v", date)
	}
}

func TestCoerceUnsupportedType(t *testing.T) {
	if _, err := Coerce(3.14); !errors.Is(err, ErrorUnparsableTime) {
		t.Fatalf("Error is %v", err)
	}
}
