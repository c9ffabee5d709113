// Package httpdate converts timestamps to and from the HTTP-date format
// defined in section 5.6.7 of RFC 9110.
package httpdate

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

var ErrorUnparsableTime = fmt.Errorf("cannot coerce input to a timestamp")

// Layout is the preferred IMF-fixdate format.
// The zone abbreviation is part of the reference time so that parsing
// captures whatever zone name the sender used.
const Layout = "Mon, 02 Jan 2006 15:04:05 MST"

// Parse parses an HTTP-date string.
// A recipient must accept all three HTTP-date formats: IMF-fixdate,
// the obsolete RFC 850 format and ANSI C asctime.
// Parsing is relaxed with regard to case, as allowed for cache recipients.
func Parse(dateStr string) (time.Time, error) {
	if date, err := imfDate(dateStr); err == nil {
		return date, nil
	}
	if date, err := obsDate(dateStr); err == nil {
		return date, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrorUnparsableTime, dateStr)
}

// Format returns the IMF-fixdate representation of the given time.
// The result is always in GMT with one-second resolution.
func Format(date time.Time) string {
	return date.UTC().Format(http.TimeFormat)
}

// Coerce converts a timestamp, date string or time value
// to a comparable instant with one-second resolution.
func Coerce(input interface{}) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return v.Truncate(time.Second), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, ErrorUnparsableTime
		}
		return v.Truncate(time.Second), nil
	case string:
		return Parse(v)
	case int:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	}
	return time.Time{}, ErrorUnparsableTime
}

func imfDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(Layout, normalizeDateStr(dateStr))
	if err != nil {
		return date, err
	}
	if date.Location().String() != "GMT" {
		return date, fmt.Errorf("date %s is not in GMT time, but %s", date, date.Location())
	}
	return date, nil
}

// obsDate parses the two obsolete formats.
func obsDate(dateStr string) (time.Time, error) {
	str := normalizeDateStr(dateStr)
	if date, err := time.Parse(time.RFC850, str); err == nil {
		return date, nil
	}
	return time.Parse(time.ANSIC, str)
}

// HTTP-date is case sensitive, but section 4.2 of RFC 9111
// relaxes this for cache recipients.
func normalizeDateStr(dateStr string) string {
	return strings.ToUpper(dateStr)
}
