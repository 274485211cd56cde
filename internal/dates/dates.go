// Package dates provides canonical date parsing and timestamp helpers.
//
// This package exists to avoid duplicating date handling logic across:
// - event date derivation during parsing
// - associated-event time ordering
// - gource log timestamp generation
//
// Archive dates arrive in many loosely structured forms ("1815-12-10",
// "1815-12", "10 Dec 1815"), so parsing goes through the permissive
// dateparse library rather than a fixed set of layouts.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseError reports an event date string that could not be interpreted.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseEventDate parses an archive date string into a point in time.
//
// A value lacking a day component (YYYY-MM) is coerced to the first of the
// month before parsing. All values are interpreted in UTC so output does
// not depend on the machine's timezone. An empty value is an error; callers
// are expected to check for date presence first.
func ParseEventDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, &ParseError{Value: value, Err: fmt.Errorf("empty date")}
	}
	if parts := strings.Split(v, "-"); len(parts) == 2 {
		// Missing day component, use day 01 for compatibility.
		v = v + "-01"
	}
	t, err := dateparse.ParseIn(v, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Err: err}
	}
	return t, nil
}

// epoch is the Unix epoch reference point for log timestamps.
var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Timestamp converts a point in time to Unix-epoch-relative seconds.
//
// Times before the epoch are computed by subtracting the distance back from
// the epoch, which yields correct negative values for pre-1970 dates
// without depending on platform time conversion range. Fractional seconds
// are truncated.
func Timestamp(t time.Time) int64 {
	if t.Before(epoch) {
		// Seconds back to the epoch, subtracted from zero. Computed on
		// whole seconds: a time.Duration saturates beyond ~292 years.
		return -(epoch.Unix() - t.Unix())
	}
	return int64(t.Sub(epoch).Seconds())
}

// TimeString renders a point in time as YYYY-MM-DD.
//
// Kept as the single formatting point for dates that may predate 1900 (the
// range historically hostile to strftime-style formatters).
func TimeString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
