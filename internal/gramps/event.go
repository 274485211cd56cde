package gramps

import (
	"fmt"
	"strings"
	"time"

	"github.com/claws/gramps2gource/internal/dates"
)

// Event is a dated life event (birth, marriage, census, ...) referenced by
// persons and families. Type is an open string: archives carry event types
// this tool has never seen and they must survive parsing untouched.
type Event struct {
	store *Store

	Handle      string
	ID          string
	Type        string
	Description string

	// Date is the raw archive date string, possibly empty. DateQualifier
	// is the qualifier prefix ("before", "about", "after") when present.
	Date          string
	DateQualifier string

	PlaceHandle   string
	NoteHandles   []string
	SourceHandles []string

	parsed     time.Time
	parsedOnce bool
}

// Time returns the parsed point in time for this event's date.
//
// The raw date must be present; callers check Date before calling. A date
// that cannot be interpreted is a *dates.ParseError, not a silent skip.
// The parsed value is cached after the first successful call.
func (e *Event) Time() (time.Time, error) {
	if e.parsedOnce {
		return e.parsed, nil
	}
	t, err := dates.ParseEventDate(e.Date)
	if err != nil {
		return time.Time{}, err
	}
	e.parsed = t
	e.parsedOnce = true
	return t, nil
}

// Place resolves the event's place handle, or nil when the event has no
// place or the referent was never parsed.
func (e *Event) Place() *Place {
	if e.PlaceHandle == "" {
		return nil
	}
	return e.store.Place(e.PlaceHandle)
}

// DateString returns the display form of the event date: the qualifier
// prefix plus the raw date, or "unknown" when the event is undated.
func (e *Event) DateString() string {
	if e.Date == "" {
		return "unknown"
	}
	if e.DateQualifier != "" {
		return e.DateQualifier + " " + e.Date
	}
	return e.Date
}

func (e *Event) String() string {
	var b strings.Builder
	b.WriteString("Event\n")
	fmt.Fprintf(&b, "%s%s, %s", indent, e.Type, e.DateString())
	if p := e.Place(); p != nil {
		b.WriteString("\n")
		b.WriteString(indentLines(p.String(), indent))
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "\n%sdescription=%s", indent, e.Description)
	}
	return b.String()
}
