// Package gource converts a parsed family-history store into Gource
// custom-format log records.
//
// A Gource custom log line is "timestamp|name|marker|path". This package
// walks ancestor chains, derives epoch timestamps from event dates and
// emits records ordered so that Gource replays the pedigree newest-first.
package gource

// Marker is the single-character classification of a log record, telling
// Gource how to draw the event.
type Marker string

const (
	Added    Marker = "A" // birth of the person themselves
	Modified Marker = "M" // any other life event
	Deleted  Marker = "D" // death
	Unknown  Marker = "?" // unrecognized event type, never emitted
)

// EventType enumerates the archive event types the exporter knows how to
// classify. Values match the type strings found in Gramps archives.
type EventType string

const (
	EventBirth         EventType = "Birth"
	EventBaptism       EventType = "Baptism"
	EventChristening   EventType = "Christening"
	EventDeath         EventType = "Death"
	EventBurial        EventType = "Burial"
	EventCremation     EventType = "Cremation"
	EventMarriage      EventType = "Marriage"
	EventMarriageBanns EventType = "Marriage Banns"
	EventCensus        EventType = "Census"
	EventDivorce       EventType = "Divorce"
	EventDivorceFiling EventType = "Divorce Filing"
	EventElectoralRoll EventType = "Electoral Roll"
	EventEmigration    EventType = "Emigration"
	EventResidence     EventType = "Residence"
	EventProperty      EventType = "Property"
	EventImmigration   EventType = "Immigration"
	EventEmmigration   EventType = "Emmigration" // sic, as spelled in archives
	EventOccupation    EventType = "Occupation"
	EventProbate       EventType = "Probate"
)

// markers maps every classified event type to its marker. Birth is handled
// separately because its marker depends on whether the event belongs to the
// person directly.
var markers = map[EventType]Marker{
	EventBaptism:       Modified,
	EventChristening:   Modified,
	EventDeath:         Deleted,
	EventBurial:        Modified,
	EventCremation:     Modified,
	EventMarriage:      Modified,
	EventMarriageBanns: Modified,
	EventCensus:        Modified,
	EventDivorce:       Modified,
	EventDivorceFiling: Modified,
	EventElectoralRoll: Modified,
	EventEmigration:    Modified,
	EventResidence:     Modified,
	EventProperty:      Modified,
	EventImmigration:   Modified,
	EventEmmigration:   Modified,
	EventOccupation:    Modified,
	EventProbate:       Modified,
}

// MarkerFor classifies an event type string. A Birth event maps to Added
// when it is the person's own event and Modified when it belongs to a
// relative. Unrecognized types map to Unknown, which callers drop.
func MarkerFor(eventType string, direct bool) Marker {
	if EventType(eventType) == EventBirth {
		if direct {
			return Added
		}
		return Modified
	}
	if m, ok := markers[EventType(eventType)]; ok {
		return m
	}
	return Unknown
}
