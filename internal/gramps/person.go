package gramps

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event types the ancestry logic treats specially. Event.Type itself stays
// an open string.
const (
	eventBirth       = "Birth"
	eventDeath       = "Death"
	eventImmigration = "Immigration"
	eventEmmigration = "Emmigration"
)

// Named is anything with a display name. Both Person and Family satisfy it;
// associated events carry their subject through this interface.
type Named interface {
	Name() string
}

// Person is an individual from the archive.
type Person struct {
	store *Store

	Handle     string
	ID         string
	Gender     string
	FirstNames []string
	Prefix     string
	Surname    string

	EventHandles    []string
	ChildOfHandle   string
	ParentInHandles []string
	NoteHandles     []string

	events         []*Event
	eventsResolved bool
	birth          string
	birthSet       bool
	death          string
	deathSet       bool
}

// Name returns the person's full name: space-joined given names followed by
// the surname.
func (p *Person) Name() string {
	parts := make([]string, 0, len(p.FirstNames)+1)
	parts = append(parts, p.FirstNames...)
	if p.Surname != "" {
		parts = append(parts, p.Surname)
	}
	return strings.Join(parts, " ")
}

// NameWithDates returns the person's name annotated with birth and death
// dates, e.g. "Ada Lovelace (b. 1815-12-10, d. 1852-11-27)". The death
// annotation is omitted when the archive records no Death event.
func (p *Person) NameWithDates() string {
	if p.Death() == "" {
		return fmt.Sprintf("%s (b. %s)", p.Name(), p.Birth())
	}
	return fmt.Sprintf("%s (b. %s, d. %s)", p.Name(), p.Birth(), p.Death())
}

// Birth returns the person's birth date display string, taken from the
// first Birth event in event order. Qualifier prefixes ("abt", "bef", ...)
// are included. Returns "unknown" when no dated Birth event exists. The
// result is computed once and cached.
func (p *Person) Birth() string {
	if !p.birthSet {
		p.birth = p.eventDateString(eventBirth, "unknown")
		p.birthSet = true
	}
	return p.birth
}

// Death returns the person's death date display string from the first
// Death event in event order, or "" when the archive records no Death
// event at all ("unknown" when it records one without a date). The result
// is computed once and cached.
func (p *Person) Death() string {
	if !p.deathSet {
		p.death = p.eventDateString(eventDeath, "")
		p.deathSet = true
	}
	return p.death
}

// eventDateString finds the first event of the given type and renders its
// date. missing is returned when no such event exists; an event without a
// date renders as "unknown".
func (p *Person) eventDateString(eventType, missing string) string {
	for _, ev := range p.Events() {
		if ev.Type != eventType {
			continue
		}
		if ev.Date == "" {
			return "unknown"
		}
		return ev.DateString()
	}
	return missing
}

// BirthTime returns the parsed time of the person's first Birth event.
// ok is false when the person has no dated Birth event; err reports a
// Birth date that exists but cannot be parsed.
func (p *Person) BirthTime() (t time.Time, ok bool, err error) {
	return p.eventTime(eventBirth)
}

// DeathTime returns the parsed time of the person's first Death event.
func (p *Person) DeathTime() (t time.Time, ok bool, err error) {
	return p.eventTime(eventDeath)
}

func (p *Person) eventTime(eventType string) (time.Time, bool, error) {
	for _, ev := range p.Events() {
		if ev.Type != eventType || ev.Date == "" {
			continue
		}
		t, err := ev.Time()
		if err != nil {
			return time.Time{}, false, err
		}
		return t, true, nil
	}
	return time.Time{}, false, nil
}

// Events resolves the person's event handles against the store. Handles
// whose referent was never parsed are skipped. Resolution happens once and
// the result is cached.
func (p *Person) Events() []*Event {
	if !p.eventsResolved {
		for _, h := range p.EventHandles {
			if ev := p.store.Event(h); ev != nil {
				p.events = append(p.events, ev)
			}
		}
		p.eventsResolved = true
	}
	return p.events
}

// AssociatedEvent is one event a person was involved in, directly (their
// own events) or indirectly (family events, children's and younger
// siblings' births).
type AssociatedEvent struct {
	Subject Named
	Event   *Event
	Time    time.Time // zero for undated events
	Direct  bool
}

// AssociatedEvents returns the events this person was involved with, in
// time order: their own dated events, events of families they are a parent
// in, births of their children, and births of younger siblings from the
// family they are a child in.
//
// Sibling births are only associated while the person was plausibly
// present: a sibling born before the person, or after the person's own
// Immigration/Emmigration event, is excluded. When the person has no dated
// Birth event the sibling association is skipped entirely.
//
// Undated events are dropped unless includeUndated is set, in which case
// they are appended after the time-ordered dated events. A date that is
// present but unparseable aborts collection with a *dates.ParseError.
func (p *Person) AssociatedEvents(includeUndated bool) ([]AssociatedEvent, error) {
	var dated, undated []AssociatedEvent

	var siblingCutoff time.Time
	haveCutoff := false

	for _, ev := range p.Events() {
		if ev.Date == "" {
			if includeUndated {
				undated = append(undated, AssociatedEvent{Subject: p, Event: ev, Direct: true})
			}
			continue
		}
		t, err := ev.Time()
		if err != nil {
			return nil, err
		}
		if ev.Type == eventImmigration || ev.Type == eventEmmigration {
			// Events after this point happened in another country;
			// siblings born back home are no longer associated.
			siblingCutoff = t
			haveCutoff = true
		}
		dated = append(dated, AssociatedEvent{Subject: p, Event: ev, Time: t, Direct: true})
	}

	for _, fh := range p.ParentInHandles {
		family := p.store.Family(fh)
		if family == nil {
			continue
		}
		for _, ev := range family.Events() {
			if ev.Date == "" {
				if includeUndated {
					undated = append(undated, AssociatedEvent{Subject: family, Event: ev})
				}
				continue
			}
			t, err := ev.Time()
			if err != nil {
				return nil, err
			}
			dated = append(dated, AssociatedEvent{Subject: family, Event: ev, Time: t})
		}
		for _, child := range family.Children() {
			for _, ev := range child.Events() {
				if ev.Type != eventBirth {
					continue
				}
				if ev.Date == "" {
					if includeUndated {
						undated = append(undated, AssociatedEvent{Subject: child, Event: ev})
					}
					continue
				}
				t, err := ev.Time()
				if err != nil {
					return nil, err
				}
				dated = append(dated, AssociatedEvent{Subject: child, Event: ev, Time: t})
			}
		}
	}

	if p.ChildOfHandle != "" {
		if family := p.store.Family(p.ChildOfHandle); family != nil {
			birth, haveBirth, err := p.BirthTime()
			if err != nil {
				return nil, err
			}
			for _, sibling := range family.Children() {
				if sibling.Handle == p.Handle {
					continue
				}
				for _, ev := range sibling.Events() {
					if ev.Type != eventBirth {
						continue
					}
					if ev.Date == "" {
						if includeUndated {
							undated = append(undated, AssociatedEvent{Subject: sibling, Event: ev})
						}
						continue
					}
					if !haveBirth {
						continue
					}
					t, err := ev.Time()
					if err != nil {
						return nil, err
					}
					if !t.After(birth) {
						continue
					}
					if haveCutoff && !t.Before(siblingCutoff) {
						continue
					}
					dated = append(dated, AssociatedEvent{Subject: sibling, Event: ev, Time: t})
				}
			}
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Time.Before(dated[j].Time)
	})

	if includeUndated {
		dated = append(dated, undated...)
	}
	return dated, nil
}

// Ancestors returns this person's handle followed by the handles of every
// recorded ancestor, walking the father's side before the mother's at each
// generation.
func (p *Person) Ancestors() []string {
	return p.collectAncestors(nil)
}

func (p *Person) collectAncestors(handles []string) []string {
	handles = append(handles, p.Handle)
	if p.ChildOfHandle == "" {
		return handles
	}
	family := p.store.Family(p.ChildOfHandle)
	if family == nil {
		return handles
	}
	if father := family.Father(); father != nil {
		handles = father.collectAncestors(handles)
	}
	if mother := family.Mother(); mother != nil {
		handles = mother.collectAncestors(handles)
	}
	return handles
}

func (p *Person) String() string {
	var b strings.Builder
	b.WriteString("Person\n")
	b.WriteString(indent)
	b.WriteString(p.NameWithDates())
	if p.ChildOfHandle != "" {
		if family := p.store.Family(p.ChildOfHandle); family != nil {
			fmt.Fprintf(&b, "\n%sChild of %s", indent, family.Name())
		}
	} else {
		fmt.Fprintf(&b, "\n%sChild of unknown", indent)
	}
	for _, fh := range p.ParentInHandles {
		if family := p.store.Family(fh); family != nil {
			fmt.Fprintf(&b, "\n%sParent in %s", indent, family.Name())
		}
	}
	if events := p.Events(); len(events) > 0 {
		fmt.Fprintf(&b, "\n%sEvents:", indent)
		for _, ev := range events {
			b.WriteString("\n")
			b.WriteString(indentLines(ev.String(), indent+indent))
		}
	}
	return b.String()
}
