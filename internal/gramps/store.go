// Package gramps implements a simple and deliberately naive parser for
// Gramps XML family-history archives (.gramps files).
//
// A parsed archive becomes a Store: a graph of persons, families, events
// and places addressed only by the opaque handle strings the archive
// assigns. Entities reference each other by handle, never by pointer, and
// handles are resolved lazily through the Store so that forward references
// between archive sections work regardless of parse order. The Store is
// built in a single parse pass and treated as immutable afterwards; derived
// fields (resolved relatives, birth/death strings) are memoized on first
// access under that assumption.
package gramps

// Store holds every entity extracted from an archive, keyed by handle.
//
// Notes and sources are recognized archive sections but are not parsed;
// their maps stay empty and handles referring to them are preserved on the
// entities that carry them without ever being resolved.
type Store struct {
	Persons  map[string]*Person
	Families map[string]*Family
	Events   map[string]*Event
	Places   map[string]*Place
	Notes    map[string]*Note
	Sources  map[string]*Source

	// personOrder preserves archive order so name searches are
	// deterministic when names are duplicated.
	personOrder []string
}

// Note is an archive note. Recognized but never populated by the parser.
type Note struct {
	Handle string
}

// Source is an archive source citation. Recognized but never populated by
// the parser.
type Source struct {
	Handle string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Persons:  make(map[string]*Person),
		Families: make(map[string]*Family),
		Events:   make(map[string]*Event),
		Places:   make(map[string]*Place),
		Notes:    make(map[string]*Note),
		Sources:  make(map[string]*Source),
	}
}

// Person returns the person with the given handle, or nil.
func (s *Store) Person(handle string) *Person { return s.Persons[handle] }

// Family returns the family with the given handle, or nil.
func (s *Store) Family(handle string) *Family { return s.Families[handle] }

// Event returns the event with the given handle, or nil.
func (s *Store) Event(handle string) *Event { return s.Events[handle] }

// Place returns the place with the given handle, or nil.
func (s *Store) Place(handle string) *Place { return s.Places[handle] }

// Note returns the note with the given handle, or nil.
func (s *Store) Note(handle string) *Note { return s.Notes[handle] }

// Source returns the source with the given handle, or nil.
func (s *Store) Source(handle string) *Source { return s.Sources[handle] }

// AddPerson registers a person under its handle and binds it to the store
// for lazy handle resolution. Intended for the parse phase only.
func (s *Store) AddPerson(p *Person) {
	p.store = s
	if _, seen := s.Persons[p.Handle]; !seen {
		s.personOrder = append(s.personOrder, p.Handle)
	}
	s.Persons[p.Handle] = p
}

// AddFamily registers a family under its handle.
func (s *Store) AddFamily(f *Family) {
	f.store = s
	s.Families[f.Handle] = f
}

// AddEvent registers an event under its handle.
func (s *Store) AddEvent(e *Event) {
	e.store = s
	s.Events[e.Handle] = e
}

// AddPlace registers a place under its handle.
func (s *Store) AddPlace(p *Place) {
	s.Places[p.Handle] = p
}

// FindPerson returns the first person, in archive order, whose full name
// exactly matches name. Returns nil when no person matches.
func (s *Store) FindPerson(name string) *Person {
	for _, handle := range s.personOrder {
		if p := s.Persons[handle]; p.Name() == name {
			return p
		}
	}
	return nil
}
