package gource

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/claws/gramps2gource/internal/atomicfile"
	"github.com/claws/gramps2gource/internal/dates"
	"github.com/claws/gramps2gource/internal/gramps"
)

// ErrNotFound reports a focus name with no matching person in the store.
// It is recoverable: the exporter logs it and continues with the remaining
// names.
var ErrNotFound = errors.New("focus person not found")

// Exporter produces Gource custom logs from a populated store. The store
// is read-only input; parsing must have completed before export begins.
type Exporter struct {
	store *gramps.Store
	log   zerolog.Logger
}

// New returns an exporter over store.
func New(store *gramps.Store, log zerolog.Logger) *Exporter {
	return &Exporter{store: store, log: log}
}

// AncestorPath pairs an ancestor's handle with the pseudo-path Gource uses
// to group that ancestor's events.
type AncestorPath struct {
	Handle string
	Path   string
}

// Ancestors returns the person and every recorded ancestor, father's side
// before mother's at each generation. Each entry carries a pseudo-path
// built from the chain of handles leading to that ancestor and ending in
// "<handle>/<name with dates>", so an ancestor's path is always prefixed
// by the path of the descendant that led to them.
func (e *Exporter) Ancestors(person *gramps.Person) []AncestorPath {
	return e.collectAncestors(person, "", nil)
}

func (e *Exporter) collectAncestors(person *gramps.Person, prefix string, acc []AncestorPath) []AncestorPath {
	if prefix == "" {
		prefix = person.Handle
	} else {
		prefix = prefix + "/" + person.Handle
	}
	acc = append(acc, AncestorPath{
		Handle: person.Handle,
		Path:   prefix + "/" + person.NameWithDates(),
	})

	if person.ChildOfHandle == "" {
		return acc
	}
	family := e.store.Family(person.ChildOfHandle)
	if family == nil {
		return acc
	}
	if father := family.Father(); father != nil {
		acc = e.collectAncestors(father, prefix, acc)
	}
	if mother := family.Mother(); mother != nil {
		acc = e.collectAncestors(mother, prefix, acc)
	}
	return acc
}

// Resolve finds the focus person for a name. A missing name is ErrNotFound.
func (e *Exporter) Resolve(name string) (*gramps.Person, error) {
	if person := e.store.FindPerson(name); person != nil {
		return person, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// LogRecords converts a person's associated events into log records using
// the full event-type marker table, one record per classifiable dated
// event. Events of unrecognized types are dropped. This is the
// general-purpose mapping; the pedigree export uses only the direct-Birth
// subset but the full mapping is kept as reusable surface.
func (e *Exporter) LogRecords(person *gramps.Person, path string) ([]Record, error) {
	assoc, err := person.AssociatedEvents(false)
	if err != nil {
		return nil, err
	}
	var records []Record
	for _, ae := range assoc {
		marker := MarkerFor(ae.Event.Type, ae.Direct)
		if marker == Unknown {
			e.log.Debug().Str("type", ae.Event.Type).Msg("unclassifiable event type")
			continue
		}
		records = append(records, Record{
			Timestamp: dates.Timestamp(ae.Time),
			Name:      strings.ToLower(person.Surname),
			Marker:    marker,
			Path:      path,
		})
	}
	sortRecords(records)
	return records, nil
}

// pedigreeRecords emits the pedigree-mode subset: exactly one record per
// ancestor, from their own Birth event.
func (e *Exporter) pedigreeRecords(person *gramps.Person, path string) ([]Record, error) {
	assoc, err := person.AssociatedEvents(false)
	if err != nil {
		return nil, err
	}
	var records []Record
	for _, ae := range assoc {
		if !ae.Direct || MarkerFor(ae.Event.Type, ae.Direct) != Added {
			continue
		}
		records = append(records, Record{
			Timestamp: dates.Timestamp(ae.Time),
			Name:      strings.ToLower(person.Surname),
			Marker:    Added,
			Path:      path,
		})
	}
	sortRecords(records)
	return records, nil
}

// Pedigree writes a Gource custom log covering the ancestry of every named
// focus person.
//
// Timestamps are negated and records sorted ascending, so Gource replays
// the pedigree in reverse chronological order (most recent ancestor first).
// This inversion is part of the output format, not an artifact. A name
// with no match is logged and skipped; when no records are produced at all
// no output file is written and Pedigree returns nil.
func (e *Exporter) Pedigree(names []string, outputPath string) error {
	if len(names) == 0 {
		return fmt.Errorf("no focus persons supplied")
	}

	var all []Record
	for _, name := range names {
		e.log.Info().Str("name", name).Msg("generating pedigree output")
		person, err := e.Resolve(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				e.log.Warn().Str("name", name).Msg("focus person not found, skipping")
				continue
			}
			return err
		}

		ancestors := e.Ancestors(person)
		e.log.Debug().Str("name", name).Int("ancestors", len(ancestors)).Msg("collected ancestors")

		for _, ap := range ancestors {
			ancestor := e.store.Person(ap.Handle)
			records, err := e.pedigreeRecords(ancestor, ap.Path)
			if err != nil {
				return fmt.Errorf("collect events for %s: %w", ancestor.Name(), err)
			}
			all = append(all, records...)
		}
	}

	if len(all) == 0 {
		e.log.Warn().Msg("no records produced, not writing output")
		return nil
	}

	// Negate timestamps so the ascending sort yields newest-first replay.
	for i := range all {
		all[i].Timestamp = -all[i].Timestamp
	}
	sortRecords(all)

	var buf bytes.Buffer
	for _, r := range all {
		buf.WriteString(r.String())
		buf.WriteByte('\n')
	}
	// Trailing blank line signals end of stream to Gource.
	buf.WriteByte('\n')

	if err := atomicfile.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write gource log: %w", err)
	}
	e.log.Info().Int("records", len(all)).Str("path", outputPath).Msg("wrote gource log")
	return nil
}
