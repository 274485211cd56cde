package gource

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/claws/gramps2gource/internal/gramps"
)

// pedigreeStore builds a hand-assembled three-generation store:
// ada <- (byron, anna); anna <- (ralph, judith). byron has no recorded
// parents.
func pedigreeStore() *gramps.Store {
	s := gramps.NewStore()

	s.AddEvent(&gramps.Event{Handle: "_e_ada", Type: "Birth", Date: "1815-12-10"})
	s.AddEvent(&gramps.Event{Handle: "_e_byron", Type: "Birth", Date: "1788-01-22"})
	s.AddEvent(&gramps.Event{Handle: "_e_anna", Type: "Birth", Date: "1792-05-17"})
	s.AddEvent(&gramps.Event{Handle: "_e_ralph", Type: "Birth", Date: "1747-07-04"})
	s.AddEvent(&gramps.Event{Handle: "_e_judith", Type: "Birth", Date: "1751-10-01"})

	s.AddPerson(&gramps.Person{
		Handle: "_ada", FirstNames: []string{"Ada"}, Surname: "Lovelace",
		EventHandles: []string{"_e_ada"}, ChildOfHandle: "_f1",
	})
	s.AddPerson(&gramps.Person{
		Handle: "_byron", FirstNames: []string{"George"}, Surname: "Byron",
		EventHandles: []string{"_e_byron"},
	})
	s.AddPerson(&gramps.Person{
		Handle: "_anna", FirstNames: []string{"Annabella"}, Surname: "Milbanke",
		EventHandles: []string{"_e_anna"}, ChildOfHandle: "_f2",
	})
	s.AddPerson(&gramps.Person{
		Handle: "_ralph", FirstNames: []string{"Ralph"}, Surname: "Milbanke",
		EventHandles: []string{"_e_ralph"},
	})
	s.AddPerson(&gramps.Person{
		Handle: "_judith", FirstNames: []string{"Judith"}, Surname: "Noel",
		EventHandles: []string{"_e_judith"},
	})

	s.AddFamily(&gramps.Family{
		Handle: "_f1", FatherHandle: "_byron", MotherHandle: "_anna",
		ChildHandles: []string{"_ada"},
	})
	s.AddFamily(&gramps.Family{
		Handle: "_f2", FatherHandle: "_ralph", MotherHandle: "_judith",
		ChildHandles: []string{"_anna"},
	})
	return s
}

func TestAncestorsSelfOnly(t *testing.T) {
	s := gramps.NewStore()
	s.AddEvent(&gramps.Event{Handle: "_e", Type: "Birth", Date: "1900-01-01"})
	s.AddPerson(&gramps.Person{
		Handle: "_p", FirstNames: []string{"Solo"}, Surname: "Person",
		EventHandles: []string{"_e"},
	})

	got := New(s, zerolog.Nop()).Ancestors(s.Person("_p"))
	if len(got) != 1 {
		t.Fatalf("ancestors = %d, want 1", len(got))
	}
	if got[0].Handle != "_p" {
		t.Fatalf("handle = %q", got[0].Handle)
	}
	if got[0].Path != "_p/Solo Person (b. 1900-01-01)" {
		t.Fatalf("path = %q", got[0].Path)
	}
}

func TestAncestorsNestedPaths(t *testing.T) {
	s := pedigreeStore()
	e := New(s, zerolog.Nop())

	got := e.Ancestors(s.Person("_ada"))
	// self + father + mother + mother's two ancestors
	if len(got) != 5 {
		t.Fatalf("ancestors = %d, want 5", len(got))
	}

	// Father's side comes before mother's.
	if got[1].Handle != "_byron" || got[2].Handle != "_anna" {
		t.Fatalf("order = %q, %q", got[1].Handle, got[2].Handle)
	}

	// Every ancestor's path is prefixed by the handle chain of the
	// descendant that led to them.
	if !strings.HasPrefix(got[1].Path, "_ada/_byron/") {
		t.Fatalf("father path = %q", got[1].Path)
	}
	if !strings.HasPrefix(got[3].Path, "_ada/_anna/_ralph/") {
		t.Fatalf("grandfather path = %q", got[3].Path)
	}
	if !strings.HasPrefix(got[4].Path, "_ada/_anna/_judith/") {
		t.Fatalf("grandmother path = %q", got[4].Path)
	}
}

func TestAncestorsToleratesMissingParent(t *testing.T) {
	s := gramps.NewStore()
	s.AddPerson(&gramps.Person{Handle: "_kid", Surname: "Kid", ChildOfHandle: "_f"})
	s.AddPerson(&gramps.Person{Handle: "_mum", Surname: "Mum"})
	s.AddFamily(&gramps.Family{Handle: "_f", MotherHandle: "_mum"})

	got := New(s, zerolog.Nop()).Ancestors(s.Person("_kid"))
	if len(got) != 2 {
		t.Fatalf("ancestors = %d, want 2", len(got))
	}
	if got[1].Handle != "_mum" {
		t.Fatalf("handle = %q", got[1].Handle)
	}
}

func TestLogRecordsGeneralMapping(t *testing.T) {
	s := gramps.NewStore()
	s.AddEvent(&gramps.Event{Handle: "_e1", Type: "Birth", Date: "1900-01-01"})
	s.AddEvent(&gramps.Event{Handle: "_e2", Type: "Census", Date: "1921-06-19"})
	s.AddEvent(&gramps.Event{Handle: "_e3", Type: "Death", Date: "1950-03-03"})
	s.AddEvent(&gramps.Event{Handle: "_e4", Type: "Coronation", Date: "1937-05-12"})
	s.AddPerson(&gramps.Person{
		Handle: "_p", FirstNames: []string{"John"}, Surname: "Doe",
		EventHandles: []string{"_e1", "_e2", "_e3", "_e4"},
	})

	records, err := New(s, zerolog.Nop()).LogRecords(s.Person("_p"), "_p/John Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unrecognized Coronation dropped; the rest classified.
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3: %+v", len(records), records)
	}
	if records[0].Marker != Added || records[1].Marker != Modified || records[2].Marker != Deleted {
		t.Fatalf("markers = %q %q %q", records[0].Marker, records[1].Marker, records[2].Marker)
	}
	for _, r := range records {
		if r.Name != "doe" {
			t.Fatalf("name = %q, want lowercased surname", r.Name)
		}
	}
}

func TestPedigreeSignInversion(t *testing.T) {
	s := pedigreeStore()
	out := filepath.Join(t.TempDir(), "pedigree.log")
	if err := New(s, zerolog.Nop()).Pedigree([]string{"Ada Lovelace"}, out); err != nil {
		t.Fatalf("pedigree: %v", err)
	}

	lines := readLines(t, out)
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}

	// Births run newest first: ada 1815, anna 1792, byron 1788, judith
	// 1751, ralph 1747.
	wantNames := []string{"lovelace", "milbanke", "byron", "noel", "milbanke"}
	for i, line := range lines {
		r, err := ParseRecord(line)
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if r.Name != wantNames[i] {
			t.Fatalf("line %d name = %q, want %q (all: %v)", i, r.Name, wantNames[i], lines)
		}
		if r.Marker != Added {
			t.Fatalf("line %d marker = %q", i, r.Marker)
		}
		if r.Timestamp <= 0 {
			t.Fatalf("line %d: pre-epoch birth should invert to positive, got %d", i, r.Timestamp)
		}
	}
}

func TestPedigreeEndToEnd(t *testing.T) {
	archive := `<?xml version="1.0" encoding="UTF-8"?>
<database xmlns="http://gramps-project.org/xml/1.7.1/">
  <events>
    <event handle="_e1" id="E0001">
      <type>Birth</type>
      <dateval val="1815-12-10"/>
    </event>
  </events>
  <people>
    <person handle="_p1" id="I0001">
      <gender>F</gender>
      <name><first>Ada</first><surname>Lovelace</surname></name>
      <eventref hlink="_e1"/>
    </person>
  </people>
</database>`

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "ada.gramps")
	writeGzip(t, dbPath, archive)

	store, err := gramps.Parse(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := filepath.Join(dir, "pedigree_ada_lovelace.log")
	if err := New(store, zerolog.Nop()).Pedigree([]string{"Ada Lovelace"}, out); err != nil {
		t.Fatalf("pedigree: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	birth := time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC)
	want := fmt.Sprintf("%d|lovelace|A|_p1/Ada Lovelace (b. 1815-12-10)\n\n", -birth.Unix())
	if string(data) != want {
		t.Fatalf("output = %q, want %q", data, want)
	}
}

func TestPedigreeUnknownNameNoOutput(t *testing.T) {
	s := pedigreeStore()
	out := filepath.Join(t.TempDir(), "pedigree.log")
	if err := New(s, zerolog.Nop()).Pedigree([]string{"Nobody Here"}, out); err != nil {
		t.Fatalf("unknown name should not be an error: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("no output file should be written when no records are produced")
	}
}

func TestPedigreeNoNames(t *testing.T) {
	if err := New(pedigreeStore(), zerolog.Nop()).Pedigree(nil, "out.log"); err == nil {
		t.Fatal("expected error for empty focus list")
	}
}

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

// readLines returns the record lines of a log file, verifying the trailing
// blank line that terminates the stream.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n\n") {
		t.Fatalf("output must end with a blank line, got %q", content)
	}
	return strings.Split(strings.TrimSuffix(content, "\n\n"), "\n")
}
