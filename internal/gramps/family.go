package gramps

import (
	"fmt"
	"strings"
)

// Family links two parents and their children. Child references are
// partitioned into biological children and step-children by the archive's
// per-reference relationship flag.
type Family struct {
	store *Store

	Handle       string
	ID           string
	FatherHandle string
	MotherHandle string
	Relationship string

	EventHandles     []string
	ChildHandles     []string
	StepChildHandles []string
	SourceHandles    []string

	father           *Person
	fatherResolved   bool
	mother           *Person
	motherResolved   bool
	children         []*Person
	childrenResolved bool
	events           []*Event
	eventsResolved   bool
}

// Father resolves the family's father, or nil when the family records none.
// Resolved once and cached.
func (f *Family) Father() *Person {
	if !f.fatherResolved {
		if f.FatherHandle != "" {
			f.father = f.store.Person(f.FatherHandle)
		}
		f.fatherResolved = true
	}
	return f.father
}

// Mother resolves the family's mother, or nil when the family records none.
func (f *Family) Mother() *Person {
	if !f.motherResolved {
		if f.MotherHandle != "" {
			f.mother = f.store.Person(f.MotherHandle)
		}
		f.motherResolved = true
	}
	return f.mother
}

// Children resolves the family's biological children in archive order.
// Handles whose referent was never parsed are skipped.
func (f *Family) Children() []*Person {
	if !f.childrenResolved {
		for _, h := range f.ChildHandles {
			if child := f.store.Person(h); child != nil {
				f.children = append(f.children, child)
			}
		}
		f.childrenResolved = true
	}
	return f.children
}

// Events resolves the family's events (marriage, divorce, ...).
func (f *Family) Events() []*Event {
	if !f.eventsResolved {
		for _, h := range f.EventHandles {
			if ev := f.store.Event(h); ev != nil {
				f.events = append(f.events, ev)
			}
		}
		f.eventsResolved = true
	}
	return f.events
}

// Name returns "father & mother", substituting "unknown" for a missing
// parent.
func (f *Family) Name() string {
	return f.compositeName(func(p *Person) string { return p.Name() })
}

// NameWithDates is Name with each parent's birth/death annotation.
func (f *Family) NameWithDates() string {
	return f.compositeName(func(p *Person) string { return p.NameWithDates() })
}

func (f *Family) compositeName(render func(*Person) string) string {
	father := "unknown"
	if p := f.Father(); p != nil {
		father = render(p)
	}
	mother := "unknown"
	if p := f.Mother(); p != nil {
		mother = render(p)
	}
	return father + " & " + mother
}

func (f *Family) String() string {
	var b strings.Builder
	b.WriteString("Family\n")
	b.WriteString(indent)
	b.WriteString(f.NameWithDates())
	fmt.Fprintf(&b, "\n%srelationship=%s", indent, f.Relationship)
	children := f.Children()
	if len(children) == 0 {
		fmt.Fprintf(&b, "\n%sChildren: None", indent)
		return b.String()
	}
	fmt.Fprintf(&b, "\n%sChildren:", indent)
	for _, child := range children {
		b.WriteString("\n")
		b.WriteString(indentLines(child.String(), indent+indent))
	}
	return b.String()
}
