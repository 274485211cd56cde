package gramps

import (
	"fmt"
	"strings"
)

// Place is a named location an event can reference.
type Place struct {
	Handle string
	ID     string
	Title  string
	Lat    string
	Long   string
}

// Coordinates returns the place's latitude/longitude pair. ok is false
// unless both components are present in the archive.
func (p *Place) Coordinates() (lat, long string, ok bool) {
	if p.Lat == "" || p.Long == "" {
		return "", "", false
	}
	return p.Lat, p.Long, true
}

func (p *Place) String() string {
	var b strings.Builder
	b.WriteString("Place\n")
	b.WriteString(indent)
	b.WriteString(p.Title)
	if lat, long, ok := p.Coordinates(); ok {
		fmt.Fprintf(&b, " (lat=%s, lon=%s)", lat, long)
	}
	return b.String()
}

// indent is the unit of indentation used by entity String renderings.
const indent = "  "

// indentLines prefixes every line of s with the given prefix.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
