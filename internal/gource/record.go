package gource

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Record is one Gource custom-log entry.
type Record struct {
	Timestamp int64
	Name      string
	Marker    Marker
	Path      string
}

// String renders the record as a pipe-delimited log line (no trailing
// newline).
func (r Record) String() string {
	return fmt.Sprintf("%d|%s|%s|%s", r.Timestamp, r.Name, r.Marker, r.Path)
}

// ParseRecord parses a pipe-delimited log line back into a Record.
func ParseRecord(line string) (Record, error) {
	fields := strings.SplitN(line, "|", 4)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("malformed record %q: want 4 pipe-delimited fields", line)
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("malformed record %q: bad timestamp: %v", line, err)
	}
	return Record{
		Timestamp: ts,
		Name:      fields[1],
		Marker:    Marker(fields[2]),
		Path:      fields[3],
	}, nil
}

// sortRecords orders records ascending by the full
// (timestamp, name, marker, path) tuple.
func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Marker != b.Marker {
			return a.Marker < b.Marker
		}
		return a.Path < b.Path
	})
}
