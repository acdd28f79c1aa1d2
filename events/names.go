// Package events maps the descriptive trace event names of the RTI/federate
// protocol to the short message tags drawn on arrows.
package events

import "sort"

// Unidentified is the tag returned for any event description not in a table.
const Unidentified = "UNIDENTIFIED"

// Table is an immutable mapping from event description to message tag.
// A Table is safe for concurrent use.
type Table struct {
	tags map[string]string
}

var defaultTable = New(map[string]string{
	"Federate sends TIMESTAMP to RTI":         "TIMESTAMP",
	"Federate sends NET to RTI":               "NET",
	"Federate sends LTC to RTI":               "LTC",
	"Federate sends STOP_REQ to RTI":          "STOP_REQ",
	"Federate sends STOP_REQ_REP to RTI":      "STOP_REQ_REP",
	"Federate receives ACK from RTI":          "ACK",
	"Federate receives REJECT from RTI":       "REJECT",
	"Federate receives TIMESTAMP from RTI":    "TIMESTAMP",
	"Federate receives PTAG from RTI":         "PTAG",
	"Federate receives TAG from RTI":          "TAG",
	"Federate receives STOP_REQ from RTI":     "STOP_REQ",
	"Federate receives STOP_GRN from RTI":     "STOP_GRN",
	"Federate sends FED_ID to federate":       "FED_ID",
	"Federate receives FED_ID from federate":  "FED_ID",
	"RTI sends ACK to federate":               "ACK",
	"RTI sends REJECT to federate":            "REJECT",
	"RTI sends TIMESTAMP to federate":         "TIMESTAMP",
	"RTI sends PTAG to federate":              "PTAG",
	"RTI sends TAG to federate":               "TAG",
	"RTI sends STOP_REQ to federate":          "STOP_REQ",
	"RTI sends STOP_GRN to federate":          "STOP_GRN",
	"RTI sends JOIN to federate":              "JOIN",
	"RTI receives TIMESTAMP from federate":    "TIMESTAMP",
	"RTI receives NET from federate":          "NET",
	"RTI receives LTC from federate":          "LTC",
	"RTI receives STOP_REQ from federate":     "STOP_REQ",
	"RTI receives STOP_REQ_REP from federate": "STOP_REQ_REP",
})

// Default returns the table for the RTI/federate coordination protocol.
func Default() *Table {
	return defaultTable
}

// Canonicalize returns the tag for name in the default table.
func Canonicalize(name string) string {
	return defaultTable.Canonicalize(name)
}

// New builds a table for another protocol. The map is copied.
func New(tags map[string]string) *Table {
	t := &Table{tags: make(map[string]string, len(tags))}
	for name, tag := range tags {
		t.tags[name] = tag
	}
	return t
}

// Canonicalize returns the tag for name, or Unidentified.
func (t *Table) Canonicalize(name string) string {
	if tag, ok := t.Lookup(name); ok {
		return tag
	}
	return Unidentified
}

// Lookup returns the tag for name and whether the table knows it.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	tag, ok := t.tags[name]
	return tag, ok
}

// Merge returns a new table holding t's entries overlaid with extra.
func (t *Table) Merge(extra map[string]string) *Table {
	var base map[string]string
	if t != nil {
		base = t.tags
	}
	merged := New(base)
	for name, tag := range extra {
		merged.tags[name] = tag
	}
	return merged
}

// Len returns the number of known event descriptions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tags)
}

// Names returns the known event descriptions in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.tags))
	for name := range t.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
