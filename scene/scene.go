// Package scene describes a laid-out federated sequence diagram: a canvas
// size and the ordered elements to draw on it. Computing positions from a
// trace is the caller's job; a scene only carries the results.
package scene

import (
	"errors"
	"fmt"

	"fedsd/config"
	"fedsd/core"
	"fedsd/events"
)

// Scene is a canvas and the elements drawn on it, in painting order.
type Scene struct {
	Width    float64   `json:"width" yaml:"width" toml:"width"`
	Height   float64   `json:"height" yaml:"height" toml:"height"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Elements []Element `json:"elements" yaml:"elements" toml:"elements"`
}

// Element is exactly one of a comment, a message arrow or a dot.
type Element struct {
	Comment *string   `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
	Arrow   *Message  `json:"arrow,omitempty" yaml:"arrow,omitempty" toml:"arrow,omitempty"`
	Dot     *core.Dot `json:"dot,omitempty" yaml:"dot,omitempty" toml:"dot,omitempty"`
}

// Message is an arrow whose label may be given directly or derived from the
// trace event description through an event table.
type Message struct {
	From   core.Point `json:"from" yaml:"from" toml:"from"`
	To     core.Point `json:"to" yaml:"to" toml:"to"`
	Label  string     `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Event  string     `json:"event,omitempty" yaml:"event,omitempty" toml:"event,omitempty"`
	Dashed bool       `json:"dashed,omitempty" yaml:"dashed,omitempty" toml:"dashed,omitempty"`
}

// Arrow returns the drawable arrow of the message.
func (m Message) Arrow() core.Arrow {
	return core.Arrow{From: m.From, To: m.To, Label: m.Label, Dashed: m.Dashed}
}

// Kind names the element's populated variant, or "" when none or several are set.
func (e Element) Kind() string {
	kind, n := "", 0
	if e.Comment != nil {
		kind, n = "comment", n+1
	}
	if e.Arrow != nil {
		kind, n = "arrow", n+1
	}
	if e.Dot != nil {
		kind, n = "dot", n+1
	}
	if n != 1 {
		return ""
	}
	return kind
}

// NewComment builds a comment element.
func NewComment(text string) Element {
	return Element{Comment: &text}
}

// NewArrow builds a message element.
func NewArrow(m Message) Element {
	return Element{Arrow: &m}
}

// NewDot builds a labelled dot element.
func NewDot(at core.Point, label string) Element {
	return Element{Dot: &core.Dot{At: at, Label: label}}
}

// Parse decodes a scene and validates it.
func Parse(data []byte, format config.Format) (*Scene, error) {
	var s Scene
	if err := config.Decode(data, format, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene file; the format follows its extension.
func Load(path string) (*Scene, error) {
	var s Scene
	if err := config.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the canvas size and that every element has exactly one
// variant. Arrows need a label or an event description.
func (s *Scene) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid scene size: %vx%v", s.Width, s.Height))
	}
	for i, e := range s.Elements {
		switch e.Kind() {
		case "":
			errs = append(errs, fmt.Errorf("element %d: must set exactly one of comment, arrow, dot", i))
		case "arrow":
			if e.Arrow.Label == "" && e.Arrow.Event == "" {
				errs = append(errs, fmt.Errorf("element %d: arrow needs a label or an event", i))
			}
		}
	}
	return errors.Join(errs...)
}

// Resolve returns a copy of the scene in which every arrow without a label
// is labelled with the tag of its event. It also returns, once each and in
// order of appearance, the event descriptions the table did not know.
func (s *Scene) Resolve(table *events.Table) (*Scene, []string) {
	out := *s
	out.Elements = make([]Element, len(s.Elements))

	var unknown []string
	seen := make(map[string]bool)
	for i, e := range s.Elements {
		if e.Arrow != nil {
			m := *e.Arrow
			if m.Label == "" {
				m.Label = table.Canonicalize(m.Event)
				if m.Label == events.Unidentified && !seen[m.Event] {
					seen[m.Event] = true
					unknown = append(unknown, m.Event)
				}
			}
			e.Arrow = &m
		}
		out.Elements[i] = e
	}
	return &out, unknown
}

// Counts tallies elements by kind.
func (s *Scene) Counts() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.Elements {
		counts[e.Kind()]++
	}
	return counts
}
