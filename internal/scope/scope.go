// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scope associates the lines of a document with the heading in
// effect above them.
//
// A line whose trimmed text ends with a colon is a heading and opens a new
// scope. Every other line is an entry and is recorded in a Registry under the
// most recent heading. Entries read before any heading are recorded with the
// undefined Scope.
package scope

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/scopemap/internal/source"
)

// Scope is the heading label in effect when an entry was read. The zero
// value is the undefined scope: no heading had been seen yet.
type Scope struct {
	Label   string
	Defined bool
}

// Undefined is the scope of entries that precede the first heading.
var Undefined = Scope{}

// Named returns the defined scope with the given heading label.
func Named(label string) Scope {
	return Scope{Label: label, Defined: true}
}

// String returns the label, or "<none>" for the undefined scope.
func (s Scope) String() string {
	if !s.Defined {
		return "<none>"
	}
	return s.Label
}

// MarshalJSON encodes the undefined scope as null and a defined scope as its
// label.
func (s Scope) MarshalJSON() ([]byte, error) {
	if !s.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(s.Label)
}

// MarshalYAML encodes the undefined scope as null and a defined scope as its
// label.
func (s Scope) MarshalYAML() (any, error) {
	if !s.Defined {
		return nil, nil
	}
	return s.Label, nil
}

// IsHeading reports whether a trimmed line opens a new scope.
func IsHeading(trimmed string) bool {
	return strings.HasSuffix(trimmed, ":")
}

type options struct {
	skipBlank bool
	isHeading func(string) bool
}

// Option adjusts how Extract classifies lines.
type Option func(*options)

// SkipBlank drops lines that are empty after trimming. Without it they are
// recorded as "" under the current scope.
func SkipBlank() Option {
	return func(o *options) { o.skipBlank = true }
}

// WithHeadingRule replaces IsHeading as the heading test. The rule receives
// the trimmed line. A nil rule is ignored.
func WithHeadingRule(rule func(trimmed string) bool) Option {
	return func(o *options) {
		if rule != nil {
			o.isHeading = rule
		}
	}
}

// Extract makes a single pass over lines and returns the registry of entries
// to the scope that was current when each entry was read. A heading is stored
// as the scope label with its colon and is never an entry. Repeated entries
// keep the scope of their last occurrence.
func Extract(lines []string, opts ...Option) *Registry {
	o := options{isHeading: IsHeading}
	for _, opt := range opts {
		opt(&o)
	}

	current := Undefined
	reg := NewRegistry()
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case o.isHeading(line):
			current = Named(line)
			reg.AddHeading(current)
		case line == "" && o.skipBlank:
		default:
			reg.Set(line, current)
		}
	}
	return reg
}

// ExtractReader splits r into lines and extracts them. Read failures are
// returned; the partially read input is discarded.
func ExtractReader(r io.Reader, opts ...Option) (*Registry, error) {
	lines, err := source.Lines(r)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return Extract(lines, opts...), nil
}
