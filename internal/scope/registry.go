// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"go.yaml.in/yaml/v3"
)

// Entry is one registry key with its scope.
type Entry struct {
	Text  string `json:"text" yaml:"text"`
	Scope Scope  `json:"scope" yaml:"scope"`
}

// Group lists the entries currently mapped to one scope, in registry order.
type Group struct {
	Scope   Scope    `json:"scope" yaml:"scope"`
	Entries []string `json:"entries" yaml:"entries"`
}

// Registry is an insertion-ordered map from entry text to scope. Setting an
// existing key replaces its scope and keeps its position. The registry also
// remembers every heading it has seen, in reading order, including headings
// whose entries were all overwritten later. The zero value is ready to use.
type Registry struct {
	keys     []string
	scopes   map[string]Scope
	headings []Scope
	seen     map[Scope]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scopes: make(map[string]Scope),
		seen:   make(map[Scope]bool),
	}
}

// Set records entry under s, overwriting any earlier scope. A defined scope
// not seen before is also recorded as a heading.
func (r *Registry) Set(entry string, s Scope) {
	if r.scopes == nil {
		r.scopes = make(map[string]Scope)
	}
	r.AddHeading(s)
	if _, ok := r.scopes[entry]; !ok {
		r.keys = append(r.keys, entry)
	}
	r.scopes[entry] = s
}

// AddHeading records s as a heading in reading order. Repeated headings and
// the undefined scope are ignored.
func (r *Registry) AddHeading(s Scope) {
	if !s.Defined || r.seen[s] {
		return
	}
	if r.seen == nil {
		r.seen = make(map[Scope]bool)
	}
	r.seen[s] = true
	r.headings = append(r.headings, s)
}

// Headings returns the distinct headings in the order they were first read.
func (r *Registry) Headings() []Scope {
	out := make([]Scope, len(r.headings))
	copy(out, r.headings)
	return out
}

// Lookup returns the scope recorded for entry. The boolean is false when the
// entry was never read.
func (r *Registry) Lookup(entry string) (Scope, bool) {
	s, ok := r.scopes[entry]
	return s, ok
}

// Len returns the number of distinct entries.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Keys returns the distinct entries in first-seen order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// All iterates entries and their scopes in registry order.
func (r *Registry) All() iter.Seq2[string, Scope] {
	return func(yield func(string, Scope) bool) {
		for _, k := range r.keys {
			if !yield(k, r.scopes[k]) {
				return
			}
		}
	}
}

// Entries returns the registry as a slice in registry order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.keys))
	for k, s := range r.All() {
		out = append(out, Entry{Text: k, Scope: s})
	}
	return out
}

// Groups inverts the registry. Groups appear in the order their scope is
// first used by an entry, and each group lists its entries in registry order.
func (r *Registry) Groups() []Group {
	var groups []Group
	index := make(map[Scope]int)
	for k, s := range r.All() {
		i, ok := index[s]
		if !ok {
			i = len(groups)
			index[s] = i
			groups = append(groups, Group{Scope: s})
		}
		groups[i].Entries = append(groups[i].Entries, k)
	}
	return groups
}

// MarshalJSON encodes the registry as a JSON object whose members keep
// registry order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", k, err)
		}
		val, err := json.Marshal(r.scopes[k])
		if err != nil {
			return nil, fmt.Errorf("encoding scope of %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the registry as a YAML mapping in registry order.
func (r *Registry) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, s := range r.All() {
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if s.Defined {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Label}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}
	return node, nil
}
