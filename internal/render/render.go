// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes a scope registry to an output sink as text, JSON, or
// YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scopemap/internal/scope"
	"github.com/pdiddy/scopemap/pkg/types"
)

// Placeholders used by the text format for entries read before any heading.
const (
	noScopeCell  = "-"
	noScopeGroup = "(no scope)"
)

var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownView is returned for an unsupported view.
	ErrUnknownView = errors.New("unknown view")
)

// Options selects what is rendered and how.
type Options struct {
	Format types.OutputFormat
	View   types.OutputView
}

// Validate reports an unsupported format or view without rendering.
func (o Options) Validate() error {
	if err := checkFormat(o.Format); err != nil {
		return err
	}
	switch o.View {
	case types.ViewKeys, types.ViewMapping, types.ViewGroups, "":
		return nil
	}
	return fmt.Errorf("%w %q: use keys, mapping, or groups", ErrUnknownView, o.View)
}

func checkFormat(f types.OutputFormat) error {
	switch f {
	case types.OutputText, types.OutputJSON, types.OutputYAML, "":
		return nil
	}
	return fmt.Errorf("%w %q: use text, json, or yaml", ErrUnknownFormat, f)
}

// Render writes reg to w. Empty Format and View default to text and keys.
func Render(w io.Writer, reg *scope.Registry, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	switch opts.Format {
	case types.OutputText, "":
		return renderText(w, reg, opts.View)
	default:
		return encode(w, viewValue(reg, opts.View), opts.Format)
	}
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, v any, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return checkFormat(format)
	}
}

// viewValue returns the value encoded for a validated view by the structured
// formats.
func viewValue(reg *scope.Registry, view types.OutputView) any {
	switch view {
	case types.ViewMapping:
		return reg
	case types.ViewGroups:
		groups := reg.Groups()
		if groups == nil {
			groups = []scope.Group{}
		}
		return groups
	default:
		return reg.Keys()
	}
}

// ScopeCount is the number of distinct entries recorded under one scope.
type ScopeCount struct {
	Scope   scope.Scope `json:"scope" yaml:"scope"`
	Entries int         `json:"entries" yaml:"entries"`
}

// Counts writes every heading of reg in reading order with the number of
// entries currently recorded under it, which is zero for a heading whose
// entries were all claimed by later headings. Entries read before any heading
// are counted first, under the undefined scope, when there are any.
func Counts(w io.Writer, reg *scope.Registry, format types.OutputFormat) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	perScope := make(map[scope.Scope]int)
	for _, s := range reg.All() {
		perScope[s]++
	}

	headings := reg.Headings()
	counts := make([]ScopeCount, 0, len(headings)+1)
	if n := perScope[scope.Undefined]; n > 0 {
		counts = append(counts, ScopeCount{Scope: scope.Undefined, Entries: n})
	}
	for _, h := range headings {
		counts = append(counts, ScopeCount{Scope: h, Entries: perScope[h]})
	}

	if format != types.OutputText && format != "" {
		return encode(w, counts, format)
	}
	for _, c := range counts {
		label := noScopeGroup
		if c.Scope.Defined {
			label = c.Scope.Label
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\n", label, c.Entries); err != nil {
			return err
		}
	}
	return nil
}

func renderText(w io.Writer, reg *scope.Registry, view types.OutputView) error {
	switch view {
	case types.ViewMapping:
		for k, s := range reg.All() {
			label := noScopeCell
			if s.Defined {
				label = s.Label
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", k, label); err != nil {
				return err
			}
		}
	case types.ViewGroups:
		for _, g := range reg.Groups() {
			label := noScopeGroup
			if g.Scope.Defined {
				label = g.Scope.Label
			}
			if _, err := fmt.Fprintln(w, label); err != nil {
				return err
			}
			for _, e := range g.Entries {
				if _, err := fmt.Fprintf(w, "  %s\n", e); err != nil {
					return err
				}
			}
		}
	default:
		for _, k := range reg.Keys() {
			if _, err := fmt.Fprintln(w, k); err != nil {
				return err
			}
		}
	}
	return nil
}
