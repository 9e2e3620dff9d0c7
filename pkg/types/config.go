// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration shared by the scopemap CLI and its
// packages.
package types

// SourceFormat selects how an input document is split into lines.
type SourceFormat string

const (
	// SourcePlain splits the document on line breaks, with no interpretation.
	SourcePlain SourceFormat = "plain"
	// SourceMarkdown parses the document as Markdown and turns headings
	// into scope lines.
	SourceMarkdown SourceFormat = "markdown"
)

// OutputFormat selects the encoding of rendered output.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// OutputView selects which part of a registry is rendered.
type OutputView string

const (
	// ViewKeys renders only the distinct entry texts.
	ViewKeys OutputView = "keys"
	// ViewMapping renders every entry with its scope.
	ViewMapping OutputView = "mapping"
	// ViewGroups renders entries grouped under their scope.
	ViewGroups OutputView = "groups"
)

// ExtractConfig holds settings for the extract command.
type ExtractConfig struct {
	// Format selects the line source: plain or markdown (default plain).
	Format SourceFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Output selects the output encoding: text, json, or yaml (default text).
	Output OutputFormat `json:"output" yaml:"output" mapstructure:"output"`

	// View selects keys, mapping, or groups (default keys).
	View OutputView `json:"view" yaml:"view" mapstructure:"view"`

	// SkipBlank drops lines that are empty after trimming instead of
	// recording them as empty-string entries.
	SkipBlank bool `json:"skip_blank" yaml:"skip_blank" mapstructure:"skip_blank"`

	// Verbose prints an extraction summary to stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// Defaults fills zero-valued fields with their default settings.
func (c *ExtractConfig) Defaults() {
	if c.Format == "" {
		c.Format = SourcePlain
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.View == "" {
		c.View = ViewKeys
	}
}
