// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConfigDefaults(t *testing.T) {
	var cfg ExtractConfig
	cfg.Defaults()
	assert.Equal(t, ExtractConfig{Format: SourcePlain, Output: OutputText, View: ViewKeys}, cfg)

	cfg = ExtractConfig{Format: SourceMarkdown, Output: OutputYAML, View: ViewGroups, SkipBlank: true}
	cfg.Defaults()
	assert.Equal(t, ExtractConfig{Format: SourceMarkdown, Output: OutputYAML, View: ViewGroups, SkipBlank: true}, cfg)
}
