// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scopemap/pkg/types"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix newlines",
			input: "Fruits:\napple\n",
			want:  []string{"Fruits:", "apple"},
		},
		{
			name:  "crlf newlines",
			input: "Fruits:\r\napple\r\n",
			want:  []string{"Fruits:", "apple"},
		},
		{
			name:  "final line without newline",
			input: "Fruits:\napple",
			want:  []string{"Fruits:", "apple"},
		},
		{
			name:  "blank lines are kept",
			input: "a\n\n  \nb\n",
			want:  []string{"a", "", "  ", "b"},
		},
		{
			name:  "bare carriage returns",
			input: "Fruits:\rapple\r",
			want:  []string{"Fruits:", "apple"},
		},
		{
			name:  "mixed terminators",
			input: "a\r\nb\rc\nd\ve\ff\x1cg\x1dh\x1ei\u0085j\u2028k\u2029l",
			want:  []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
		},
		{
			name:  "consecutive carriage returns give an empty line",
			input: "a\r\rb",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "multibyte text is not split",
			input: "événements:\nclic\n",
			want:  []string{"événements:", "clic"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinesTooLong(t *testing.T) {
	_, err := Lines(strings.NewReader(strings.Repeat("x", maxLineSize+1)))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestMarkdownLines(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "events.md"))
	require.NoError(t, err)

	got := MarkdownLines(data)
	assert.Equal(t, []string{
		"Reference list of DOM events.",
		"Mouse events:",
		"click",
		"dblclick",
		"contextmenu",
		"Keyboard events:",
		"keydown",
		"keyup",
		"Form events:",
		"submit",
		"reset",
		"input",
	}, got)
}

func TestMarkdownLinesMultilineParagraph(t *testing.T) {
	got := MarkdownLines([]byte("# Window\n\nload\nunload\nresize\n"))
	assert.Equal(t, []string{"Window:", "load", "unload", "resize"}, got)
}

func TestMarkdownLinesEmpty(t *testing.T) {
	assert.Empty(t, MarkdownLines(nil))
}

func TestRead(t *testing.T) {
	doc := "# Mouse\n\n- click\n"

	plain, err := Read(strings.NewReader(doc), types.SourcePlain)
	require.NoError(t, err)
	assert.Equal(t, []string{"# Mouse", "", "- click"}, plain)

	def, err := Read(strings.NewReader(doc), "")
	require.NoError(t, err)
	assert.Equal(t, plain, def)

	md, err := Read(strings.NewReader(doc), types.SourceMarkdown)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mouse:", "click"}, md)
}

func TestReadUnknownFormat(t *testing.T) {
	_, err := Read(strings.NewReader("x"), "rst")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), `"rst"`)
}

func TestLinesCarriageReturnAcrossReads(t *testing.T) {
	// One byte per Read puts \r and \n in separate buffers.
	got, err := Lines(iotest.OneByteReader(strings.NewReader("Fruits:\r\napple\rpear\u2028plum")))
	require.NoError(t, err)
	assert.Equal(t, []string{"Fruits:", "apple", "pear", "plum"}, got)
}
