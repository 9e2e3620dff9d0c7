// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source turns an input document into the ordered lines that scope
// extraction consumes.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/scopemap/pkg/types"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ErrUnknownFormat is returned by Read for a format it does not support.
var ErrUnknownFormat = errors.New("unknown source format")

// Read splits r into lines according to format.
func Read(r io.Reader, format types.SourceFormat) ([]string, error) {
	switch format {
	case types.SourcePlain, "":
		return Lines(r)
	case types.SourceMarkdown:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading markdown: %w", err)
		}
		return MarkdownLines(data), nil
	default:
		return nil, fmt.Errorf("%w %q: use plain or markdown", ErrUnknownFormat, format)
	}
}

// Lines splits r into lines. Any of \n, \r\n, a bare \r, \v, \f, the
// separators \x1c-\x1e, NEL (U+0085), LINE SEPARATOR (U+2028), and PARAGRAPH
// SEPARATOR (U+2029) ends a line. A final line without a terminator is kept.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines is a bufio.SplitFunc that breaks on every line terminator Lines
// accepts and drops the terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return 0, nil, nil
		}
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				// Need the next byte to tell \r from \r\n.
				return 0, nil, nil
			}
			return i + 1, data[:i], nil
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return i + size, data[:i], nil
		}
		i += size
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// MarkdownLines parses src as Markdown and flattens it into lines. Headings
// become scope lines ending in a colon. Paragraphs, list items, and code blocks
// contribute one line per source line. HTML blocks and thematic breaks are
// dropped.
func MarkdownLines(src []byte) []string {
	root := goldmark.DefaultParser().Parse(text.NewReader(src))

	var lines []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.Heading:
			lines = append(lines, headingLine(n, src))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock, *ast.CodeBlock, *ast.FencedCodeBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				lines = append(lines, strings.TrimRight(string(seg.Value(src)), "\r\n"))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return lines
}

// headingLine joins the source lines of a heading and appends a colon unless
// the heading already ends with one.
func headingLine(n ast.Node, src []byte) string {
	segs := n.Lines()
	parts := make([]string, 0, segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
	}
	label := strings.Join(parts, " ")
	if !strings.HasSuffix(label, ":") {
		label += ":"
	}
	return label
}
