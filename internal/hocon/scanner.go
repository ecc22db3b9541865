// internal/hocon/scanner.go
package hocon

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// scanner walks the source byte by byte, maintaining an hcl.Pos so every
// produced value can carry an exact source range.
type scanner struct {
	src      string
	filename string
	off      int // byte offset of the next byte
	line     int // 1-based
	col      int // 1-based, in bytes
}

func newScanner(filename, src string) *scanner {
	// A leading BOM is skipped so positions stay aligned with editors.
	src = strings.TrimPrefix(src, "\uFEFF")
	return &scanner{src: src, filename: filename, line: 1, col: 1}
}

// eof reports whether the scanner is exhausted.
func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

// peek returns the next byte without consuming it, or 0 at EOF.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.off]
}

// peekAt returns the byte n positions ahead, or 0 past EOF.
func (s *scanner) peekAt(n int) byte {
	if s.off+n >= len(s.src) {
		return 0
	}
	return s.src[s.off+n]
}

// next consumes and returns one byte, updating the position.
func (s *scanner) next() byte {
	if s.eof() {
		return 0
	}
	b := s.src[s.off]
	s.off++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b
}

// pos returns the current source position.
func (s *scanner) pos() hcl.Pos {
	return hcl.Pos{Line: s.line, Column: s.col, Byte: s.off}
}

// rangeFrom builds a range from a start position to the current one.
func (s *scanner) rangeFrom(start hcl.Pos) hcl.Range {
	return hcl.Range{Filename: s.filename, Start: start, End: s.pos()}
}

// atComment reports whether the scanner sits on a `#` or `//` comment.
func (s *scanner) atComment() bool {
	return s.peek() == '#' || (s.peek() == '/' && s.peekAt(1) == '/')
}

// readCommentLine consumes a comment up to (not including) the newline
// and returns its text with the delimiter stripped.
func (s *scanner) readCommentLine() string {
	if s.peek() == '#' {
		s.next()
	} else {
		s.next()
		s.next()
	}
	start := s.off
	for !s.eof() && s.peek() != '\n' {
		s.next()
	}
	return strings.TrimSuffix(s.src[start:s.off], "\r")
}

// skipInlineSpace consumes spaces and tabs, staying on the current line.
func (s *scanner) skipInlineSpace() {
	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t' || s.peek() == '\r') {
		s.next()
	}
}
