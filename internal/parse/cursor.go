package parse

import (
	"strings"
	"unicode/utf8"
)

// Cursor is the unconsumed remainder of an input buffer. Advancing returns a
// new Cursor; the receiver is never modified.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// Rest returns the unconsumed input.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Offset is the byte offset of the cursor from the start of the input.
func (c Cursor) Offset() int {
	return c.off
}

// AtEOF reports whether all input has been consumed.
func (c Cursor) AtEOF() bool {
	return c.off >= len(c.src)
}

// Advance moves the cursor n bytes forward, stopping at the end of input.
func (c Cursor) Advance(n int) Cursor {
	if remaining := len(c.src) - c.off; n > remaining {
		n = remaining
	}
	return Cursor{src: c.src, off: c.off + n}
}

// Position is a 1-based line and column (in characters) within the input.
type Position struct {
	Line   int
	Column int
}

// Position computes the line and column of the cursor.
func (c Cursor) Position() Position {
	before := c.src[:c.off]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Line:   strings.Count(before, "\n") + 1,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
