package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind classifies a parse failure. A Kind is itself an error so it can be
// matched with errors.Is against any error returned by Parse or Finalize.
type Kind int

const (
	// ExpectedDigits: the cursor does not begin with a numeric token.
	ExpectedDigits Kind = iota + 1
	// NumericOverflow: a numeric token exceeds the target type's range.
	NumericOverflow
	// UnexpectedToken: a required literal or alternative was not found.
	UnexpectedToken
	// EmptyList: a one-or-more repetition matched nothing.
	EmptyList
	// TrailingInput: the grammar succeeded without consuming all input.
	TrailingInput
	// MalformedRecord: a structural check failed after the sub-parses succeeded.
	MalformedRecord
	// InsufficientInput: fewer characters remain than a fixed-width take needs.
	InsufficientInput
)

var kindNames = map[Kind]string{
	ExpectedDigits:    "expected digits",
	NumericOverflow:   "numeric overflow",
	UnexpectedToken:   "unexpected token",
	EmptyList:         "empty list",
	TrailingInput:     "trailing input",
	MalformedRecord:   "malformed record",
	InsufficientInput: "insufficient input",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) Error() string {
	return k.String()
}

// fatal kinds are not backtracked over by Alt or repetition.
func (k Kind) fatal() bool {
	return k == NumericOverflow || k == MalformedRecord
}

// failure is the in-flight error produced while a grammar runs. It is
// converted to *Error by Finalize and does not leave this package otherwise.
type failure struct {
	kind     Kind
	at       Cursor
	expected string
	reason   string
	cause    error
}

func (f *failure) Error() string {
	return describe(f.kind, f.expected, f.reason, f.at.Rest())
}

func (f *failure) Unwrap() []error {
	if f.cause != nil {
		return []error{f.kind, f.cause}
	}
	return []error{f.kind}
}

func fail(kind Kind, at Cursor, expected string) error {
	return &failure{kind: kind, at: at, expected: expected}
}

func failWith(kind Kind, at Cursor, reason string, cause error) error {
	return &failure{kind: kind, at: at, reason: reason, cause: cause}
}

func isFatal(err error) bool {
	var f *failure
	return errors.As(err, &f) && f.kind.fatal()
}

// Error is the caller-facing parse error.
type Error struct {
	What     string // what was being parsed, e.g. "almanac"
	Kind     Kind
	Offset   int // byte offset where parsing stopped
	Line     int
	Column   int
	Expected string // expected literal or token class, if known
	Near     string // start of the unconsumed input at Offset
	Reason   string
	Err      error // underlying cause, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.What != "" {
		b.WriteString("parse " + e.What + ": ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d, col %d: ", e.Line, e.Column)
	}
	b.WriteString(describe(e.Kind, e.Expected, e.Reason, e.Near))
	if e.Err != nil {
		b.WriteString(" (" + e.Err.Error() + ")")
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func describe(kind Kind, expected, reason, near string) string {
	msg := kind.String()
	if reason != "" {
		msg += ": " + reason
	}
	if expected != "" {
		msg += ": expected " + expected
	}
	return msg + ", near " + snippet(near)
}

const snippetLen = 24

// clip shortens s to at most snippetLen bytes on a rune boundary.
func clip(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	cut := snippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func snippet(s string) string {
	if s == "" {
		return "end of input"
	}
	if c := clip(s); c != s {
		return strconv.Quote(c) + "..."
	}
	return strconv.Quote(s)
}
