package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser consumes a prefix of the input at c and returns the parsed value and
// the cursor after it. On failure the returned cursor is c.
type Parser[T any] interface {
	Parse(c Cursor) (T, Cursor, error)
}

// Func adapts an ordinary function to a Parser.
type Func[T any] func(c Cursor) (T, Cursor, error)

func (f Func[T]) Parse(c Cursor) (T, Cursor, error) {
	return f(c)
}

// Tag matches the literal lit exactly.
func Tag(lit string) Parser[string] {
	expected := strconv.Quote(lit)
	return Func[string](func(c Cursor) (string, Cursor, error) {
		if !strings.HasPrefix(c.Rest(), lit) {
			return "", c, fail(UnexpectedToken, c, expected)
		}
		return lit, c.Advance(len(lit)), nil
	})
}

// Char matches a single character drawn from set.
func Char(set string) Parser[rune] {
	expected := "one of " + strconv.Quote(set)
	return Func[rune](func(c Cursor) (rune, Cursor, error) {
		r, size := utf8.DecodeRuneInString(c.Rest())
		if size == 0 || !strings.ContainsRune(set, r) {
			return 0, c, fail(UnexpectedToken, c, expected)
		}
		return r, c.Advance(size), nil
	})
}

// NoneOf matches a single character not in set.
func NoneOf(set string) Parser[rune] {
	expected := "a character other than " + strconv.Quote(set)
	return Func[rune](func(c Cursor) (rune, Cursor, error) {
		r, size := utf8.DecodeRuneInString(c.Rest())
		if size == 0 || strings.ContainsRune(set, r) {
			return 0, c, fail(UnexpectedToken, c, expected)
		}
		return r, c.Advance(size), nil
	})
}

// Take consumes exactly n characters regardless of their content.
func Take(n int) Parser[string] {
	return Func[string](func(c Cursor) (string, Cursor, error) {
		rest := c.Rest()
		end := 0
		for i := 0; i < n; i++ {
			_, size := utf8.DecodeRuneInString(rest[end:])
			if size == 0 {
				return "", c, fail(InsufficientInput, c, fmt.Sprintf("%d characters", n))
			}
			end += size
		}
		return rest[:end], c.Advance(end), nil
	})
}

// TakeWhile1 consumes the longest non-empty run of characters satisfying
// pred. name describes the run in error messages.
func TakeWhile1(name string, pred func(rune) bool) Parser[string] {
	return takeWhile1(UnexpectedToken, name, pred)
}

func takeWhile1(kind Kind, name string, pred func(rune) bool) Parser[string] {
	return Func[string](func(c Cursor) (string, Cursor, error) {
		n := span(c.Rest(), pred)
		if n == 0 {
			return "", c, fail(kind, c, name)
		}
		return c.Rest()[:n], c.Advance(n), nil
	})
}

func span(s string, pred func(rune) bool) int {
	for i, r := range s {
		if !pred(r) {
			return i
		}
	}
	return len(s)
}

// IsA consumes the longest non-empty run of characters drawn from set.
func IsA(set string) Parser[string] {
	return TakeWhile1("characters from "+strconv.Quote(set), func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// TakeUntil consumes input up to, but not including, the first occurrence of
// lit. It fails if lit does not occur.
func TakeUntil(lit string) Parser[string] {
	expected := "text followed by " + strconv.Quote(lit)
	return Func[string](func(c Cursor) (string, Cursor, error) {
		i := strings.Index(c.Rest(), lit)
		if i < 0 {
			return "", c, fail(UnexpectedToken, c, expected)
		}
		return c.Rest()[:i], c.Advance(i), nil
	})
}

var (
	// Digits is a non-empty run of ASCII decimal digits.
	Digits = takeWhile1(ExpectedDigits, "digits", isDigit)

	// Alpha1 is a non-empty run of letters.
	Alpha1 = TakeWhile1("letters", unicode.IsLetter)

	// Space1 is a non-empty run of whitespace, newlines included.
	Space1 = TakeWhile1("whitespace", unicode.IsSpace)

	// Space0 is a possibly empty run of whitespace.
	Space0 Parser[string] = Func[string](func(c Cursor) (string, Cursor, error) {
		n := span(c.Rest(), unicode.IsSpace)
		return c.Rest()[:n], c.Advance(n), nil
	})
)

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
