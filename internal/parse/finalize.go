package parse

import "errors"

// Finalize converts the raw outcome of running a parser into the value or a
// single *Error. A successful outcome that left input unconsumed is a
// TrailingInput error. what names the document for error messages.
func Finalize[T any](what string, v T, rest Cursor, err error) (T, error) {
	var zero T
	if err == nil {
		if rest.AtEOF() {
			return v, nil
		}
		err = fail(TrailingInput, rest, "end of input")
	}
	return zero, convert(what, err)
}

// Parse runs p over input and finalizes the outcome.
func Parse[T any](what string, p Parser[T], input string) (T, error) {
	v, rest, err := p.Parse(NewCursor(input))
	return Finalize(what, v, rest, err)
}

func convert(what string, err error) *Error {
	var f *failure
	if !errors.As(err, &f) {
		return &Error{What: what, Kind: MalformedRecord, Reason: err.Error(), Err: err}
	}
	pos := f.at.Position()
	e := &Error{
		What:     what,
		Kind:     f.kind,
		Offset:   f.at.Offset(),
		Line:     pos.Line,
		Column:   pos.Column,
		Expected: f.expected,
		Near:     clip(f.at.Rest()),
		Reason:   f.reason,
	}
	if f.cause != nil {
		var inner *failure
		if errors.As(f.cause, &inner) {
			e.Err = convert("", f.cause)
		} else {
			e.Err = f.cause
		}
	}
	return e
}
