package parse

// Many0 applies p until it fails and returns the values in input order.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(c Cursor) ([]T, Cursor, error) {
		var out []T
		rest := c
		for {
			v, next, err := p.Parse(rest)
			if err != nil {
				if isFatal(err) {
					return nil, c, err
				}
				return out, rest, nil
			}
			if next.Offset() == rest.Offset() {
				return out, rest, nil
			}
			out = append(out, v)
			rest = next
		}
	})
}

// Many1 is Many0 but fails with EmptyList when p matches nothing.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many0(p)
	return Func[[]T](func(c Cursor) ([]T, Cursor, error) {
		first, rest, err := p.Parse(c)
		if err != nil {
			return nil, c, emptyList(c, err)
		}
		more, rest, err := many.Parse(rest)
		if err != nil {
			return nil, c, err
		}
		return append([]T{first}, more...), rest, nil
	})
}

// Count applies p exactly n times.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return Func[[]T](func(c Cursor) ([]T, Cursor, error) {
		out := make([]T, 0, n)
		rest := c
		for range n {
			v, next, err := p.Parse(rest)
			if err != nil {
				return nil, c, err
			}
			out = append(out, v)
			rest = next
		}
		return out, rest, nil
	})
}

// SeparatedList1 parses one or more p separated by sep. A separator that is
// not followed by an element is left unconsumed.
func SeparatedList1[S, T any](sep Parser[S], p Parser[T]) Parser[[]T] {
	return Func[[]T](func(c Cursor) ([]T, Cursor, error) {
		first, rest, err := p.Parse(c)
		if err != nil {
			return nil, c, emptyList(c, err)
		}
		out := []T{first}
		for {
			_, afterSep, err := sep.Parse(rest)
			if err != nil {
				if isFatal(err) {
					return nil, c, err
				}
				break
			}
			v, next, err := p.Parse(afterSep)
			if err != nil {
				if isFatal(err) {
					return nil, c, err
				}
				break
			}
			if next.Offset() == rest.Offset() {
				break
			}
			out = append(out, v)
			rest = next
		}
		return out, rest, nil
	})
}

func emptyList(at Cursor, cause error) error {
	if isFatal(cause) {
		return cause
	}
	return failWith(EmptyList, at, "no elements", cause)
}
