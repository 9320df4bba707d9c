package parse

// Pair holds the two values of SeparatedPair.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map transforms the value produced by p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Func[U](func(c Cursor) (U, Cursor, error) {
		v, rest, err := p.Parse(c)
		if err != nil {
			var zero U
			return zero, c, err
		}
		return f(v), rest, nil
	})
}

// MapErr transforms the value produced by p with a conversion that may fail.
// A conversion error becomes a MalformedRecord failure at the start of p.
func MapErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return Func[U](func(c Cursor) (U, Cursor, error) {
		var zero U
		v, rest, err := p.Parse(c)
		if err != nil {
			return zero, c, err
		}
		u, err := f(v)
		if err != nil {
			return zero, c, failWith(MalformedRecord, c, err.Error(), nil)
		}
		return u, rest, nil
	})
}

// Value replaces the value produced by p with v.
func Value[T, V any](p Parser[T], v V) Parser[V] {
	return Map(p, func(T) V { return v })
}

// Verify fails with MalformedRecord when pred rejects the value of p.
func Verify[T any](p Parser[T], reason string, pred func(T) bool) Parser[T] {
	return Func[T](func(c Cursor) (T, Cursor, error) {
		var zero T
		v, rest, err := p.Parse(c)
		if err != nil {
			return zero, c, err
		}
		if !pred(v) {
			return zero, c, failWith(MalformedRecord, c, reason, nil)
		}
		return v, rest, nil
	})
}

// Alt tries each parser in order and returns the first success. If all
// fail, the failure of the last alternative is returned. A fatal failure
// stops the search immediately.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(c Cursor) (T, Cursor, error) {
		var zero T
		last := fail(UnexpectedToken, c, "an alternative")
		for _, p := range ps {
			v, rest, err := p.Parse(c)
			if err == nil {
				return v, rest, nil
			}
			if isFatal(err) {
				return zero, c, err
			}
			last = err
		}
		return zero, c, last
	})
}

// Opt returns def when p fails without a fatal error.
func Opt[T any](p Parser[T], def T) Parser[T] {
	return Func[T](func(c Cursor) (T, Cursor, error) {
		v, rest, err := p.Parse(c)
		if err == nil {
			return v, rest, nil
		}
		if isFatal(err) {
			return def, c, err
		}
		return def, c, nil
	})
}

// Seq2 runs a then b and combines their values with f.
func Seq2[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	return Func[R](func(c Cursor) (R, Cursor, error) {
		var zero R
		va, rest, err := a.Parse(c)
		if err != nil {
			return zero, c, err
		}
		vb, rest, err := b.Parse(rest)
		if err != nil {
			return zero, c, err
		}
		return f(va, vb), rest, nil
	})
}

// Seq3 runs a, b and c in order and combines their values with f.
func Seq3[A, B, C, R any](a Parser[A], b Parser[B], c Parser[C], f func(A, B, C) R) Parser[R] {
	return Func[R](func(cur Cursor) (R, Cursor, error) {
		var zero R
		va, rest, err := a.Parse(cur)
		if err != nil {
			return zero, cur, err
		}
		vb, rest, err := b.Parse(rest)
		if err != nil {
			return zero, cur, err
		}
		vc, rest, err := c.Parse(rest)
		if err != nil {
			return zero, cur, err
		}
		return f(va, vb, vc), rest, nil
	})
}

// Seq4 runs four parsers in order and combines their values with f.
func Seq4[A, B, C, D, R any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], f func(A, B, C, D) R) Parser[R] {
	ab := Seq2(a, b, func(va A, vb B) Pair[A, B] { return Pair[A, B]{va, vb} })
	cd := Seq2(c, d, func(vc C, vd D) Pair[C, D] { return Pair[C, D]{vc, vd} })
	return Seq2(ab, cd, func(x Pair[A, B], y Pair[C, D]) R {
		return f(x.First, x.Second, y.First, y.Second)
	})
}

// Seq5 runs five parsers in order and combines their values with f.
func Seq5[A, B, C, D, E, R any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E], f func(A, B, C, D, E) R) Parser[R] {
	abcd := Seq4(a, b, c, d, func(va A, vb B, vc C, vd D) func(E) R {
		return func(ve E) R { return f(va, vb, vc, vd, ve) }
	})
	return Seq2(abcd, e, func(g func(E) R, ve E) R { return g(ve) })
}

// Preceded runs pre then p and keeps the value of p.
func Preceded[P, T any](pre Parser[P], p Parser[T]) Parser[T] {
	return Seq2(pre, p, func(_ P, v T) T { return v })
}

// Terminated runs p then post and keeps the value of p.
func Terminated[T, S any](p Parser[T], post Parser[S]) Parser[T] {
	return Seq2(p, post, func(v T, _ S) T { return v })
}

// Delimited runs open, p and closing and keeps the value of p.
func Delimited[L, T, R any](open Parser[L], p Parser[T], closing Parser[R]) Parser[T] {
	return Seq3(open, p, closing, func(_ L, v T, _ R) T { return v })
}

// SeparatedPair runs a, sep and b and keeps the values of a and b.
func SeparatedPair[A, S, B any](a Parser[A], sep Parser[S], b Parser[B]) Parser[Pair[A, B]] {
	return Seq3(a, sep, b, func(va A, _ S, vb B) Pair[A, B] { return Pair[A, B]{va, vb} })
}

// Located is a value together with where it was matched.
type Located[T any] struct {
	Value T
	Pos   Position
	Len   int // bytes consumed
}

// Locate records the position and length of each match of p.
func Locate[T any](p Parser[T]) Parser[Located[T]] {
	return Func[Located[T]](func(c Cursor) (Located[T], Cursor, error) {
		v, rest, err := p.Parse(c)
		if err != nil {
			return Located[T]{}, c, err
		}
		return Located[T]{Value: v, Pos: c.Position(), Len: rest.Offset() - c.Offset()}, rest, nil
	})
}

// AllConsuming fails with TrailingInput if p succeeds without consuming the
// rest of the input.
func AllConsuming[T any](p Parser[T]) Parser[T] {
	return Func[T](func(c Cursor) (T, Cursor, error) {
		var zero T
		v, rest, err := p.Parse(c)
		if err != nil {
			return zero, c, err
		}
		if !rest.AtEOF() {
			return zero, c, fail(TrailingInput, rest, "end of input")
		}
		return v, rest, nil
	})
}
