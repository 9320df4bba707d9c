// Package parse is a small parser-combinator toolkit for line-oriented,
// fixed-delimiter text formats.
//
// Grammars are built by composing Parser values: primitives consume tokens
// (digits, literals, fixed-width takes) and combinators sequence, choose and
// repeat them. A grammar is run against the whole input with Parse, which
// insists that every byte is consumed and converts any failure into an *Error
// carrying the position where parsing stopped.
//
//	seeds := parse.Preceded(parse.Tag("seeds: "), parse.WhitespaceList[uint64]())
//	got, err := parse.Parse("seeds", seeds, "seeds: 79 14 55 13")
//
// Alt is ordered choice: alternatives are tried in declaration order and the
// first success wins. NumericOverflow and MalformedRecord failures are never
// backtracked over by Alt or the repetition combinators; they surface where
// they occurred.
package parse
