package parse

import (
	"fmt"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Uint parses a run of decimal digits into T. It fails with ExpectedDigits
// when there are no digits at the cursor and NumericOverflow when the value
// does not fit in T.
func Uint[T constraints.Unsigned]() Parser[T] {
	limit := uint64(^T(0))
	return Func[T](func(c Cursor) (T, Cursor, error) {
		s, rest, err := Digits.Parse(c)
		if err != nil {
			return 0, c, err
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil || n > limit {
			reason := fmt.Sprintf("%s does not fit in %T", s, T(0))
			return 0, c, failWith(NumericOverflow, c, reason, err)
		}
		return T(n), rest, nil
	})
}

// BigUint parses a run of decimal digits of any length.
func BigUint() Parser[*big.Int] {
	return Func[*big.Int](func(c Cursor) (*big.Int, Cursor, error) {
		s, rest, err := Digits.Parse(c)
		if err != nil {
			return nil, c, err
		}
		n, _ := new(big.Int).SetString(s, 10)
		return n, rest, nil
	})
}

// WhitespaceList parses one or more numbers separated by runs of whitespace.
func WhitespaceList[T constraints.Unsigned]() Parser[[]T] {
	return SeparatedList1(Space1, Uint[T]())
}
