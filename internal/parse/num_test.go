package parse

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint_ConsumesLeadingDigits(t *testing.T) {
	v, rest, err := Uint[uint8]().Parse(NewCursor("255abc"))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)
	assert.Equal(t, "abc", rest.Rest())
}

func TestUint_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		parse func(string) error
		want  Kind
	}{
		{"no digits", "abc", func(s string) error { _, err := Parse("n", Uint[uint32](), s); return err }, ExpectedDigits},
		{"empty", "", func(s string) error { _, err := Parse("n", Uint[uint32](), s); return err }, ExpectedDigits},
		{"uint8 overflow", "256", func(s string) error { _, err := Parse("n", Uint[uint8](), s); return err }, NumericOverflow},
		{"uint32 overflow", "4294967296", func(s string) error { _, err := Parse("n", Uint[uint32](), s); return err }, NumericOverflow},
		{"uint64 overflow", "18446744073709551616", func(s string) error { _, err := Parse("n", Uint[uint64](), s); return err }, NumericOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)

			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.want, pe.Kind)
			assert.Equal(t, 0, pe.Offset)
		})
	}
}

func TestUint_MaxValues(t *testing.T) {
	v8, err := Parse("n", Uint[uint8](), "255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v8)

	v64, err := Parse("n", Uint[uint64](), "18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v64)
}

func TestBigUint(t *testing.T) {
	const huge = "123456789012345678901234567890"
	v, err := Parse("n", BigUint(), huge)
	require.NoError(t, err)
	want, _ := new(big.Int).SetString(huge, 10)
	assert.Equal(t, 0, want.Cmp(v))

	_, err = Parse("n", BigUint(), "x1")
	assert.ErrorIs(t, err, ExpectedDigits)
}

func TestWhitespaceList(t *testing.T) {
	got, err := Parse("nums", WhitespaceList[uint64](), "79 14\t55\n  13")
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 14, 55, 13}, got)
}

func TestWhitespaceList_LengthMatchesTokenCount(t *testing.T) {
	inputs := []string{"1", "1 2", "83 86  6 31 17  9 48 53", "0 0 0 0 0 0 0 0 0 0"}
	for _, in := range inputs {
		got, err := Parse("nums", WhitespaceList[uint8](), in)
		require.NoError(t, err, in)
		fields := splitFields(in)
		require.Len(t, got, len(fields), in)
		for i, f := range fields {
			assert.Equal(t, f, strconv.Itoa(int(got[i])), "token %d of %q", i, in)
		}
	}
}

func splitFields(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func TestWhitespaceList_Empty(t *testing.T) {
	_, err := Parse("nums", WhitespaceList[uint8](), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, EmptyList)
	assert.ErrorIs(t, err, ExpectedDigits, "cause should be preserved")
}

func TestWhitespaceList_TrailingSeparatorLeftUnconsumed(t *testing.T) {
	v, rest, err := WhitespaceList[uint8]().Parse(NewCursor("1 2 |"))
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2}, v)
	assert.Equal(t, " |", rest.Rest())

	_, err = Parse("nums", WhitespaceList[uint8](), "1 2 ")
	assert.ErrorIs(t, err, TrailingInput)
}

func TestWhitespaceList_OverflowIsNotSwallowed(t *testing.T) {
	_, err := Parse("nums", WhitespaceList[uint8](), "1 2 300")
	require.Error(t, err)
	assert.ErrorIs(t, err, NumericOverflow)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Offset)
}

func FuzzUint_RoundTrip(f *testing.F) {
	for _, seed := range []string{"0", "7", "42", "18446744073709551615", "99999999999999999999"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !canonicalDigits(s) {
			t.Skip()
		}
		v, err := Parse("n", Uint[uint64](), s)
		if err != nil {
			if !errors.Is(err, NumericOverflow) {
				t.Fatalf("unexpected error for %q: %v", s, err)
			}
			return
		}
		if got := strconv.FormatUint(v, 10); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
	})
}

func canonicalDigits(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
