package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize_Success(t *testing.T) {
	v, err := Finalize("n", 42, NewCursor(""), nil)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFinalize_TrailingInput(t *testing.T) {
	rest := NewCursor("12 tail").Advance(2)
	v, err := Finalize("n", 12, rest, nil)
	assert.Equal(t, 0, v, "no partial value on failure")

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TrailingInput, pe.Kind)
	assert.Equal(t, " tail", pe.Near)
	assert.Equal(t, 2, pe.Offset)
	assert.Equal(t, "n", pe.What)
}

func TestFinalize_ForeignError(t *testing.T) {
	cause := errors.New("boom")
	_, err := Finalize("n", 0, NewCursor(""), cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, MalformedRecord)
}

func TestError_Message(t *testing.T) {
	p := SeparatedPair(Tag("a"), Tag("\n"), Tag("b"))
	_, err := Parse("doc", p, "a\nc")
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 1, pe.Column)
	assert.Equal(t, 2, pe.Offset)
	assert.Equal(t, `parse doc: line 2, col 1: unexpected token: expected "b", near "c"`, err.Error())
}

func TestError_LongRemainderIsClipped(t *testing.T) {
	_, err := Parse("doc", Tag("x"), "abcdefghijklmnopqrstuvwxyz0123456789")
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Len(t, pe.Near, snippetLen)
	assert.NotContains(t, err.Error(), "0123456789")
}
