package puzzle

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseInts(data string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(data) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func sum(_ context.Context, ns []int) (string, error) {
	total := 0
	for _, n := range ns {
		total += n
	}
	return strconv.Itoa(total), nil
}

func failing(context.Context, []int) (string, error) {
	return "", errors.New("boom")
}

func TestParsePart(t *testing.T) {
	p, err := ParsePart("2")
	require.NoError(t, err)
	assert.Equal(t, Part2, p)
	assert.Equal(t, "part 2", p.String())

	_, err = ParsePart("3")
	assert.Error(t, err)
}

func TestPuzzle_Solve(t *testing.T) {
	p := New(1, "Sums", parseInts, sum, nil)
	assert.Equal(t, 1, p.Day())
	assert.Equal(t, "Sums", p.Title())
	assert.True(t, p.HasPart(Part1))
	assert.False(t, p.HasPart(Part2))

	got, err := p.Solve(context.Background(), "  1 2 3\n\n", Part1)
	require.NoError(t, err)
	assert.Equal(t, "6", got)

	_, err = p.Solve(context.Background(), "1", Part2)
	assert.ErrorIs(t, err, ErrNoPart)
	assert.Contains(t, err.Error(), "day 1 part 2")
}

func TestPuzzle_SolveErrors(t *testing.T) {
	p := New(2, "Broken", parseInts, sum, failing)

	_, err := p.Solve(context.Background(), "1 x", Part1)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
	assert.True(t, strings.HasPrefix(err.Error(), "day 2: "), err.Error())

	_, err = p.Solve(context.Background(), "1", Part2)
	require.Error(t, err)
	assert.Equal(t, "day 2 part 2: boom", err.Error())
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(New(5, "b", parseInts, sum, nil), New(2, "a", parseInts, sum, nil))
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Day())
	assert.Equal(t, 5, all[1].Day())

	s, ok := r.Get(5)
	require.True(t, ok)
	assert.Equal(t, "b", s.Title())

	_, err = NewRegistry(New(5, "b", parseInts, sum, nil), New(5, "c", parseInts, sum, nil))
	assert.Error(t, err)
}
