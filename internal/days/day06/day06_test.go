package day06

import (
	"context"
	"errors"
	"testing"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Time:      7  15   30\nDistance:  9  40  200"

func TestParse(t *testing.T) {
	rs, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, rs)
}

func TestParse_LengthMismatch(t *testing.T) {
	_, err := Parse("Time: 7 15\nDistance: 9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.MalformedRecord), "got %v", err)
}

func TestWays(t *testing.T) {
	tests := []struct {
		race Race
		want uint64
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		{Race{4, 4}, 0},
		{Race{0, 0}, 0},
		{Race{1, 0}, 0},
		{Race{2, 0}, 1},
		{Race{1e10, 1e19}, 7745966693},
		{Race{1 << 40, 1 << 20}, 1<<40 - 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.race.Ways(), "race %+v", tt.race)
	}
}

func TestParts(t *testing.T) {
	rs, err := Parse(sample)
	require.NoError(t, err)

	got, err := Part1(context.Background(), rs)
	require.NoError(t, err)
	assert.Equal(t, "288", got)

	got, err = Part2(context.Background(), rs)
	require.NoError(t, err)
	assert.Equal(t, "71503", got)
}

func TestPart2_Overflow(t *testing.T) {
	_, err := Part2(context.Background(), []Race{{99999999999, 1}, {99999999999, 1}})
	require.Error(t, err)
}

func TestPart1_ProductOverflow(t *testing.T) {
	huge := Race{Duration: 1 << 40, Record: 0}
	_, err := Part1(context.Background(), []Race{huge, huge})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")
}
