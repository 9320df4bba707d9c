package day07

import (
	"context"
	"errors"
	"testing"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func mustHand(t *testing.T, s string) Hand {
	t.Helper()
	hs, err := Parse(s + " 1")
	require.NoError(t, err)
	return hs[0].Hand
}

func TestParse(t *testing.T) {
	hs, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, hs, 5)
	assert.Equal(t, "T55J5", hs[1].Hand.String())
	assert.Equal(t, uint32(684), hs[1].Bid)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("32T3 765")
	assert.True(t, errors.Is(err, parse.EmptyList) || errors.Is(err, parse.UnexpectedToken), "got %v", err)

	_, err = Parse("32T3X 765")
	require.Error(t, err)

	_, err = Parse("32T3K 99999999999")
	assert.True(t, errors.Is(err, parse.NumericOverflow), "got %v", err)
}

func TestHandType(t *testing.T) {
	tests := map[string]HandType{
		"AAAAA": FiveOfAKind,
		"AA8AA": FourOfAKind,
		"23332": FullHouse,
		"TTT98": ThreeOfAKind,
		"23432": TwoPair,
		"A23A4": OnePair,
		"23456": HighCard,
	}
	for hand, want := range tests {
		assert.Equal(t, want, mustHand(t, hand).Type(), hand)
	}
}

func TestHandCompare(t *testing.T) {
	assert.Positive(t, mustHand(t, "33332").Compare(mustHand(t, "2AAAA")))
	assert.Positive(t, mustHand(t, "77888").Compare(mustHand(t, "77788")))
	assert.Negative(t, mustHand(t, "KTJJT").Compare(mustHand(t, "KK677")))
	assert.Zero(t, mustHand(t, "QQQJA").Compare(mustHand(t, "QQQJA")))
}

func TestPart1(t *testing.T) {
	hs, err := Parse(sample)
	require.NoError(t, err)

	got, err := Part1(context.Background(), hs)
	require.NoError(t, err)
	assert.Equal(t, "6440", got)
}

func TestPuzzle_NoSecondPart(t *testing.T) {
	assert.False(t, Puzzle.HasPart(puzzle.Part2))
	_, err := Puzzle.Solve(context.Background(), sample, puzzle.Part2)
	assert.ErrorIs(t, err, puzzle.ErrNoPart)
}
