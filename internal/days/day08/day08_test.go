package day08

import (
	"context"
	"errors"
	"testing"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRL = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)`

const sampleLLR = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)`

const sampleGhosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)`

func TestParse(t *testing.T) {
	n, err := Parse(sampleLLR)
	require.NoError(t, err)
	assert.Equal(t, []Direction{Left, Left, Right}, n.Directions)
	assert.Equal(t, []Node{
		{Label: Label{'A', 'A', 'A'}, Left: Label{'B', 'B', 'B'}, Right: Label{'B', 'B', 'B'}},
		{Label: Label{'B', 'B', 'B'}, Left: Label{'A', 'A', 'A'}, Right: Label{'Z', 'Z', 'Z'}},
		{Label: Label{'Z', 'Z', 'Z'}, Left: Label{'Z', 'Z', 'Z'}, Right: Label{'Z', 'Z', 'Z'}},
	}, n.Nodes)
}

func TestParse_BadDirection(t *testing.T) {
	_, err := Parse("LXR\n\nAAA = (AAA, AAA)")
	require.Error(t, err)
}

func TestParse_DuplicateNode(t *testing.T) {
	_, err := Parse("L\n\nAAA = (AAA, AAA)\nAAA = (BBB, BBB)")
	assert.True(t, errors.Is(err, parse.MalformedRecord), "got %v", err)
}

func TestParseLabel(t *testing.T) {
	l, err := ParseLabel("AAA")
	require.NoError(t, err)
	assert.Equal(t, Label{'A', 'A', 'A'}, l)
	assert.Equal(t, "AAA", l.String())

	_, err = ParseLabel("AA")
	assert.True(t, errors.Is(err, parse.InsufficientInput), "got %v", err)

	_, err = ParseLabel("AAAA")
	assert.True(t, errors.Is(err, parse.TrailingInput), "got %v", err)
}

func TestPart1(t *testing.T) {
	for name, tt := range map[string]struct {
		input string
		want  string
	}{
		"rl":  {sampleRL, "2"},
		"llr": {sampleLLR, "6"},
	} {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)
			got, err := Part1(context.Background(), n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPart1_UnknownNode(t *testing.T) {
	n, err := Parse("L\n\nAAA = (QQQ, QQQ)")
	require.NoError(t, err)
	_, err = Part1(context.Background(), n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no node QQQ")
}

func TestPart1_Unreachable(t *testing.T) {
	n, err := Parse("LR\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)")
	require.NoError(t, err)
	_, err = Part1(context.Background(), n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never reaches")
}

func TestPart2(t *testing.T) {
	n, err := Parse(sampleGhosts)
	require.NoError(t, err)
	got, err := Part2(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestLCM(t *testing.T) {
	for _, tc := range []struct{ a, b, want uint64 }{
		{2, 3, 6},
		{4, 6, 12},
		{7, 7, 7},
		{1 << 32, 1<<32 - 1, 1<<64 - 1<<32},
	} {
		got, err := lcm(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "lcm(%d, %d)", tc.a, tc.b)
	}
}

func TestLCM_Overflow(t *testing.T) {
	_, err := lcm(1<<40, 1<<40+1)
	assert.ErrorIs(t, err, errLCMOverflow)
}
