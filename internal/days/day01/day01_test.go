package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	lines, err := Parse("1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet")
	require.NoError(t, err)
	assert.Equal(t, []string{"1abc2", "pqr3stu8vwx", "a1b2c3d4e5f", "treb7uchet"}, lines)

	got, err := Part1(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, "142", got)
}

func TestPart1_NoDigit(t *testing.T) {
	_, err := Part1(context.Background(), []string{"12", "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestPart2(t *testing.T) {
	lines, err := Parse("two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen")
	require.NoError(t, err)

	got, err := Part2(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, "281", got)
}

func TestPart2_OverlappingWords(t *testing.T) {
	got, err := Part2(context.Background(), []string{"twone", "oneight"})
	require.NoError(t, err)
	assert.Equal(t, "39", got) // 21 + 18
}

func TestParse_BlankLine(t *testing.T) {
	_, err := Parse("1abc2\n\n3x4")
	require.Error(t, err)
}
