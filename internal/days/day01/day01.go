// Package day01 solves "Trebuchet?!": each line of calibration text hides a
// two-digit value made of its first and last digit.
package day01

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(1, "Trebuchet?!", Parse, Part1, Part2)

var document = parse.SeparatedList1(parse.Tag("\n"),
	parse.TakeWhile1("calibration line", func(r rune) bool { return r != '\n' }))

// Parse splits the calibration document into non-empty lines.
func Parse(data string) ([]string, error) {
	return parse.Parse("calibration document", document, data)
}

const digitWords = `one|two|three|four|five|six|seven|eight|nine`

var (
	firstDigit = regexp.MustCompile(`([0-9])`)
	lastDigit  = regexp.MustCompile(`^.*([0-9])`)
	firstWord  = regexp.MustCompile(`([0-9]|` + digitWords + `)`)
	lastWord   = regexp.MustCompile(`^.*([0-9]|` + digitWords + `)`)
)

var wordValue = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// Part1 sums first and last numeric digits.
func Part1(_ context.Context, lines []string) (string, error) {
	return calibrate(lines, firstDigit, lastDigit)
}

// Part2 also accepts spelled-out digits. Spellings may overlap, so the
// last one is found with a greedy prefix rather than a second forward scan.
func Part2(_ context.Context, lines []string) (string, error) {
	return calibrate(lines, firstWord, lastWord)
}

func calibrate(lines []string, first, last *regexp.Regexp) (string, error) {
	sum := 0
	for i, line := range lines {
		a := first.FindStringSubmatch(line)
		b := last.FindStringSubmatch(line)
		if a == nil || b == nil {
			return "", fmt.Errorf("line %d: no digit in %q", i+1, line)
		}
		sum += 10*digitValue(a[1]) + digitValue(b[1])
	}
	return strconv.Itoa(sum), nil
}

func digitValue(s string) int {
	if v, ok := wordValue[s]; ok {
		return v
	}
	return int(s[0] - '0')
}
