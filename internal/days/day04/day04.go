// Package day04 solves "Scratchcards".
package day04

import (
	"context"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(4, "Scratchcards", Parse, Part1, Part2)

// Card is one scratchcard: the winning numbers and the numbers held.
type Card struct {
	ID      uint32
	Winning []uint8
	Have    []uint8
}

// Matches counts held numbers that are also winning numbers.
func (c Card) Matches() int {
	var winning [256]bool
	for _, w := range c.Winning {
		winning[w] = true
	}
	n := 0
	for _, h := range c.Have {
		if winning[h] {
			n++
		}
	}
	return n
}

var cards = func() parse.Parser[[]Card] {
	id := parse.Preceded(
		parse.Terminated(parse.Tag("Card"), parse.Space1),
		parse.Terminated(parse.Uint[uint32](), parse.Tag(":")))
	lists := parse.SeparatedPair(
		parse.Preceded(parse.Space1, parse.WhitespaceList[uint8]()),
		parse.Delimited(parse.Space1, parse.Tag("|"), parse.Space1),
		parse.WhitespaceList[uint8]())
	card := parse.Seq2(id, lists, func(id uint32, l parse.Pair[[]uint8, []uint8]) Card {
		return Card{ID: id, Winning: l.First, Have: l.Second}
	})
	return parse.SeparatedList1(parse.Tag("\n"), card)
}()

// Parse parses one card per line.
func Parse(data string) ([]Card, error) {
	return parse.Parse("scratchcards", cards, data)
}

// Part1 scores each card at 2^(matches-1) points.
func Part1(_ context.Context, cs []Card) (string, error) {
	var sum uint64
	for _, c := range cs {
		if m := c.Matches(); m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return strconv.FormatUint(sum, 10), nil
}

// Part2 counts cards once every win has copied the cards that follow it.
func Part2(_ context.Context, cs []Card) (string, error) {
	copies := make([]uint64, len(cs))
	for i := range copies {
		copies[i] = 1
	}
	var total uint64
	for i, c := range cs {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cs); j++ {
			copies[j] += copies[i]
		}
	}
	return strconv.FormatUint(total, 10), nil
}
