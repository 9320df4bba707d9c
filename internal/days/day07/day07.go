// Package day07 solves "Camel Cards".
package day07

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(7, "Camel Cards", Parse, Part1, nil)

// BidHand is a hand and the amount bid on it.
type BidHand struct {
	Hand Hand
	Bid  uint32
}

var hands = func() parse.Parser[[]BidHand] {
	card := parse.Map(parse.Char(cardRanks), func(r rune) Card {
		return Card(strings.IndexRune(cardRanks, r))
	})
	hand := parse.Map(parse.Count(card, 5), func(cs []Card) Hand {
		return Hand(cs)
	})
	line := parse.Map(parse.SeparatedPair(hand, parse.Tag(" "), parse.Uint[uint32]()),
		func(p parse.Pair[Hand, uint32]) BidHand {
			return BidHand{Hand: p.First, Bid: p.Second}
		})
	return parse.SeparatedList1(parse.Tag("\n"), line)
}()

// Parse parses one "<hand> <bid>" per line.
func Parse(data string) ([]BidHand, error) {
	return parse.Parse("hand list", hands, data)
}

// Part1 ranks every hand and sums bid times rank.
func Part1(_ context.Context, hs []BidHand) (string, error) {
	ranked := slices.Clone(hs)
	slices.SortStableFunc(ranked, func(a, b BidHand) int { return a.Hand.Compare(b.Hand) })
	var total uint64
	for i, h := range ranked {
		total += uint64(i+1) * uint64(h.Bid)
	}
	return strconv.FormatUint(total, 10), nil
}
