package day07

import (
	"cmp"
	"fmt"
	"slices"
)

// Card is a card rank, Two lowest and Ace highest.
type Card uint8

const cardRanks = "23456789TJQKA"

func (c Card) String() string { return cardRanks[c : c+1] }

// Hand is five cards in the order dealt.
type Hand [5]Card

// HandType ranks hands by their card groupings.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Type classifies h by its two largest groups of equal cards.
func (h Hand) Type() HandType {
	var tally [len(cardRanks)]uint8
	for _, c := range h {
		tally[c]++
	}
	var top, sec uint8
	for _, n := range tally {
		if n > top {
			top, sec = n, top
		} else if n > sec {
			sec = n
		}
	}
	switch {
	case top == 5:
		return FiveOfAKind
	case top == 4:
		return FourOfAKind
	case top == 3 && sec == 2:
		return FullHouse
	case top == 3:
		return ThreeOfAKind
	case top == 2 && sec == 2:
		return TwoPair
	case top == 2:
		return OnePair
	case top == 1:
		return HighCard
	}
	panic(fmt.Sprintf("day07: impossible tally %d/%d for %v", top, sec, h))
}

// Compare orders hands by type, then card by card.
func (h Hand) Compare(o Hand) int {
	if c := cmp.Compare(h.Type(), o.Type()); c != 0 {
		return c
	}
	return slices.Compare(h[:], o[:])
}

func (h Hand) String() string {
	b := make([]byte, len(h))
	for i, c := range h {
		b[i] = cardRanks[c]
	}
	return string(b)
}
