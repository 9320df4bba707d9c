// Package day02 solves "Cube Conundrum".
package day02

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(2, "Cube Conundrum", Parse, Part1, Part2)

// Draw is one handful of cubes revealed from the bag.
type Draw struct {
	Red, Green, Blue uint32
}

// Game is a numbered sequence of draws.
type Game struct {
	ID    uint32
	Draws []Draw
}

type cubes struct {
	n     uint32
	color string
}

var games = func() parse.Parser[[]Game] {
	num := parse.Uint[uint32]()
	color := parse.Alt(parse.Tag("red"), parse.Tag("green"), parse.Tag("blue"))
	count := parse.Seq3(num, parse.Tag(" "), color, func(n uint32, _ string, c string) cubes {
		return cubes{n: n, color: c}
	})
	draw := parse.MapErr(parse.SeparatedList1(parse.Tag(", "), count), toDraw)
	game := parse.Seq3(
		parse.Preceded(parse.Tag("Game "), num),
		parse.Tag(": "),
		parse.SeparatedList1(parse.Tag("; "), draw),
		func(id uint32, _ string, draws []Draw) Game {
			return Game{ID: id, Draws: draws}
		})
	return parse.SeparatedList1(parse.Tag("\n"), game)
}()

func toDraw(counts []cubes) (Draw, error) {
	var d Draw
	seen := make(map[string]bool, 3)
	for _, c := range counts {
		if seen[c.color] {
			return Draw{}, fmt.Errorf("colour %q repeated in one draw", c.color)
		}
		seen[c.color] = true
		switch c.color {
		case "red":
			d.Red = c.n
		case "green":
			d.Green = c.n
		case "blue":
			d.Blue = c.n
		}
	}
	return d, nil
}

// Parse parses one game per line.
func Parse(data string) ([]Game, error) {
	return parse.Parse("game record", games, data)
}

// bag is the loaded bag of part one.
var bag = Draw{Red: 12, Green: 13, Blue: 14}

// Part1 sums the IDs of games possible with the loaded bag.
func Part1(_ context.Context, gs []Game) (string, error) {
	var sum uint64
	for _, g := range gs {
		if g.possible(bag) {
			sum += uint64(g.ID)
		}
	}
	return strconv.FormatUint(sum, 10), nil
}

// Part2 sums the power of the minimal bag for each game.
func Part2(_ context.Context, gs []Game) (string, error) {
	var sum uint64
	for _, g := range gs {
		m := g.minimal()
		sum += uint64(m.Red) * uint64(m.Green) * uint64(m.Blue)
	}
	return strconv.FormatUint(sum, 10), nil
}

func (g Game) possible(limit Draw) bool {
	for _, d := range g.Draws {
		if d.Red > limit.Red || d.Green > limit.Green || d.Blue > limit.Blue {
			return false
		}
	}
	return true
}

func (g Game) minimal() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}
