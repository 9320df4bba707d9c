// Package day03 solves "Gear Ratios".
package day03

import (
	"context"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(3, "Gear Ratios", Parse, Part1, Part2)

// Number is a run of digits on one row. Start and End are inclusive columns.
type Number struct {
	Row, Start, End int
	Value           uint32
}

// Symbol is any character other than a digit or '.'.
type Symbol struct {
	Row, Col int
	Char     rune
}

// Diagram is the engine schematic.
type Diagram struct {
	Numbers []Number
	Symbols []Symbol
}

// Adjacent reports whether s touches n, diagonals included.
func (s Symbol) Adjacent(n Number) bool {
	return s.Row-1 <= n.Row && n.Row <= s.Row+1 &&
		n.Start <= s.Col+1 && s.Col <= n.End+1
}

type cell struct {
	num *Number
	sym *Symbol
}

var diagram = func() parse.Parser[Diagram] {
	number := parse.Map(parse.Locate(parse.Uint[uint32]()), func(l parse.Located[uint32]) cell {
		col := l.Pos.Column - 1
		return cell{num: &Number{Row: l.Pos.Line - 1, Start: col, End: col + l.Len - 1, Value: l.Value}}
	})
	symbol := parse.Map(parse.Locate(parse.NoneOf(".\n0123456789")), func(l parse.Located[rune]) cell {
		return cell{sym: &Symbol{Row: l.Pos.Line - 1, Col: l.Pos.Column - 1, Char: l.Value}}
	})
	blank := parse.Value(parse.IsA("."), cell{})
	row := parse.Many1(parse.Alt(number, blank, symbol))

	return parse.Map(parse.SeparatedList1(parse.Tag("\n"), row), func(rows [][]cell) Diagram {
		var d Diagram
		for _, r := range rows {
			for _, c := range r {
				switch {
				case c.num != nil:
					d.Numbers = append(d.Numbers, *c.num)
				case c.sym != nil:
					d.Symbols = append(d.Symbols, *c.sym)
				}
			}
		}
		return d
	})
}()

// Parse scans the schematic for numbers and symbols.
func Parse(data string) (Diagram, error) {
	return parse.Parse("schematic", diagram, data)
}

// Part1 sums every number adjacent to at least one symbol.
func Part1(_ context.Context, d Diagram) (string, error) {
	var sum uint64
	for _, n := range d.Numbers {
		for _, s := range d.Symbols {
			if s.Adjacent(n) {
				sum += uint64(n.Value)
				break
			}
		}
	}
	return strconv.FormatUint(sum, 10), nil
}

// Part2 sums the ratios of all gears: symbols touching exactly two numbers.
func Part2(_ context.Context, d Diagram) (string, error) {
	var sum uint64
	for _, s := range d.Symbols {
		var touching []Number
		for _, n := range d.Numbers {
			if s.Adjacent(n) {
				touching = append(touching, n)
				if len(touching) > 2 {
					break
				}
			}
		}
		if len(touching) == 2 {
			sum += uint64(touching[0].Value) * uint64(touching[1].Value)
		}
	}
	return strconv.FormatUint(sum, 10), nil
}
