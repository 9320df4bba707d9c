// Package days lists every solved puzzle.
package days

import (
	"github.com/dgallion1/aoc2023/internal/days/day01"
	"github.com/dgallion1/aoc2023/internal/days/day02"
	"github.com/dgallion1/aoc2023/internal/days/day03"
	"github.com/dgallion1/aoc2023/internal/days/day04"
	"github.com/dgallion1/aoc2023/internal/days/day05"
	"github.com/dgallion1/aoc2023/internal/days/day06"
	"github.com/dgallion1/aoc2023/internal/days/day07"
	"github.com/dgallion1/aoc2023/internal/days/day08"
	"github.com/dgallion1/aoc2023/internal/days/day19"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

// All returns the solvers in day order.
func All() []puzzle.Solver {
	return []puzzle.Solver{
		day01.Puzzle,
		day02.Puzzle,
		day03.Puzzle,
		day04.Puzzle,
		day05.Puzzle,
		day06.Puzzle,
		day07.Puzzle,
		day08.Puzzle,
		day19.Puzzle,
	}
}

// Registry indexes All by day.
func Registry() *puzzle.Registry {
	r, err := puzzle.NewRegistry(All()...)
	if err != nil {
		panic(err)
	}
	return r
}
