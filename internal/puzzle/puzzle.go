package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Part selects one half of a puzzle.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// Parts lists every part in order.
var Parts = []Part{Part1, Part2}

func (p Part) String() string {
	return "part " + strconv.Itoa(int(p))
}

// ParsePart converts "1" or "2" to a Part.
func ParsePart(s string) (Part, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Part1, nil
	case "2":
		return Part2, nil
	}
	return 0, fmt.Errorf("invalid part %q: must be 1 or 2", s)
}

// ErrNoPart is returned when a puzzle has no solution for the requested part.
var ErrNoPart = errors.New("part not implemented")

// Solver is a single day's puzzle with its input type erased.
type Solver interface {
	Day() int
	Title() string
	HasPart(Part) bool
	Solve(ctx context.Context, input string, part Part) (string, error)
}

// ParseFunc turns trimmed puzzle input into a typed document.
type ParseFunc[T any] func(data string) (T, error)

// SolveFunc reduces a parsed document to an answer.
type SolveFunc[T any] func(ctx context.Context, input T) (string, error)

// Puzzle binds a parser to the reducers for each part.
type Puzzle[T any] struct {
	day   int
	title string
	parse ParseFunc[T]
	parts map[Part]SolveFunc[T]
}

// New creates a Puzzle. part2 may be nil when only the first part exists.
func New[T any](day int, title string, parse func(string) (T, error), part1, part2 func(context.Context, T) (string, error)) *Puzzle[T] {
	p := &Puzzle[T]{
		day:   day,
		title: title,
		parse: parse,
		parts: map[Part]SolveFunc[T]{},
	}
	if part1 != nil {
		p.parts[Part1] = part1
	}
	if part2 != nil {
		p.parts[Part2] = part2
	}
	return p
}

func (p *Puzzle[T]) Day() int      { return p.day }
func (p *Puzzle[T]) Title() string { return p.title }

func (p *Puzzle[T]) HasPart(part Part) bool {
	_, ok := p.parts[part]
	return ok
}

// Solve trims and parses input, then runs the reducer for part. The input is
// parsed afresh for every call so reducers may consume their document.
func (p *Puzzle[T]) Solve(ctx context.Context, input string, part Part) (string, error) {
	run, ok := p.parts[part]
	if !ok {
		return "", fmt.Errorf("day %d %s: %w", p.day, part, ErrNoPart)
	}
	doc, err := p.parse(strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("day %d: %w", p.day, err)
	}
	answer, err := run(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("day %d %s: %w", p.day, part, err)
	}
	return answer, nil
}

// Registry indexes solvers by day.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry builds a registry, rejecting duplicate days.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{byDay: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if _, dup := r.byDay[s.Day()]; dup {
			return nil, fmt.Errorf("duplicate solver for day %d", s.Day())
		}
		r.byDay[s.Day()] = s
	}
	return r, nil
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, bool) {
	s, ok := r.byDay[day]
	return s, ok
}

// All returns the registered solvers ordered by day.
func (r *Registry) All() []Solver {
	out := make([]Solver, 0, len(r.byDay))
	for _, s := range r.byDay {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day() < out[j].Day() })
	return out
}
