// Package day19 solves "Aplenty": parts are routed through named workflows
// of comparison rules until they are accepted or rejected.
package day19

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(19, "Aplenty", Parse, Part1, Part2)

var (
	num = parse.Uint[uint32]()

	attr = parse.Alt(
		parse.Value(parse.Char("x"), X),
		parse.Value(parse.Char("m"), M),
		parse.Value(parse.Char("a"), A),
		parse.Value(parse.Char("s"), S))
	op = parse.Alt(
		parse.Value(parse.Char("<"), Less),
		parse.Value(parse.Char(">"), Greater))
	label = parse.Map(parse.Alpha1, func(s string) Label { return Label(s) })

	// The conditional form must be tried first: a bare label such as "a"
	// is also a valid attribute prefix.
	cond = parse.Seq5(attr, op, num, parse.Tag(":"), label,
		func(a Attr, o Op, n uint32, _ string, dest Label) Rule {
			return Rule{Attr: a, Op: o, Value: n, Dest: dest}
		})
	uncond = parse.Map(label, func(dest Label) Rule { return Rule{Op: Always, Dest: dest} })

	workflow = parse.Seq2(label,
		parse.Delimited(parse.Tag("{"), parse.SeparatedList1(parse.Tag(","), parse.Alt(cond, uncond)), parse.Tag("}")),
		func(name Label, rs []Rule) Workflow {
			return Workflow{Name: name, Rules: rs}
		})

	kv = parse.Seq3(attr, parse.Tag("="), num, func(a Attr, _ string, n uint32) rating {
		return rating{attr: a, value: n}
	})
	part = parse.MapErr(
		parse.Delimited(parse.Tag("{"), parse.SeparatedList1(parse.Tag(","), kv), parse.Tag("}")),
		toPart)

	system = parse.Map(
		parse.SeparatedPair(
			parse.MapErr(parse.SeparatedList1(parse.Tag("\n"), workflow), uniqueNames),
			parse.Tag("\n\n"),
			parse.SeparatedList1(parse.Tag("\n"), part)),
		func(p parse.Pair[[]Workflow, []Part]) System {
			return System{Workflows: p.First, Parts: p.Second}
		})
)

type rating struct {
	attr  Attr
	value uint32
}

// toPart accepts the four ratings in any order, each exactly once.
func toPart(rs []rating) (Part, error) {
	var vals [4]uint32
	var seen [4]bool
	for _, r := range rs {
		if seen[r.attr] {
			return Part{}, fmt.Errorf("rating %s given twice", r.attr)
		}
		seen[r.attr] = true
		vals[r.attr] = r.value
	}
	for a, ok := range seen {
		if !ok {
			return Part{}, fmt.Errorf("rating %s missing", Attr(a))
		}
	}
	return Part{X: vals[X], M: vals[M], A: vals[A], S: vals[S]}, nil
}

func uniqueNames(ws []Workflow) ([]Workflow, error) {
	seen := make(map[Label]bool, len(ws))
	for _, w := range ws {
		if w.Name.Terminal() {
			return nil, fmt.Errorf("workflow may not be named %s", w.Name)
		}
		if seen[w.Name] {
			return nil, fmt.Errorf("workflow %s defined twice", w.Name)
		}
		seen[w.Name] = true
	}
	return ws, nil
}

// Parse parses the workflow block and the part block.
func Parse(data string) (System, error) {
	return parse.Parse("workflow system", system, data)
}

// ParseWorkflow parses a single "name{rule,...}" line.
func ParseWorkflow(s string) (Workflow, error) {
	return parse.Parse("workflow", workflow, s)
}

// ParsePart parses a single "{x=..,m=..,a=..,s=..}" record.
func ParsePart(s string) (Part, error) {
	return parse.Parse("part", part, s)
}

// Part1 sums the ratings of every accepted part.
func Part1(_ context.Context, sys System) (string, error) {
	r := NewRouter(sys.Workflows)
	var sum uint64
	for _, p := range sys.Parts {
		l, err := r.Route(p)
		if err != nil {
			return "", err
		}
		if l == Accept {
			sum += p.Sum()
		}
	}
	return strconv.FormatUint(sum, 10), nil
}

// Part2 counts the rating combinations in 1..4000 that would be accepted.
func Part2(_ context.Context, sys System) (string, error) {
	if len(sys.Workflows) == 0 {
		return "", errors.New("no workflows")
	}
	full := Interval{Lo: 1, Hi: 4000}
	n, err := NewRouter(sys.Workflows).Accepted(Box{full, full, full, full})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10), nil
}
