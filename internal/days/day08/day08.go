// Package day08 solves "Haunted Wasteland".
package day08

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/fanout"
	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(8, "Haunted Wasteland", Parse, Part1, Part2)

var label = parse.Map(parse.Take(3), func(s string) Label {
	var l Label
	copy(l[:], []rune(s))
	return l
})

var network = func() parse.Parser[Network] {
	directions := parse.Many1(parse.Alt(
		parse.Value(parse.Char("L"), Left),
		parse.Value(parse.Char("R"), Right)))
	choices := parse.Delimited(parse.Tag("("), parse.SeparatedPair(label, parse.Tag(", "), label), parse.Tag(")"))
	node := parse.Map(parse.SeparatedPair(label, parse.Tag(" = "), choices),
		func(p parse.Pair[Label, parse.Pair[Label, Label]]) Node {
			return Node{Label: p.First, Left: p.Second.First, Right: p.Second.Second}
		})
	nodes := parse.MapErr(parse.SeparatedList1(parse.Tag("\n"), node), unique)
	return parse.Map(parse.SeparatedPair(directions, parse.Tag("\n\n"), nodes),
		func(p parse.Pair[[]Direction, []Node]) Network {
			return Network{Directions: p.First, Nodes: p.Second}
		})
}()

func unique(ns []Node) ([]Node, error) {
	seen := make(map[Label]bool, len(ns))
	for _, n := range ns {
		if seen[n.Label] {
			return nil, fmt.Errorf("node %s defined twice", n.Label)
		}
		seen[n.Label] = true
	}
	return ns, nil
}

// Parse parses the instructions and the node list.
func Parse(data string) (Network, error) {
	return parse.Parse("network", network, data)
}

// ParseLabel parses a single three-character node label.
func ParseLabel(s string) (Label, error) {
	return parse.Parse("label", label, s)
}

var (
	start = Label{'A', 'A', 'A'}
	goal  = Label{'Z', 'Z', 'Z'}
)

// Part1 counts the steps from AAA to ZZZ.
func Part1(ctx context.Context, n Network) (string, error) {
	steps, err := NewWalker(n).Steps(ctx, start, func(l Label) bool { return l == goal })
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(steps, 10), nil
}

// Part2 walks every node ending in 'A' at once and reports the first step
// at which all of them stand on nodes ending in 'Z'. Each ghost cycles, so
// the answer is the lcm of the individual walk lengths.
func Part2(ctx context.Context, n Network) (string, error) {
	var starts []Label
	for _, node := range n.Nodes {
		if node.Label[2] == 'A' {
			starts = append(starts, node.Label)
		}
	}
	if len(starts) == 0 {
		return "", errors.New("no starting nodes ending in A")
	}

	w := NewWalker(n)
	endsInZ := func(l Label) bool { return l[2] == 'Z' }
	steps, err := fanout.ReduceErr(ctx, len(starts), func(ctx context.Context, i int) (uint64, error) {
		return w.Steps(ctx, starts[i], endsInZ)
	}, lcm)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(steps, 10), nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

var errLCMOverflow = errors.New("lcm overflows uint64")

func lcm(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a/gcd(a, b), b)
	if hi != 0 {
		return 0, fmt.Errorf("lcm(%d, %d): %w", a, b, errLCMOverflow)
	}
	return lo, nil
}
