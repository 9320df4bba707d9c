package day08

import (
	"context"
	"fmt"
)

// Direction is one step of the instruction string.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// Label names a node. It is always exactly three characters.
type Label [3]rune

func (l Label) String() string { return string(l[:]) }

// Node is one "AAA = (BBB, CCC)" line.
type Node struct {
	Label       Label
	Left, Right Label
}

// Network is the parsed puzzle input.
type Network struct {
	Directions []Direction
	Nodes      []Node
}

// Walker follows the directions through an indexed network.
type Walker struct {
	dirs  []Direction
	nodes map[Label]Node
}

// NewWalker indexes n by label.
func NewWalker(n Network) *Walker {
	w := &Walker{dirs: n.Directions, nodes: make(map[Label]Node, len(n.Nodes))}
	for _, node := range n.Nodes {
		w.nodes[node.Label] = node
	}
	return w
}

// Steps counts moves from start until done accepts the current node.
// A walk can visit at most one state per (node, instruction) pair, so once
// that bound is passed the target is unreachable.
func (w *Walker) Steps(ctx context.Context, start Label, done func(Label) bool) (uint64, error) {
	if len(w.dirs) == 0 {
		return 0, fmt.Errorf("no directions")
	}
	limit := uint64(len(w.dirs)) * uint64(len(w.nodes))
	pos := start
	for step := uint64(0); step <= limit; step++ {
		if step%(1<<16) == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		node, ok := w.nodes[pos]
		if !ok {
			return 0, fmt.Errorf("no node %s", pos)
		}
		if w.dirs[step%uint64(len(w.dirs))] == Left {
			pos = node.Left
		} else {
			pos = node.Right
		}
		if done(pos) {
			return step + 1, nil
		}
	}
	return 0, fmt.Errorf("%s never reaches its target", start)
}
