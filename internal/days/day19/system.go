package day19

import (
	"fmt"
	"math"
)

// Attr selects one of a part's four ratings.
type Attr uint8

const (
	X Attr = iota
	M
	A
	S
)

const attrNames = "xmas"

func (a Attr) String() string { return attrNames[a : a+1] }

// Op is a rule's comparison. Always marks the unconditional fallback rule.
type Op uint8

const (
	Always Op = iota
	Less
	Greater
)

func (o Op) String() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	}
	return ""
}

// Label is a workflow name or one of the terminal labels.
type Label string

const (
	Accept Label = "A"
	Reject Label = "R"
	Start  Label = "in"
)

// Terminal reports whether l ends the routing.
func (l Label) Terminal() bool { return l == Accept || l == Reject }

// Rule sends a part to Dest when it satisfies the condition.
type Rule struct {
	Attr  Attr
	Op    Op
	Value uint32
	Dest  Label
}

// Matches reports whether p satisfies r.
func (r Rule) Matches(p Part) bool {
	switch r.Op {
	case Less:
		return p.Get(r.Attr) < r.Value
	case Greater:
		return p.Get(r.Attr) > r.Value
	}
	return true
}

func (r Rule) String() string {
	if r.Op == Always {
		return string(r.Dest)
	}
	return fmt.Sprintf("%s%s%d:%s", r.Attr, r.Op, r.Value, r.Dest)
}

// Workflow is a named, ordered list of rules.
type Workflow struct {
	Name  Label
	Rules []Rule
}

// Part is a machine part's ratings.
type Part struct {
	X, M, A, S uint32
}

// Get returns the rating for attr.
func (p Part) Get(attr Attr) uint32 {
	switch attr {
	case X:
		return p.X
	case M:
		return p.M
	case A:
		return p.A
	}
	return p.S
}

// Sum is the total of all four ratings.
func (p Part) Sum() uint64 {
	return uint64(p.X) + uint64(p.M) + uint64(p.A) + uint64(p.S)
}

// System is the parsed puzzle input.
type System struct {
	Workflows []Workflow
	Parts     []Part
}

// Router evaluates parts against a set of workflows.
type Router struct {
	flows map[Label][]Rule
}

// NewRouter indexes workflows by name.
func NewRouter(ws []Workflow) *Router {
	r := &Router{flows: make(map[Label][]Rule, len(ws))}
	for _, w := range ws {
		r.flows[w.Name] = w.Rules
	}
	return r
}

// Route follows p from the "in" workflow to Accept or Reject.
func (r *Router) Route(p Part) (Label, error) {
	pos := Start
	// Without a loop each workflow is entered at most once.
	for hops := 0; !pos.Terminal(); hops++ {
		rules, ok := r.flows[pos]
		if !ok {
			return "", fmt.Errorf("no workflow named %s", pos)
		}
		if hops >= len(r.flows) {
			return "", fmt.Errorf("part %+v loops through workflow %s", p, pos)
		}
		next, ok := firstMatch(rules, p)
		if !ok {
			return "", fmt.Errorf("no rule in workflow %s matches part %+v", pos, p)
		}
		pos = next
	}
	return pos, nil
}

func firstMatch(rules []Rule, p Part) (Label, bool) {
	for _, rule := range rules {
		if rule.Matches(p) {
			return rule.Dest, true
		}
	}
	return "", false
}

// Interval is an inclusive range of ratings.
type Interval struct {
	Lo, Hi uint32
}

func (iv Interval) size() uint64 {
	if iv.Hi < iv.Lo {
		return 0
	}
	return uint64(iv.Hi-iv.Lo) + 1
}

var empty = Interval{Lo: 1, Hi: 0}

// Box is one interval per attribute.
type Box [4]Interval

func (b Box) volume() uint64 {
	v := uint64(1)
	for _, iv := range b {
		v *= iv.size()
	}
	return v
}

// split divides b into the portion satisfying r and the remainder.
func (b Box) split(r Rule) (match, rest Box) {
	match, rest = b, b
	iv := b[r.Attr]
	switch r.Op {
	case Always:
		rest[r.Attr] = empty
	case Less:
		if r.Value == 0 {
			match[r.Attr] = empty
			break
		}
		match[r.Attr] = Interval{Lo: iv.Lo, Hi: min(iv.Hi, r.Value-1)}
		rest[r.Attr] = Interval{Lo: max(iv.Lo, r.Value), Hi: iv.Hi}
	case Greater:
		if r.Value == math.MaxUint32 {
			match[r.Attr] = empty
			break
		}
		match[r.Attr] = Interval{Lo: max(iv.Lo, r.Value+1), Hi: iv.Hi}
		rest[r.Attr] = Interval{Lo: iv.Lo, Hi: min(iv.Hi, r.Value)}
	}
	return match, rest
}

// Accepted counts the rating combinations inside b that end at Accept.
func (r *Router) Accepted(b Box) (uint64, error) {
	return r.accepted(Start, b, 0)
}

func (r *Router) accepted(pos Label, b Box, depth int) (uint64, error) {
	switch {
	case b.volume() == 0 || pos == Reject:
		return 0, nil
	case pos == Accept:
		return b.volume(), nil
	}
	rules, ok := r.flows[pos]
	if !ok {
		return 0, fmt.Errorf("no workflow named %s", pos)
	}
	if depth >= len(r.flows) {
		return 0, fmt.Errorf("workflow %s is part of a loop", pos)
	}
	var total uint64
	rest := b
	for _, rule := range rules {
		var match Box
		match, rest = rest.split(rule)
		n, err := r.accepted(rule.Dest, match, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		if rest.volume() == 0 {
			break
		}
	}
	return total, nil
}
