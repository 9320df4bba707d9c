// Package day06 solves "Wait For It".
package day06

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(6, "Wait For It", Parse, Part1, Part2)

// Race is a race duration and the record distance to beat.
type Race struct {
	Duration uint64
	Record   uint64
}

// Ways counts the whole-millisecond charge times that beat the record.
func (r Race) Ways() uint64 {
	// distance(d) = d*(T-d) rises up to T/2, so find the first charge that
	// wins and mirror it.
	lo, hi := uint64(0), r.Duration/2
	if !r.beaten(hi) {
		return 0
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if r.beaten(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return r.Duration - 2*lo + 1
}

// beaten reports whether charging for d beats the record. The product is
// taken at 128 bits.
func (r Race) beaten(d uint64) bool {
	hi, lo := bits.Mul64(d, r.Duration-d)
	return hi > 0 || lo > r.Record
}

var races = func() parse.Parser[[]Race] {
	list := func(label string) parse.Parser[[]uint64] {
		return parse.Preceded(parse.Tag(label), parse.Preceded(parse.Space1, parse.WhitespaceList[uint64]()))
	}
	table := parse.Verify(
		parse.SeparatedPair(list("Time:"), parse.Tag("\n"), list("Distance:")),
		"time and distance lists differ in length",
		func(p parse.Pair[[]uint64, []uint64]) bool { return len(p.First) == len(p.Second) })
	return parse.Map(table, func(p parse.Pair[[]uint64, []uint64]) []Race {
		out := make([]Race, len(p.First))
		for i := range out {
			out[i] = Race{Duration: p.First[i], Record: p.Second[i]}
		}
		return out
	})
}()

// Parse parses the race table.
func Parse(data string) ([]Race, error) {
	return parse.Parse("race table", races, data)
}

// Part1 multiplies the number of winning strategies of each race.
func Part1(_ context.Context, rs []Race) (string, error) {
	prod := uint64(1)
	for i, r := range rs {
		hi, lo := bits.Mul64(prod, r.Ways())
		if hi > 0 {
			return "", fmt.Errorf("product overflows uint64 at race %d", i+1)
		}
		prod = lo
	}
	return strconv.FormatUint(prod, 10), nil
}

// Part2 reads the table as one race whose figures are the concatenated
// digits of every column.
func Part2(_ context.Context, rs []Race) (string, error) {
	if len(rs) == 0 {
		return "", errors.New("no races")
	}
	var dur, rec string
	for _, r := range rs {
		dur += strconv.FormatUint(r.Duration, 10)
		rec += strconv.FormatUint(r.Record, 10)
	}
	d, err := strconv.ParseUint(dur, 10, 64)
	if err != nil {
		return "", fmt.Errorf("combined duration: %w", err)
	}
	r, err := strconv.ParseUint(rec, 10, 64)
	if err != nil {
		return "", fmt.Errorf("combined record: %w", err)
	}
	return strconv.FormatUint(Race{Duration: d, Record: r}.Ways(), 10), nil
}
