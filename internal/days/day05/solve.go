package day05

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/fanout"
	"github.com/dgallion1/aoc2023/internal/puzzle"
)

var Puzzle = puzzle.New(5, "If You Give A Seed A Fertilizer", Parse, Part1, Part2)

// spanSize bounds the seeds handled by one fan-out job.
const spanSize = 1 << 20

// Part1 finds the lowest location of any listed seed.
func Part1(_ context.Context, a Almanac) (string, error) {
	if len(a.Seeds) == 0 {
		return "", errors.New("no seeds")
	}
	best := uint64(math.MaxUint64)
	for _, s := range a.Seeds {
		best = min(best, a.Location(s))
	}
	return strconv.FormatUint(best, 10), nil
}

// Part2 treats the seeds as (start, length) pairs and scans every seed in
// every range, split into disjoint spans reduced in parallel.
func Part2(ctx context.Context, a Almanac) (string, error) {
	if len(a.Seeds)%2 != 0 {
		return "", fmt.Errorf("seed ranges need an even count of numbers, got %d", len(a.Seeds))
	}
	var spans []fanout.Span
	for i := 0; i+1 < len(a.Seeds); i += 2 {
		s, err := fanout.Split(a.Seeds[i], a.Seeds[i+1], spanSize)
		if err != nil {
			return "", fmt.Errorf("seed range %d: %w", i/2+1, err)
		}
		spans = append(spans, s...)
	}
	if len(spans) == 0 {
		return "", errors.New("no seeds")
	}

	best, err := fanout.Reduce(ctx, len(spans), func(ctx context.Context, i int) (uint64, error) {
		span := spans[i]
		local := uint64(math.MaxUint64)
		for off := uint64(0); off < span.Len; off++ {
			local = min(local, a.Location(span.Start+off))
		}
		return local, ctx.Err()
	}, func(x, y uint64) uint64 { return min(x, y) })
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(best, 10), nil
}
