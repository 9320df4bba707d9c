// Package fanout runs independent jobs over disjoint inputs and folds their
// local results with a commutative, associative reducer.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrNoJobs is returned by Reduce when there is nothing to fold.
var ErrNoJobs = errors.New("fanout: no jobs")

type limitKey struct{}

// WithLimit returns a context that caps the goroutines Reduce starts.
// n <= 0 leaves the default of GOMAXPROCS.
func WithLimit(ctx context.Context, n int) context.Context {
	if n <= 0 {
		return ctx
	}
	return context.WithValue(ctx, limitKey{}, n)
}

// Limit reports the worker cap carried by ctx.
func Limit(ctx context.Context) int {
	if n, ok := ctx.Value(limitKey{}).(int); ok && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Reduce calls mapFn for every job index in [0, n) and folds the results in
// index order with reduce. The first error cancels the jobs not yet started
// and is returned.
func Reduce[T any](ctx context.Context, n int, mapFn func(ctx context.Context, i int) (T, error), reduce func(acc, v T) T) (T, error) {
	return ReduceErr(ctx, n, mapFn, func(acc, v T) (T, error) {
		return reduce(acc, v), nil
	})
}

// ReduceErr is Reduce with a fold step that can fail. The fold stops at the
// first reducer error.
func ReduceErr[T any](ctx context.Context, n int, mapFn func(ctx context.Context, i int) (T, error), reduce func(acc, v T) (T, error)) (T, error) {
	var zero T
	if n <= 0 {
		return zero, ErrNoJobs
	}

	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Limit(ctx))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := mapFn(gctx, i)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	acc := results[0]
	for i, v := range results[1:] {
		var err error
		if acc, err = reduce(acc, v); err != nil {
			return zero, fmt.Errorf("fold job %d: %w", i+1, err)
		}
	}
	return acc, nil
}

// Span is a half-open range [Start, Start+Len).
type Span struct {
	Start uint64
	Len   uint64
}

// ErrSpanOverflow is returned by Split when a range runs past the largest
// uint64.
var ErrSpanOverflow = errors.New("fanout: range overflows uint64")

// Split cuts [start, start+length) into consecutive spans of at most size.
// The last element of the range must be representable.
func Split(start, length, size uint64) ([]Span, error) {
	if length > 0 && length-1 > math.MaxUint64-start {
		return nil, fmt.Errorf("split [%d, +%d): %w", start, length, ErrSpanOverflow)
	}
	if size == 0 {
		size = length
	}
	var spans []Span
	for length > 0 {
		n := min(size, length)
		spans = append(spans, Span{Start: start, Len: n})
		length -= n
		if length > 0 {
			start += n
		}
	}
	return spans, nil
}
