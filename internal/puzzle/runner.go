package puzzle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dgallion1/aoc2023/internal/fanout"
	"github.com/dgallion1/aoc2023/internal/stats"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of solving one part.
type Result struct {
	RunID    string
	Day      int
	Part     Part
	Answer   string
	Duration time.Duration
	Err      error
}

// Job is one part of one puzzle with its input. A job with Err set is
// reported as failed without being solved.
type Job struct {
	Solver Solver
	Input  string
	Part   Part
	Err    error
}

// Runner solves puzzles, logs each run and prints results.
type Runner struct {
	log     *slog.Logger
	out     io.Writer
	stats   *stats.SolveStats
	workers int
}

// NewRunner creates a runner. st may be nil. workers bounds both RunAll and
// the fan-out available to individual reducers; 0 means GOMAXPROCS.
func NewRunner(log *slog.Logger, out io.Writer, st *stats.SolveStats, workers int) *Runner {
	return &Runner{log: log, out: out, stats: st, workers: workers}
}

// Solve runs a single part without printing.
func (r *Runner) Solve(ctx context.Context, s Solver, input string, part Part) Result {
	res := Result{RunID: uuid.NewString(), Day: s.Day(), Part: part}
	log := r.log.With("run_id", res.RunID, "day", res.Day, "part", int(part))

	ctx = fanout.WithLimit(ctx, r.workers)
	start := time.Now()
	res.Answer, res.Err = s.Solve(ctx, input, part)
	res.Duration = time.Since(start)

	if r.stats != nil {
		r.stats.Record(res.Duration)
	}
	if res.Err != nil {
		log.Error("solve failed", "error", res.Err, "duration_ms", res.Duration.Milliseconds())
		return res
	}
	log.Info("solved", "duration_ms", res.Duration.Milliseconds())
	return res
}

// Run solves a single part and prints it.
func (r *Runner) Run(ctx context.Context, s Solver, input string, part Part) Result {
	res := r.Solve(ctx, s, input, part)
	r.Print(res)
	return res
}

// RunAll solves jobs concurrently and prints the results in job order.
// A failing job does not stop the others.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	var g errgroup.Group
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if job.Err != nil {
				results[i] = r.unsolved(job)
				return nil
			}
			results[i] = r.Solve(ctx, job.Solver, job.Input, job.Part)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		r.Print(res)
	}
	return results
}

func (r *Runner) unsolved(job Job) Result {
	res := Result{RunID: uuid.NewString(), Day: job.Solver.Day(), Part: job.Part, Err: job.Err}
	r.log.Error("input unavailable", "run_id", res.RunID, "day", res.Day, "part", int(res.Part), "error", res.Err)
	return res
}

// Print writes a result in banner form.
func (r *Runner) Print(res Result) {
	fmt.Fprintf(r.out, "============= Day %d Part %d ============= \n", res.Day, res.Part)
	if res.Err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", res.Err)
	} else {
		fmt.Fprintf(r.out, "Result: %s\n", res.Answer)
	}
	fmt.Fprintf(r.out, "=========== End Day %d Part %d =========== \n", res.Day, res.Part)
}
