package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/config"
	"github.com/dgallion1/aoc2023/internal/days"
	"github.com/dgallion1/aoc2023/internal/puzzle"
	"github.com/dgallion1/aoc2023/internal/stats"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve one or more days",
	Long:  "Read each day's input from <input-dir>/<day>/input.txt, solve the requested parts and print the answers.",
	RunE:  runSolve,
}

func init() {
	runCmd.Flags().IntP("part", "p", 0, "Part to solve (default: every implemented part)")
	runCmd.Flags().Int("sample", 0, "Solve the n-th example from <day>/puzzle.html or puzzle.md instead of the input")
	runCmd.Flags().StringP("file", "f", "", "Read the input from this file (single day only)")
	runCmd.Flags().Bool("all", false, "Solve every registered day")

	rootCmd.AddCommand(runCmd)
}

type runOptions struct {
	Days   []int
	All    bool
	Part   int
	Sample int
	File   string
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := runOptions{}
	opts.All, _ = cmd.Flags().GetBool("all")
	opts.Part, _ = cmd.Flags().GetInt("part")
	opts.Sample, _ = cmd.Flags().GetInt("sample")
	opts.File, _ = cmd.Flags().GetString("file")
	for _, a := range args {
		day, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid day %q", a)
		}
		opts.Days = append(opts.Days, day)
	}
	return runDays(cmd.Context(), cfg, opts, cmd.OutOrStdout(), os.Stderr)
}

// runDays solves the selected days, printing banners to out and logs to
// logOut. It fails if any part fails.
func runDays(ctx context.Context, cfg config.Config, opts runOptions, out, logOut io.Writer) error {
	reg := days.Registry()

	var solvers []puzzle.Solver
	switch {
	case opts.All && len(opts.Days) > 0:
		return fmt.Errorf("--all cannot be combined with explicit days")
	case opts.All:
		solvers = reg.All()
	case len(opts.Days) == 0:
		return fmt.Errorf("no days given; pass day numbers or --all")
	default:
		for _, d := range opts.Days {
			s, ok := reg.Get(d)
			if !ok {
				return fmt.Errorf("no puzzle for day %d", d)
			}
			solvers = append(solvers, s)
		}
	}
	if opts.File != "" && len(solvers) != 1 {
		return fmt.Errorf("--file needs exactly one day")
	}
	if opts.File != "" && opts.Sample > 0 {
		return fmt.Errorf("--file and --sample are mutually exclusive")
	}

	var parts []puzzle.Part
	if opts.Part != 0 {
		p, err := puzzle.ParsePart(strconv.Itoa(opts.Part))
		if err != nil {
			return err
		}
		parts = []puzzle.Part{p}
	}

	loader := puzzle.NewLoader(cfg.InputDir, cfg.MaxInputBytes)
	var jobs []puzzle.Job
	for _, s := range solvers {
		// A missing input fails only that day's parts.
		input, loadErr := loadInput(loader, s.Day(), opts)
		want := parts
		if want == nil {
			want = puzzle.Parts
		}
		for _, p := range want {
			if opts.Part == 0 && !s.HasPart(p) {
				continue
			}
			jobs = append(jobs, puzzle.Job{Solver: s, Input: input, Part: p, Err: loadErr})
		}
	}

	log := newLogger(cfg, logOut)
	runner := puzzle.NewRunner(log, out, stats.New(cfg.StatsWindow), cfg.Workers)
	results := runner.RunAll(ctx, jobs)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d parts failed", failed, len(results))
	}
	return nil
}

func loadInput(l *puzzle.Loader, day int, opts runOptions) (string, error) {
	switch {
	case opts.File != "":
		return l.ReadFile(opts.File)
	case opts.Sample > 0:
		return l.Sample(day, opts.Sample)
	}
	return l.Load(day)
}
