package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dgallion1/aoc2023/internal/days"
	"github.com/dgallion1/aoc2023/internal/puzzle"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solved days and whether their input is present",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loader := puzzle.NewLoader(cfg.InputDir, cfg.MaxInputBytes)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DAY\tTITLE\tPARTS\tINPUT")
		for _, s := range days.Registry().All() {
			var parts []string
			for _, p := range puzzle.Parts {
				if s.HasPart(p) {
					parts = append(parts, fmt.Sprint(int(p)))
				}
			}
			input := "missing"
			if _, err := os.Stat(loader.InputPath(s.Day())); err == nil {
				input = loader.InputPath(s.Day())
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Day(), s.Title(), strings.Join(parts, ","), input)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
