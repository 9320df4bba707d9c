package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/aoc2023/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "aoc",
	Short:        "Advent of Code 2023 solutions",
	Long:         "aoc parses puzzle inputs with a small combinator toolkit and prints the answer to each part.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("input-dir", "problems", "Directory holding <day>/input.txt")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "Concurrent solves and fan-out jobs (default: GOMAXPROCS)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format: json or text")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	_ = viper.BindPFlag(config.KeyInputDir, rootCmd.PersistentFlags().Lookup("input-dir"))
	_ = viper.BindPFlag(config.KeyWorkers, rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	viper.SetEnvPrefix("AOC")
	viper.AutomaticEnv()
}

func loadConfig() (config.Config, error) {
	cfg := config.Load(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
