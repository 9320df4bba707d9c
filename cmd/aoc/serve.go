package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/aoc2023/internal/api"
	"github.com/dgallion1/aoc2023/internal/config"
	"github.com/dgallion1/aoc2023/internal/days"
	"github.com/dgallion1/aoc2023/internal/puzzle"
	"github.com/dgallion1/aoc2023/internal/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solvers over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "8090", "Listen port")
	serveCmd.Flags().String("api-key", "", "Bearer token required on /api routes (default: none)")
	serveCmd.Flags().Int64("max-input-bytes", 1<<20, "Largest accepted puzzle input")

	_ = viper.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag(config.KeyAPIKey, serveCmd.Flags().Lookup("api-key"))
	_ = viper.BindPFlag(config.KeyMaxInputBytes, serveCmd.Flags().Lookup("max-input-bytes"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stderr)

	st := stats.New(cfg.StatsWindow)
	runner := puzzle.NewRunner(log, io.Discard, st, cfg.Workers)
	srv := api.NewServer(days.Registry(), runner, st, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting aoc server", "port", cfg.Port, "auth", cfg.APIKey != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
