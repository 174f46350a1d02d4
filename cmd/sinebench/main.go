// Command sinebench compares library, table and parabolic sine throughput.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/schmid/sinebench"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	if err := run(os.Stdout, sinebench.DefaultConfig()); err != nil {
		slog.Error("benchmark failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg sinebench.Config) error {
	strategies, err := sinebench.DefaultStrategies()
	if err != nil {
		return err
	}

	slog.Info("starting sine benchmark",
		"strategies", len(strategies),
		"iterations", cfg.Iterations,
		"sample_rate", cfg.SampleRate)

	results, err := sinebench.RunAll(w, strategies, cfg)
	if err != nil {
		return err
	}

	for _, r := range results {
		slog.Info("measured", "name", r.Name, "elapsed", r.Elapsed)
	}
	return nil
}
