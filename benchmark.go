package sinebench

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	// SampleRate is the audio sample rate throughput is normalized against.
	SampleRate = 48000

	// Iterations is the number of sines computed per run: 3000 seconds of audio.
	Iterations = SampleRate * 3000
)

// Result contains measurements from a single strategy run.
type Result struct {
	Name       string        // Strategy display name
	Iterations int64         // Sines computed
	Elapsed    time.Duration // Wall-clock time spent in PerformTest
	Sum        float32       // Checksum returned by PerformTest
	Throughput float64       // Sines per sample period
}

// Config controls benchmark execution.
type Config struct {
	Iterations int64        // Sines per run
	SampleRate int64        // Samples per second used for normalization
	Logger     *slog.Logger // Progress logger (nil = slog.Default())
}

// DefaultConfig returns the full-length benchmark configuration.
func DefaultConfig() Config {
	return Config{
		Iterations: Iterations,
		SampleRate: SampleRate,
	}
}

// FastConfig returns a dry-run configuration that only checks the
// strategies execute. Throughput is meaningless at this size.
func FastConfig() Config {
	return Config{
		Iterations: 100,
		SampleRate: SampleRate,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// DefaultStrategies returns the standard line-up in reporting order.
func DefaultStrategies() ([]Strategy, error) {
	table2K, err := NewTableSine("Array Test (2048 samples)", 2048)
	if err != nil {
		return nil, err
	}
	table16M, err := NewTableSine("Array Test (16M samples)", 1<<24)
	if err != nil {
		return nil, err
	}

	return []Strategy{
		NewLibrarySine("Library Sine Test"),
		NewParabolicSine("Polynomial Approximation Test"),
		table2K,
		table16M,
	}, nil
}

// Measure initializes the strategy and times a single PerformTest call.
func Measure(s Strategy, iterations, sampleRate int64) Result {
	s.Init()

	start := time.Now()
	sum := s.PerformTest(iterations)
	elapsed := time.Since(start)

	return Result{
		Name:       s.Name(),
		Iterations: iterations,
		Elapsed:    elapsed,
		Sum:        sum,
		Throughput: Throughput(iterations, sampleRate, elapsed),
	}
}

// Throughput converts a run into sines per sample period.
//
// Elapsed time is truncated to whole milliseconds. Runs shorter than one
// millisecond produce +Inf.
func Throughput(iterations, sampleRate int64, elapsed time.Duration) float64 {
	seconds := float64(elapsed.Milliseconds()) * 0.001
	return float64(iterations/sampleRate) / seconds
}

// Report writes a human-readable result block.
func Report(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "%s:\n  %g sines/smp (%d iterations) (sum = %g)\n",
		r.Name, r.Throughput, r.Iterations, r.Sum)
	return err
}

// Run measures one strategy and reports the result to w.
func Run(w io.Writer, s Strategy, cfg Config) (Result, error) {
	log := cfg.logger()
	log.Debug("running strategy", "name", s.Name(), "iterations", cfg.Iterations)

	result := Measure(s, cfg.Iterations, cfg.SampleRate)

	log.Debug("strategy finished",
		"name", result.Name,
		"elapsed_ms", result.Elapsed.Milliseconds(),
		"throughput", result.Throughput)

	if err := Report(w, result); err != nil {
		return result, fmt.Errorf("report %q: %w", result.Name, err)
	}
	return result, nil
}

// RunAll runs the strategies in order and returns their results.
func RunAll(w io.Writer, strategies []Strategy, cfg Config) ([]Result, error) {
	results := make([]Result, 0, len(strategies))

	for _, s := range strategies {
		result, err := Run(w, s, cfg)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}
