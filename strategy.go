package sinebench

import (
	"fmt"
	"math"
)

// TwoOverPi is 2/π. The library and table strategies use it as the sweep
// step across their inputs, the parabolic strategy inside its formula.
const TwoOverPi = 2 / math.Pi

// Strategy computes sine over a synthetic stream of inputs.
//
// Init performs one-time setup and must be called before PerformTest.
// PerformTest runs the hot loop and returns the accumulated sum so the
// compiler cannot discard the work.
type Strategy interface {
	Name() string
	Init()
	PerformTest(iterations int64) float32
}

// LibrarySine calls math.Sin for every input.
type LibrarySine struct {
	name string
}

// NewLibrarySine creates a library sine strategy.
func NewLibrarySine(name string) *LibrarySine {
	return &LibrarySine{name: name}
}

func (s *LibrarySine) Name() string { return s.name }

func (s *LibrarySine) Init() {}

func (s *LibrarySine) PerformTest(iterations int64) float32 {
	var sum float32
	anglePerIteration := float32(TwoOverPi / float64(iterations))
	for i := int64(0); i < iterations; i++ {
		angle := float32(i) * anglePerIteration
		sum += float32(math.Sin(float64(angle)))
	}
	return sum
}

// TableSine reads sine values from a precomputed table.
type TableSine struct {
	name  string
	size  int
	table []float32
}

// NewTableSine creates a table strategy with size entries.
// The table itself is allocated by Init.
func NewTableSine(name string, size int) (*TableSine, error) {
	if size < 1 {
		return nil, fmt.Errorf("table size must be positive, got %d", size)
	}
	return &TableSine{name: name, size: size}, nil
}

func (s *TableSine) Name() string { return s.name }

// Size returns the configured number of table entries.
func (s *TableSine) Size() int { return s.size }

// Table returns the initialized table, or nil before Init.
func (s *TableSine) Table() []float32 { return s.table }

// Init fills the table. The table is allocated once per instance; repeated
// calls refill the existing slice.
func (s *TableSine) Init() {
	if s.table == nil {
		s.table = make([]float32, s.size)
	}
	anglePerIteration := float32(TwoOverPi / float64(s.size))
	for i := range s.table {
		s.table[i] = float32(math.Sin(float64(float32(i) * anglePerIteration)))
	}
}

// PerformTest walks one period of the table. Init must have been called.
func (s *TableSine) PerformTest(iterations int64) float32 {
	var sum float32
	table := s.table
	size := float32(len(table))
	last := len(table) - 1
	periodsPerIteration := 1 / float32(iterations)
	for i := int64(0); i < iterations; i++ {
		periods := float32(i) * periodsPerIteration
		idx := int(periods * size)
		// float32 rounding can push periods to 1.0 near the end of the sweep
		if idx > last {
			idx = last
		}
		sum += table[idx]
	}
	return sum
}

// ParabolicSine approximates sine with a parabola over one period:
//
//	sine(p) = 8p + (-8π)·p·|p·(2/π)|
//
// derived from Nicolas Capens' y = (4/π)x + (-4/π²)x|x| with x = 2πp.
type ParabolicSine struct {
	name string
}

// NewParabolicSine creates a parabolic approximation strategy.
func NewParabolicSine(name string) *ParabolicSine {
	return &ParabolicSine{name: name}
}

func (s *ParabolicSine) Name() string { return s.name }

func (s *ParabolicSine) Init() {}

func (s *ParabolicSine) PerformTest(iterations int64) float32 {
	var sum float32
	periodsPerIteration := 1 / float32(iterations)
	const f = float32(-8 * math.Pi)
	const twoOverPi = float32(TwoOverPi)
	for i := int64(0); i < iterations; i++ {
		p := float32(i) * periodsPerIteration
		sum += 8*p + f*p*abs32(p*twoOverPi)
	}
	return sum
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
