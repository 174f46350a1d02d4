package sinebench

import (
	"math"
	"testing"
)

func TestLibrarySine_FiniteAndDeterministic(t *testing.T) {
	s := NewLibrarySine("library")
	AssertFiniteSum(t, s, 1000)
	AssertDeterministic(t, s, 1000, 3)
}

func TestParabolicSine_FiniteAndDeterministic(t *testing.T) {
	s := NewParabolicSine("parabolic")
	AssertFiniteSum(t, s, 1000)
	AssertDeterministic(t, s, 1000, 3)
}

func TestTableSine_FiniteAndDeterministic(t *testing.T) {
	s, err := NewTableSine("table", 2048)
	if err != nil {
		t.Fatalf("NewTableSine failed: %v", err)
	}
	AssertFiniteSum(t, s, 1000)
	AssertDeterministic(t, s, 1000, 3)
}

// TestTableSine_Init verifies the table length and contents.
func TestTableSine_Init(t *testing.T) {
	const size = 2048

	s, err := NewTableSine("table", size)
	if err != nil {
		t.Fatalf("NewTableSine failed: %v", err)
	}

	if s.Table() != nil {
		t.Fatal("table allocated before Init")
	}

	s.Init()
	AssertTableShape(t, s, 1e-9)

	step := float32(TwoOverPi / size)
	for _, i := range []int{1, 100, size / 2, size - 1} {
		want := float32(math.Sin(float64(float32(i) * step)))
		if got := s.Table()[i]; got != want {
			t.Errorf("table[%d] = %v, want %v", i, got, want)
		}
	}
}

// TestTableSine_InitReusesTable verifies Init allocates only once.
func TestTableSine_InitReusesTable(t *testing.T) {
	s, err := NewTableSine("table", 64)
	if err != nil {
		t.Fatalf("NewTableSine failed: %v", err)
	}

	s.Init()
	first := &s.Table()[0]
	s.Init()

	if &s.Table()[0] != first {
		t.Error("second Init reallocated the table")
	}
	AssertTableShape(t, s, 1e-9)
}

// TestTableSine_SingleEntry verifies a one-entry table always reads index 0.
func TestTableSine_SingleEntry(t *testing.T) {
	s, err := NewTableSine("tiny", 1)
	if err != nil {
		t.Fatalf("NewTableSine failed: %v", err)
	}
	s.Init()
	AssertTableShape(t, s, 0)

	for _, n := range []int64{1, 2, 7, 1000, 1 << 20} {
		if sum := s.PerformTest(n); sum != 0 {
			t.Errorf("n=%d: sum = %v, want 0", n, sum)
		}
	}
}

// TestTableSine_ConstantTable verifies every iteration reads a valid entry.
func TestTableSine_ConstantTable(t *testing.T) {
	s, err := NewTableSine("ones", 16)
	if err != nil {
		t.Fatalf("NewTableSine failed: %v", err)
	}
	s.Init()
	for i := range s.table {
		s.table[i] = 1
	}

	const n = 1000
	if sum := s.PerformTest(n); sum != n {
		t.Errorf("sum = %v, want %d", sum, n)
	}
}

func TestNewTableSine_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewTableSine("bad", size); err == nil {
			t.Errorf("size %d: expected error", size)
		}
	}
}

// TestParabolicSine_Formula checks the sum against a direct evaluation.
func TestParabolicSine_Formula(t *testing.T) {
	const n = 10

	var want float32
	step := 1 / float32(n)
	for i := 0; i < n; i++ {
		p := float32(i) * step
		want += 8*p + float32(-8*math.Pi)*p*float32(math.Abs(float64(p*float32(TwoOverPi))))
	}

	s := NewParabolicSine("parabolic")
	s.Init()
	got := s.PerformTest(n)

	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("sum = %v, want %v", got, want)
	}
}

func TestStrategies_SingleIteration(t *testing.T) {
	table, err := NewTableSine("table", 8)
	if err != nil {
		t.Fatalf("NewTableSine failed: %v", err)
	}

	// The only input is 0 for every strategy.
	for _, s := range []Strategy{NewLibrarySine("library"), NewParabolicSine("parabolic"), table} {
		s.Init()
		if sum := s.PerformTest(1); sum != 0 {
			t.Errorf("%s: sum = %v, want 0", s.Name(), sum)
		}
	}
}
