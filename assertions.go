package sinebench

import (
	"math"
	"testing"
)

// AssertFiniteSum verifies PerformTest returns a finite checksum.
//
// The strategy is initialized first. A NaN or Inf sum means the hot loop
// read outside its table or overflowed its accumulator.
func AssertFiniteSum(t *testing.T, s Strategy, iterations int64) {
	t.Helper()

	s.Init()
	sum := float64(s.PerformTest(iterations))

	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		t.Errorf("%s: sum is not finite: %v (%d iterations)", s.Name(), sum, iterations)
		return
	}

	t.Logf("✓ %s: sum = %g (%d iterations)", s.Name(), sum, iterations)
}

// AssertDeterministic verifies repeated PerformTest calls return
// bit-identical sums.
func AssertDeterministic(t *testing.T, s Strategy, iterations int64, repeats int) {
	t.Helper()

	s.Init()
	first := s.PerformTest(iterations)

	for i := 1; i < repeats; i++ {
		got := s.PerformTest(iterations)
		if math.Float32bits(got) != math.Float32bits(first) {
			t.Fatalf("%s: call %d returned %v, first call returned %v",
				s.Name(), i+1, got, first)
		}
	}

	t.Logf("✓ %s: %d calls agree on sum = %g", s.Name(), repeats, first)
}

// AssertTableShape verifies an initialized table has the configured length
// and starts at sin(0).
func AssertTableShape(t *testing.T, s *TableSine, tolerance float64) {
	t.Helper()

	table := s.Table()
	if table == nil {
		t.Fatalf("%s: table not initialized", s.Name())
	}

	if len(table) != s.Size() {
		t.Errorf("%s: table has %d entries, want %d", s.Name(), len(table), s.Size())
	}

	if len(table) > 0 && math.Abs(float64(table[0])) > tolerance {
		t.Errorf("%s: table[0] = %v, want 0 (tolerance %g)", s.Name(), table[0], tolerance)
	}
}
