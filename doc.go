// Package sinebench compares ways of computing sine in an audio hot loop.
//
// Three strategies are measured over the same number of inputs:
//
//   - LibrarySine:   math.Sin for every input
//   - TableSine:     lookup in a precomputed table
//   - ParabolicSine: closed-form parabolic approximation, no table
//
// Throughput is reported in sines per sample period, normalized against a
// 48kHz sample rate:
//
//	throughput = (iterations / 48000) / seconds
//
// A value of 1.0 means one sine can be computed per sample in real time.
// Every run also reports the accumulated sum of its outputs so the work
// cannot be optimized away.
//
// # Quick Start
//
//	strategies, err := sinebench.DefaultStrategies()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := sinebench.RunAll(os.Stdout, strategies, sinebench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Output per strategy:
//
//	Library Sine Test:
//	  <throughput> sines/smp (144000000 iterations) (sum = <sum>)
//
// # Sweep constant
//
// LibrarySine and TableSine step their angle by TwoOverPi / n, so the sweep
// covers 2/π radians rather than a full period. ParabolicSine uses the same
// constant inside its formula.
//
// # Testing
//
// Use assertions to validate strategies:
//
//	func TestMyStrategy(t *testing.T) {
//	    s := NewMyStrategy("mine")
//	    sinebench.AssertFiniteSum(t, s, 1000)
//	    sinebench.AssertDeterministic(t, s, 1000, 3)
//	}
package sinebench
