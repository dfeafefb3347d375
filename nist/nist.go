// Package nist runs statistical randomness tests from NIST SP 800-22 over
// samples drawn from a prng.Source.
//
// Each test is a pure function of a captured Sample. The convenience
// functions Frequency and CumulativeSums draw a fresh sample and run a
// single test over it.
package nist

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"
	"github.com/zeebo/prng"
	"github.com/zeebo/prng/internal/mon"
)

// Alpha is the significance level. A p-value below it rejects randomness.
const Alpha = 0.01

var (
	// Error is the class of general errors from this package.
	Error = errs.Class("nist")

	// ErrUnseededGenerator is returned when a sample is requested from a
	// generator that reports it was never seeded.
	ErrUnseededGenerator = errs.Class("unseeded generator")

	// ErrDegenerateSample is returned when the cumulative sums never leave
	// zero, which leaves the test undefined.
	ErrDegenerateSample = errs.Class("degenerate sample")

	// ErrInvalidSampleSize is returned for samples with no words.
	ErrInvalidSampleSize = errs.Class("invalid sample size")
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger replaces the logger test runs are reported to. The default
// discards everything.
func SetLogger(l zerolog.Logger) { logger.Store(&l) }

func log() *zerolog.Logger { return logger.Load() }

// Verdict classifies a sequence by its p-value.
type Verdict int

const (
	NotRandom Verdict = iota
	Random
)

// Classify returns the verdict for a p-value.
func Classify(pValue float64) Verdict {
	if pValue >= Alpha {
		return Random
	}
	return NotRandom
}

func (v Verdict) String() string {
	switch v {
	case Random:
		return "random"
	case NotRandom:
		return "not random"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Result is the outcome of one test.
type Result struct {
	PValue  float64
	Verdict Verdict
}

func newResult(pValue float64) Result {
	return Result{PValue: pValue, Verdict: Classify(pValue)}
}

func (r Result) String() string {
	return fmt.Sprintf("%s (p=%.6f)", r.Verdict, r.PValue)
}

var (
	frequencyThunk mon.Thunk // timing for Sample.Frequency
	cusumThunk     mon.Thunk // timing for Sample.CumulativeSums
)

// Timing summarizes how long a test has taken across runs.
type Timing struct {
	Runs    int64
	Average time.Duration
}

// Timings returns the timing of every test by name.
func Timings() map[string]Timing {
	summarize := func(th *mon.Thunk) Timing {
		his := th.Histogram()
		return Timing{Runs: his.Total(), Average: his.Average()}
	}
	return map[string]Timing{
		"frequency":       summarize(&frequencyThunk),
		"cumulative_sums": summarize(&cusumThunk),
	}
}

// Frequency draws n words from src and runs the frequency test on them.
func Frequency(src prng.Source, n int) (Result, error) {
	s, err := Draw(src, n)
	if err != nil {
		return Result{}, err
	}
	return s.Frequency()
}

// CumulativeSums draws n words from src and runs the cumulative sums test
// on them.
func CumulativeSums(src prng.Source, n int) (Result, error) {
	s, err := Draw(src, n)
	if err != nil {
		return Result{}, err
	}
	return s.CumulativeSums()
}
