package nist

import (
	"math"

	"github.com/zeebo/prng/internal/bitutil"
)

// Frequency runs the monobit frequency test (SP 800-22 section 2.1) over
// the sample, counting bits a word at a time.
func (s Sample) Frequency() (Result, error) {
	timer := frequencyThunk.Start()
	defer timer.Stop()

	if len(s) == 0 {
		return Result{}, ErrInvalidSampleSize.New("empty sample")
	}

	sum := 0
	for _, w := range s {
		sum += bitutil.Excess(w)
	}

	stat := math.Abs(float64(sum)) / math.Sqrt(float64(s.Bits()))
	res := newResult(math.Erfc(stat / math.Sqrt2))

	log().Debug().
		Str("test", "frequency").
		Int("words", len(s)).
		Int("sum", sum).
		Float64("statistic", stat).
		Float64("p_value", res.PValue).
		Stringer("verdict", res.Verdict).
		Msg("test complete")

	return res, nil
}
