package nist

import (
	"math"

	"github.com/zeebo/prng/internal/bitutil"
	"gonum.org/v1/gonum/stat/distuv"
)

// CumulativeSums runs the forward cumulative sums test (SP 800-22 section
// 2.13) over the bits of the sample, most significant bit of each word
// first.
func (s Sample) CumulativeSums() (Result, error) {
	timer := cusumThunk.Start()
	defer timer.Stop()

	if len(s) == 0 {
		return Result{}, ErrInvalidSampleSize.New("empty sample")
	}

	z := maxExcursion(s)
	pValue, err := cusumPValue(z, s.Bits())
	if err != nil {
		log().Warn().
			Str("test", "cumulative_sums").
			Int("words", len(s)).
			Err(err).
			Msg("test failed")
		return Result{}, err
	}
	res := newResult(pValue)

	log().Debug().
		Str("test", "cumulative_sums").
		Int("words", len(s)).
		Int("z", z).
		Float64("p_value", res.PValue).
		Stringer("verdict", res.Verdict).
		Msg("test complete")

	return res, nil
}

// maxExcursion returns the largest absolute value reached by the running
// sum of the sample's bits mapped to ±1.
func maxExcursion(s Sample) (z int) {
	sum := 0
	for _, w := range s {
		for i := uint(0); i < bitutil.WordBits; i++ {
			sum += bitutil.Bit(w, i)
			if sum > z {
				z = sum
			} else if -sum > z {
				z = -sum
			}
		}
	}
	return z
}

// cusumPValue computes the p-value for a maximum excursion of z over n
// bits. Conversions of the first range truncate toward zero, and the
// second range takes the floor.
func cusumPValue(z, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrInvalidSampleSize.New("%d bits", n)
	}
	if z == 0 {
		return 0, ErrDegenerateSample.New("max excursion is zero over %d bits", n)
	}

	var (
		fz  = float64(z)
		fn  = float64(n)
		sqn = math.Sqrt(fn)
		phi = distuv.UnitNormal.CDF
	)

	lo := int(0.25*math.Floor(-fn/fz) + 1)
	hi := int(0.25*math.Floor(fn/fz) - 1)

	sum1 := 0.0
	for k := lo; k <= hi; k++ {
		fk := float64(k)
		sum1 += phi((4*fk+1)*fz/sqn) - phi((4*fk-1)*fz/sqn)
	}

	lo = int(math.Floor(0.25 * math.Floor(-fn/fz-3)))
	hi = int(math.Floor(0.25*math.Floor(fn/fz) - 1))

	sum2 := 0.0
	for k := lo; k <= hi; k++ {
		fk := float64(k)
		sum2 += phi((4*fk+3)*fz/sqn) - phi((4*fk+1)*fz/sqn)
	}

	// rounding in the sums can leave the result just outside [0, 1]
	return math.Max(0, math.Min(1, 1-sum1+sum2)), nil
}
