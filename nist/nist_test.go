package nist

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/zeebo/assert"
	"github.com/zeebo/prng"
	"github.com/zeebo/prng/lcg"
	"github.com/zeebo/prng/mt19937"
)

func TestDraw(t *testing.T) {
	t.Run("Words", func(t *testing.T) {
		s, err := Draw(&fixed{words: []uint32{1, 2, 3}}, 4)
		assert.NoError(t, err)
		assert.DeepEqual(t, s, Sample{1, 2, 3, 3})
		assert.Equal(t, s.Bits(), 128)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := Draw(mt19937.New(1), 0)
		assert.That(t, ErrInvalidSampleSize.Has(err))

		_, err = Frequency(mt19937.New(1), -1)
		assert.That(t, ErrInvalidSampleSize.Has(err))

		_, err = CumulativeSums(mt19937.New(1), 0)
		assert.That(t, ErrInvalidSampleSize.Has(err))
	})

	t.Run("Unseeded", func(t *testing.T) {
		_, err := Draw(unseeded{}, 10)
		assert.That(t, ErrUnseededGenerator.Has(err))

		_, err = Frequency(new(mt19937.T), 10)
		assert.That(t, ErrUnseededGenerator.Has(err))

		var l lcg.T
		_, err = CumulativeSums(&l, 10)
		assert.That(t, ErrUnseededGenerator.Has(err))
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := Draw(nil, 10)
		assert.That(t, Error.Has(err))

		_, err = Draw((*mt19937.T)(nil), 10)
		assert.That(t, ErrUnseededGenerator.Has(err))

		_, err = Draw((*lcg.T)(nil), 10)
		assert.That(t, ErrUnseededGenerator.Has(err))
	})

	t.Run("Fingerprint", func(t *testing.T) {
		s1, err := Draw(mt19937.New(100), 1000)
		assert.NoError(t, err)
		s2, err := Draw(mt19937.New(100), 1000)
		assert.NoError(t, err)
		s3, err := Draw(mt19937.New(101), 1000)
		assert.NoError(t, err)

		assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())
		assert.That(t, s1.Fingerprint() != s3.Fingerprint())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, Sample{0x80000001}.String(), "10000000000000000000000000000001")
	})
}

func TestFrequency(t *testing.T) {
	t.Run("Balanced", func(t *testing.T) {
		res, err := alternating(10).Frequency()
		assert.NoError(t, err)
		assert.Equal(t, res.PValue, 1.0)
		assert.Equal(t, res.Verdict, Random)
	})

	t.Run("AllOnes", func(t *testing.T) {
		res, err := Sample{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}.Frequency()
		assert.NoError(t, err)
		assert.That(t, res.PValue < Alpha)
		assert.Equal(t, res.Verdict, NotRandom)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Sample{}.Frequency()
		assert.That(t, ErrInvalidSampleSize.Has(err))
	})

	t.Run("Statistic", func(t *testing.T) {
		// one word with 20 set bits: S = 8, stat = 8/sqrt(32)
		res, err := Sample{0x000FFFFF}.Frequency()
		assert.NoError(t, err)
		assertClose(t, res.PValue, math.Erfc(8/math.Sqrt(32)/math.Sqrt2))
	})
}

func TestCumulativeSums(t *testing.T) {
	t.Run("Degenerate", func(t *testing.T) {
		p, err := cusumPValue(0, 64)
		assert.That(t, ErrDegenerateSample.Has(err))
		assert.That(t, !math.IsNaN(p))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Sample{}.CumulativeSums()
		assert.That(t, ErrInvalidSampleSize.Has(err))

		_, err = cusumPValue(1, 0)
		assert.That(t, ErrInvalidSampleSize.Has(err))
	})

	t.Run("Excursion", func(t *testing.T) {
		assert.Equal(t, maxExcursion(Sample{0xFFFFFFFF}), 32)
		assert.Equal(t, maxExcursion(Sample{0}), 32)
		assert.Equal(t, maxExcursion(Sample{0xFFFF0000}), 16)
		assert.Equal(t, maxExcursion(Sample{0x55555555}), 1)
		assert.Equal(t, maxExcursion(alternating(4)), 32)
	})

	t.Run("Runaway", func(t *testing.T) {
		s := make(Sample, 100)
		for i := range s {
			s[i] = 0xFFFFFFFF
		}
		res, err := s.CumulativeSums()
		assert.NoError(t, err)
		assert.Equal(t, res.Verdict, NotRandom)
	})

	t.Run("Oscillating", func(t *testing.T) {
		s := make(Sample, 100)
		for i := range s {
			s[i] = 0xAAAAAAAA
		}
		res, err := s.CumulativeSums()
		assert.NoError(t, err)
		assert.Equal(t, res.Verdict, Random)
		assert.That(t, res.PValue <= 1)
		assertClose(t, res.PValue, 1)
	})
}

func TestGenerators(t *testing.T) {
	const words = 10000

	type observed struct {
		frequency float64
		cusum     float64
	}

	cases := []struct {
		name string
		src  func() prng.Source
		want observed
	}{
		{"MT/100", func() prng.Source { return mt19937.New(100) },
			observed{0.845820125229083, 0.9997512161430211}},
		{"MT/5489", func() prng.Source { return mt19937.New(5489) },
			observed{0.6206179464376897, 0.20925777812741653}},
		{"MT/42", func() prng.Source { return mt19937.New(42) },
			observed{0.7936070913096518, 0.612628769920857}},
		{"LCG/214843063", func() prng.Source { l := lcg.New(214843063); return &l },
			observed{0.8100075387981912, 0.754064293710081}},
		{"LCG/1", func() prng.Source { l := lcg.New(1); return &l },
			observed{0.3035546945119189, 0.5998844896158246}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			freq, err := Frequency(c.src(), words)
			assert.NoError(t, err)
			assertClose(t, freq.PValue, c.want.frequency)
			assert.Equal(t, freq.Verdict, Random)

			cusum, err := CumulativeSums(c.src(), words)
			assert.NoError(t, err)
			assertClose(t, cusum.PValue, c.want.cusum)
			assert.Equal(t, cusum.Verdict, Random)
		})
	}

	t.Run("SharedSample", func(t *testing.T) {
		s, err := Draw(mt19937.New(100), words)
		assert.NoError(t, err)
		before := s.Fingerprint()

		freq, err := s.Frequency()
		assert.NoError(t, err)
		cusum, err := s.CumulativeSums()
		assert.NoError(t, err)

		assert.Equal(t, s.Fingerprint(), before)
		assertClose(t, freq.PValue, 0.845820125229083)
		assertClose(t, cusum.PValue, 0.9997512161430211)
	})
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, Classify(Alpha), Random)
	assert.Equal(t, Classify(0.0099), NotRandom)
	assert.Equal(t, Random.String(), "random")
	assert.Equal(t, NotRandom.String(), "not random")
	assert.Equal(t, Verdict(7).String(), "Verdict(7)")
	assert.Equal(t, Result{PValue: 0.5, Verdict: Random}.String(), "random (p=0.500000)")
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer SetLogger(zerolog.Nop())

	_, err := alternating(2).Frequency()
	assert.NoError(t, err)
	assert.That(t, strings.Contains(buf.String(), `"test":"frequency"`))
	assert.That(t, strings.Contains(buf.String(), `"p_value":1`))
}

func TestTimings(t *testing.T) {
	before := Timings()

	_, err := alternating(2).Frequency()
	assert.NoError(t, err)
	_, err = alternating(2).CumulativeSums()
	assert.NoError(t, err)

	after := Timings()
	assert.Equal(t, after["frequency"].Runs, before["frequency"].Runs+1)
	assert.Equal(t, after["cumulative_sums"].Runs, before["cumulative_sums"].Runs+1)
}

var blackholeResult Result

func BenchmarkTests(b *testing.B) {
	s, err := Draw(mt19937.New(100), 10000)
	assert.NoError(b, err)

	b.Run("Frequency", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			blackholeResult, _ = s.Frequency()
		}
	})

	b.Run("CumulativeSums", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			blackholeResult, _ = s.CumulativeSums()
		}
	})
}
