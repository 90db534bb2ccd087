package algospectral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"
)

// The gonum fourier package serves as the reference implementation: it uses
// the same negative-exponent forward convention, so coefficients must agree
// bin for bin up to float32 precision.

func TestForwardMatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 16, 128} {
		rng := rand.New(rand.NewSource(int64(n)))

		buf := make([]Complex, n)
		ref := make([]complex128, n)

		for i := range buf {
			re := rng.Float64()*2 - 1
			im := rng.Float64()*2 - 1
			buf[i] = Complex{Re: float32(re), Im: float32(im)}
			ref[i] = complex(float64(buf[i].Re), float64(buf[i].Im))
		}

		require.NoError(t, FFT1D(buf, false, false))

		want := fourier.NewCmplxFFT(n).Coefficients(nil, ref)

		for i := range buf {
			// Error grows with n under float32 accumulation.
			tolerance := 1e-3 * math.Sqrt(float64(n))

			require.InDeltaf(t, real(want[i]), float64(buf[i].Re), tolerance, "n=%d Re[%d]", n, i)
			require.InDeltaf(t, imag(want[i]), float64(buf[i].Im), tolerance, "n=%d Im[%d]", n, i)
		}
	}
}

func TestInverseMatchesGonum(t *testing.T) {
	t.Parallel()

	const n = 64

	rng := rand.New(rand.NewSource(3))

	buf := make([]Complex, n)
	ref := make([]complex128, n)

	for i := range buf {
		buf[i] = Complex{
			Re: float32(rng.Float64()*2 - 1),
			Im: float32(rng.Float64()*2 - 1),
		}
		ref[i] = complex(float64(buf[i].Re), float64(buf[i].Im))
	}

	require.NoError(t, FFT1D(buf, true, true))

	// gonum's Sequence inverts Coefficients without normalization.
	cf := fourier.NewCmplxFFT(n)

	want := cf.Sequence(nil, ref)
	for i := range want {
		want[i] /= complex(float64(n), 0)
	}

	for i := range buf {
		require.InDeltaf(t, real(want[i]), float64(buf[i].Re), 1e-3, "Re[%d]", i)
		require.InDeltaf(t, imag(want[i]), float64(buf[i].Im), 1e-3, "Im[%d]", i)
	}
}

func TestParsevalEnergy(t *testing.T) {
	t.Parallel()

	// Parseval: sum |X[k]|^2 == n * sum |x[i]|^2.
	const n = 256

	buf := randomBuffer(n, 8)

	var timeEnergy float64
	for _, v := range buf {
		timeEnergy += float64(v.AbsSquared())
	}

	require.NoError(t, FFT1D(buf, false, false))

	var freqEnergy float64
	for _, v := range buf {
		freqEnergy += float64(v.AbsSquared())
	}

	require.InEpsilon(t, timeEnergy*n, freqEnergy, 1e-3)
}
