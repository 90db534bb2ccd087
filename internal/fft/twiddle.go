package fft

import (
	"math"

	"github.com/cwbudde/algo-spectral/internal/fftypes"
)

// Complex is a local name for the sample type.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// ComputeTwiddleFactors returns the forward twiddle table (roots of unity)
// for a size-n FFT: W_n^k = e^(-2*pi*i*k/n) for k = 0..n-1.
// Inverse kernels conjugate entries on the fly instead of carrying a
// second table.
func ComputeTwiddleFactors(n int) []Complex {
	if n <= 0 {
		return nil
	}

	twiddle := make([]Complex, n)
	for k := 0; k < n; k++ {
		theta := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = fftypes.Unit(float32(theta))
	}

	return twiddle
}

// Scale multiplies every element of buf by s in place.
func Scale(buf []Complex, s float32) {
	if s == 1 {
		return
	}

	for i := range buf {
		buf[i] = buf[i].Scale(s)
	}
}
