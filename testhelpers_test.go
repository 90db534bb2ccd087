package algospectral

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

const testTol = 1e-3

func assertApproxComplexf(t *testing.T, got, want Complex, format string, args ...any) {
	t.Helper()

	if math.Abs(float64(got.Re-want.Re)) > testTol || math.Abs(float64(got.Im-want.Im)) > testTol {
		t.Errorf("%s: got %v, want %v", fmt.Sprintf(format, args...), got, want)
	}
}

func randomBuffer(n int, seed int64) []Complex {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]Complex, n)

	for i := range buf {
		buf[i] = Complex{
			Re: float32(rng.Float64()*2 - 1),
			Im: float32(rng.Float64()*2 - 1),
		}
	}

	return buf
}

func impulseGrid(width, height int) []Complex {
	buf := make([]Complex, width*height)
	buf[0] = Complex{Re: 1}

	return buf
}
