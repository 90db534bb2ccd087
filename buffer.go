package algospectral

import m "github.com/cwbudde/algo-spectral/internal/math"

// NewBuffer returns a zeroed sample buffer whose length is the smallest
// power of two >= count, so the result is always a legal transform input.
// Requests below one sample allocate a single sample.
func NewBuffer(count int) []Complex {
	return make([]Complex, m.NextPowerOf2(count))
}

// BufferFromReal returns a new buffer seeded with the given real samples.
// Imaginary parts are zero and the tail up to the next power of two is
// zero-padded. The input slice is not retained.
func BufferFromReal(samples []float32) []Complex {
	buf := NewBuffer(len(samples))
	for i, s := range samples {
		buf[i] = Complex{Re: s}
	}

	return buf
}
