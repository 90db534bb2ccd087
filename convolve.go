package algospectral

// Convolve multiplies samples by filter element-wise in place:
// samples[i] = samples[i] * filter[i]. Applied to frequency-domain buffers
// this is circular convolution in the originating domain. The filter is
// read-only and never mutated.
//
// Both buffers must be created, non-empty, and of equal length; a rejected
// call leaves samples untouched.
//
// Returns ErrInvalidLength if either buffer is nil or empty.
// Returns ErrDimensionMismatch if the lengths differ.
func Convolve(samples, filter []Complex) error {
	if len(samples) == 0 || len(filter) == 0 {
		return ErrInvalidLength
	}

	if len(samples) != len(filter) {
		return ErrDimensionMismatch
	}

	for i := range samples {
		samples[i] = samples[i].Mul(filter[i])
	}

	return nil
}
