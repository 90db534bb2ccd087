package algospectral

// Magnitudes writes the element-wise magnitude of src into dst and returns
// dst. A nil dst is allocated to len(src); a non-nil dst of a different
// length is rejected with ErrDimensionMismatch.
func Magnitudes(dst []float32, src []Complex) ([]float32, error) {
	if dst == nil {
		dst = make([]float32, len(src))
	}

	if len(dst) != len(src) {
		return nil, ErrDimensionMismatch
	}

	for i := range src {
		dst[i] = src[i].Abs()
	}

	return dst, nil
}

// Phases writes the element-wise phase of src in radians into dst and
// returns dst, with the same dst semantics as Magnitudes.
func Phases(dst []float32, src []Complex) ([]float32, error) {
	if dst == nil {
		dst = make([]float32, len(src))
	}

	if len(dst) != len(src) {
		return nil, ErrDimensionMismatch
	}

	for i := range src {
		dst[i] = src[i].Phase()
	}

	return dst, nil
}
