package algospectral

// ForwardStrided computes the forward FFT on strided data in place.
//
// The stride parameter is the distance between consecutive elements of the
// logical line. For example, stride=width transforms a matrix column in
// row-major storage.
//
// Returns ErrInvalidLength for a nil or empty buffer.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrDimensionMismatch if buf is too short for the given stride.
func (p *Plan) ForwardStrided(buf []Complex, stride int) error {
	return p.transformStrided(buf, stride, false, false)
}

// InverseStrided computes the inverse FFT on strided data in place, scaling
// by 1/Len() when normalize is true.
func (p *Plan) InverseStrided(buf []Complex, stride int, normalize bool) error {
	return p.transformStrided(buf, stride, true, normalize)
}

// TransformStrided computes either forward or inverse FFT based on the
// inverse flag. This is a convenience wrapper over the directional methods.
func (p *Plan) TransformStrided(buf []Complex, stride int, inverse, normalize bool) error {
	return p.transformStrided(buf, stride, inverse, normalize)
}

func (p *Plan) transformStrided(buf []Complex, stride int, inverse, normalize bool) error {
	if err := p.validateStrided(buf, stride); err != nil {
		return err
	}

	if stride == 1 {
		p.run(buf[:p.n], inverse, normalize)
		return nil
	}

	p.runStrided(buf, stride, inverse, normalize)

	return nil
}

func (p *Plan) validateStrided(buf []Complex, stride int) error {
	if len(buf) == 0 {
		return ErrInvalidLength
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	if stride == 1 {
		if len(buf) < p.n {
			return ErrDimensionMismatch
		}

		return nil
	}

	maxInt := int(^uint(0) >> 1)

	maxIndex := p.n - 1
	if maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(buf) < required {
		return ErrDimensionMismatch
	}

	return nil
}
