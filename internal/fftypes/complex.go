package fftypes

import "math"

// Complex is a single-precision complex sample with explicit real and
// imaginary components. It is a pure value type: every operation returns a
// new value and no method mutates its receiver.
type Complex struct {
	Re float32
	Im float32
}

// Polar is the polar form of a complex sample: a radius (magnitude) and an
// angle Theta in radians. Twiddle factors are unit-radius Polar values.
type Polar struct {
	Radius float32
	Theta  float32
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{c.Re + o.Re, c.Im + o.Im}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{c.Re - o.Re, c.Im - o.Im}
}

// Mul returns the complex product c * o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		c.Re*o.Re - c.Im*o.Im,
		c.Re*o.Im + c.Im*o.Re,
	}
}

// Div returns the complex quotient c / o.
// Division by a zero-magnitude value yields NaN/Inf components; avoiding
// that is the caller's responsibility.
func (c Complex) Div(o Complex) Complex {
	d := o.Re*o.Re + o.Im*o.Im

	return Complex{
		(c.Re*o.Re + c.Im*o.Im) / d,
		(c.Im*o.Re - c.Re*o.Im) / d,
	}
}

// Scale returns c with both components multiplied by s.
func (c Complex) Scale(s float32) Complex {
	return Complex{c.Re * s, c.Im * s}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{c.Re, -c.Im}
}

// Abs returns the magnitude of c.
func (c Complex) Abs() float32 {
	return float32(math.Sqrt(float64(c.Re)*float64(c.Re) + float64(c.Im)*float64(c.Im)))
}

// AbsSquared returns the squared magnitude of c. It avoids the square root
// and is exact for comparisons.
func (c Complex) AbsSquared() float32 {
	return c.Re*c.Re + c.Im*c.Im
}

// Phase returns the argument of c in radians, in (-pi, pi].
func (c Complex) Phase() float32 {
	return float32(math.Atan2(float64(c.Im), float64(c.Re)))
}

// Normalized returns c scaled to unit magnitude.
// The zero value maps to the zero value rather than NaN.
func (c Complex) Normalized() Complex {
	r := c.Abs()
	if r == 0 {
		return Complex{}
	}

	return Complex{c.Re / r, c.Im / r}
}

// Polar converts c to polar form. The round trip through Cartesian is
// lossless up to floating-point error.
func (c Complex) Polar() Polar {
	return Polar{Radius: c.Abs(), Theta: c.Phase()}
}

// Cartesian converts p back to cartesian form.
func (p Polar) Cartesian() Complex {
	sin, cos := math.Sincos(float64(p.Theta))

	return Complex{
		Re: p.Radius * float32(cos),
		Im: p.Radius * float32(sin),
	}
}

// Unit returns the unit-radius complex value with angle theta.
// This is the twiddle-factor constructor: Unit(theta) = e^(i*theta).
func Unit(theta float32) Complex {
	return Polar{Radius: 1, Theta: theta}.Cartesian()
}
