package algospectral

import (
	"github.com/cwbudde/algo-spectral/internal/fft"
	m "github.com/cwbudde/algo-spectral/internal/math"
)

// Plan is a reusable 1D transform for a fixed power-of-two size. The
// twiddle and bit-reversal tables are computed once at construction and
// shared by every call.
//
// A Plan is not safe for concurrent use of a single instance: the strided
// transforms reuse an internal scratch buffer. Create one plan per
// goroutine, or use Plan2D which clones per worker.
type Plan struct {
	n       int
	twiddle []Complex
	bitrev  []int
	scratch []Complex
	kernels fft.Kernels
}

// NewPlan creates a transform plan for size n.
// Returns ErrInvalidLength unless n is a positive power of 2.
func NewPlan(n int) (*Plan, error) {
	if n < 1 || !m.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	return &Plan{
		n:       n,
		twiddle: fft.ComputeTwiddleFactors(n),
		bitrev:  m.ComputeBitReversalIndices(n),
		scratch: make([]Complex, n),
		kernels: fft.SelectKernels(n, fft.DetectFeatures()),
	}, nil
}

// Len returns the transform size.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes the forward FFT of buf in place.
// Returns ErrInvalidLength for a nil or empty buffer and
// ErrDimensionMismatch when len(buf) != Len().
func (p *Plan) Forward(buf []Complex) error {
	return p.Transform(buf, false, false)
}

// Inverse computes the inverse FFT of buf in place. When normalize is true
// every element is scaled by 1/Len() afterwards; the unnormalized mode lets
// convolution pipelines normalize exactly once at the end.
func (p *Plan) Inverse(buf []Complex, normalize bool) error {
	return p.Transform(buf, true, normalize)
}

// Transform computes either the forward or inverse FFT based on the inverse
// flag. normalize is honored on the inverse transform only.
func (p *Plan) Transform(buf []Complex, inverse, normalize bool) error {
	if err := p.validate(buf); err != nil {
		return err
	}

	p.run(buf, inverse, normalize)

	return nil
}

// Go schedules the transform and returns a handle immediately. Validation
// still happens up front: a rejected call returns an already-completed task
// carrying the error, with the buffer untouched. Neither the buffer nor the
// plan may be used again until the task completes.
func (p *Plan) Go(buf []Complex, inverse, normalize bool) *Task {
	if err := p.validate(buf); err != nil {
		return completedTask(err)
	}

	return schedule(func() error {
		p.run(buf, inverse, normalize)
		return nil
	})
}

func (p *Plan) validate(buf []Complex) error {
	if len(buf) == 0 {
		return ErrInvalidLength
	}

	if len(buf) != p.n {
		return ErrDimensionMismatch
	}

	return nil
}

// run executes the kernel on a validated buffer. The selected codelet can
// only reject mis-sized tables, which validation rules out, but the generic
// kernel remains the fallback path as in the dispatch contract.
func (p *Plan) run(buf []Complex, inverse, normalize bool) {
	kernel := p.kernels.Forward
	if inverse {
		kernel = p.kernels.Inverse
	}

	if !kernel(buf, p.twiddle, p.bitrev) {
		generic := fft.SelectKernels(p.n, fft.Features{ForceGeneric: true})

		kernel = generic.Forward
		if inverse {
			kernel = generic.Inverse
		}

		kernel(buf, p.twiddle, p.bitrev)
	}

	if inverse && normalize {
		fft.Scale(buf, 1/float32(p.n))
	}
}

// runStrided gathers a strided line into scratch, transforms it, and
// scatters the result back. Caller has validated buf and stride.
func (p *Plan) runStrided(buf []Complex, stride int, inverse, normalize bool) {
	scratch := p.scratch[:p.n]
	for i := 0; i < p.n; i++ {
		scratch[i] = buf[i*stride]
	}

	p.run(scratch, inverse, normalize)

	for i := 0; i < p.n; i++ {
		buf[i*stride] = scratch[i]
	}
}

// clone returns a plan sharing the read-only tables but owning fresh
// scratch, so clones may run concurrently.
func (p *Plan) clone() *Plan {
	c := *p
	c.scratch = make([]Complex, p.n)

	return &c
}
