package algospectral

import (
	"sync"

	"github.com/cwbudde/algo-spectral/internal/fft"
	m "github.com/cwbudde/algo-spectral/internal/math"
)

// Plan2D is a reusable separable 2D transform over a row-major
// width x height grid. Columns are transformed first, then rows; the order
// is fixed so results are deterministic, and the row pass depends on the
// completed column pass.
//
// The per-line transforms within a pass touch disjoint memory, so they may
// run in parallel; each worker clones the line plan to get its own scratch.
// The sequential path (workers <= 1) is the reference behavior and the
// parallel path produces bit-identical results.
type Plan2D struct {
	width   int
	height  int
	cols    *Plan // length = height, applied down each column
	rows    *Plan // length = width, applied across each row
	workers int
}

// Option2D configures a Plan2D at construction.
type Option2D func(*Plan2D)

// WithWorkers sets the number of goroutines used for the per-line
// transforms of each pass. Values <= 1 select the sequential path.
func WithWorkers(n int) Option2D {
	return func(p *Plan2D) {
		p.workers = n
	}
}

// NewPlan2D creates a 2D transform plan. Both width and height must be
// positive powers of 2 (each line is a 1D radix-2 transform); otherwise
// ErrInvalidLength is returned.
func NewPlan2D(width, height int, opts ...Option2D) (*Plan2D, error) {
	if width < 1 || height < 1 || !m.IsPowerOf2(width) || !m.IsPowerOf2(height) {
		return nil, ErrInvalidLength
	}

	cols, err := NewPlan(height)
	if err != nil {
		return nil, err
	}

	rows, err := NewPlan(width)
	if err != nil {
		return nil, err
	}

	p := &Plan2D{
		width:   width,
		height:  height,
		cols:    cols,
		rows:    rows,
		workers: 1,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Width returns the grid width.
func (p *Plan2D) Width() int {
	return p.width
}

// Height returns the grid height.
func (p *Plan2D) Height() int {
	return p.height
}

// Forward computes the forward 2D FFT of buf in place.
// Returns ErrInvalidLength for a nil or empty buffer and
// ErrDimensionMismatch when len(buf) != Width()*Height().
func (p *Plan2D) Forward(buf []Complex) error {
	return p.Transform(buf, false, false)
}

// Inverse computes the inverse 2D FFT of buf in place. When normalize is
// true the buffer is scaled by 1/(Width()*Height()) once, after both
// passes; the per-line transforms always run unnormalized so the scale is
// never applied twice.
func (p *Plan2D) Inverse(buf []Complex, normalize bool) error {
	return p.Transform(buf, true, normalize)
}

// Transform computes either the forward or inverse 2D FFT based on the
// inverse flag. normalize is honored on the inverse transform only.
func (p *Plan2D) Transform(buf []Complex, inverse, normalize bool) error {
	if err := p.validate(buf); err != nil {
		return err
	}

	p.run(buf, inverse, normalize)

	return nil
}

// Go schedules the transform and returns a handle immediately. A rejected
// call returns an already-completed task carrying the error. Neither the
// buffer nor the plan may be used again until the task completes.
func (p *Plan2D) Go(buf []Complex, inverse, normalize bool) *Task {
	if err := p.validate(buf); err != nil {
		return completedTask(err)
	}

	return schedule(func() error {
		p.run(buf, inverse, normalize)
		return nil
	})
}

func (p *Plan2D) validate(buf []Complex) error {
	if len(buf) == 0 {
		return ErrInvalidLength
	}

	if len(buf) != p.width*p.height {
		return ErrDimensionMismatch
	}

	return nil
}

func (p *Plan2D) run(buf []Complex, inverse, normalize bool) {
	p.runPass(buf, p.cols, p.width, true, inverse)
	p.runPass(buf, p.rows, p.height, false, inverse)

	if inverse && normalize {
		fft.Scale(buf, 1/float32(p.width*p.height))
	}
}

// runPass applies the line plan to every column (columns=true) or every row
// of the grid. The pass completes before runPass returns, which is what
// orders the column pass strictly before the row pass.
func (p *Plan2D) runPass(buf []Complex, plan *Plan, count int, columns, inverse bool) {
	workers := p.workers
	if workers > count {
		workers = count
	}

	if workers <= 1 {
		for i := 0; i < count; i++ {
			p.runLine(buf, plan, i, columns, inverse)
		}

		return
	}

	lines := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			local := plan.clone()
			for i := range lines {
				p.runLine(buf, local, i, columns, inverse)
			}
		}()
	}

	for i := 0; i < count; i++ {
		lines <- i
	}

	close(lines)
	wg.Wait()
}

func (p *Plan2D) runLine(buf []Complex, plan *Plan, i int, columns, inverse bool) {
	if columns {
		plan.runStrided(buf[i:], p.width, inverse, false)
		return
	}

	plan.run(buf[i*p.width:(i+1)*p.width], inverse, false)
}
