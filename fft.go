package algospectral

import m "github.com/cwbudde/algo-spectral/internal/math"

// FFT1D transforms buf in place. len(buf) must be a power of two; a buffer
// of unsuitable length is rejected, never resized. normalize is honored on
// the inverse transform only.
//
// This builds a plan per call; reuse a Plan for repeated transforms of the
// same size.
func FFT1D(buf []Complex, inverse, normalize bool) error {
	if !m.IsPowerOf2(len(buf)) {
		return ErrInvalidLength
	}

	plan, err := NewPlan(len(buf))
	if err != nil {
		return err
	}

	return plan.Transform(buf, inverse, normalize)
}

// FFT2D transforms a row-major width x height grid in place. width*height
// must equal len(buf), and width and height must each be powers of two.
// normalize is honored on the inverse transform only, scaling by
// 1/(width*height) once after both passes.
func FFT2D(buf []Complex, width, height int, inverse, normalize bool) error {
	if len(buf) == 0 || width < 1 || height < 1 {
		return ErrInvalidLength
	}

	if width*height != len(buf) {
		return ErrDimensionMismatch
	}

	plan, err := NewPlan2D(width, height)
	if err != nil {
		return err
	}

	return plan.Transform(buf, inverse, normalize)
}

// ScheduleFFT1D schedules a one-shot 1D transform and returns its handle.
// Validation happens before scheduling: a rejected call returns an
// already-completed task carrying the error.
func ScheduleFFT1D(buf []Complex, inverse, normalize bool) *Task {
	if !m.IsPowerOf2(len(buf)) {
		return completedTask(ErrInvalidLength)
	}

	plan, err := NewPlan(len(buf))
	if err != nil {
		return completedTask(err)
	}

	return plan.Go(buf, inverse, normalize)
}

// ScheduleFFT2D schedules a one-shot 2D transform and returns its handle.
func ScheduleFFT2D(buf []Complex, width, height int, inverse, normalize bool) *Task {
	if len(buf) == 0 || width < 1 || height < 1 {
		return completedTask(ErrInvalidLength)
	}

	if width*height != len(buf) {
		return completedTask(ErrDimensionMismatch)
	}

	plan, err := NewPlan2D(width, height)
	if err != nil {
		return completedTask(err)
	}

	return plan.Go(buf, inverse, normalize)
}
