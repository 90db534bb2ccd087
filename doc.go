// Package algospectral implements an in-place radix-2 Cooley-Tukey FFT
// engine over single-precision complex sample buffers.
//
// Core operations:
//   - Plan: reusable 1D forward/inverse transform with precomputed
//     twiddle and bit-reversal tables, including strided variants.
//   - Plan2D: separable 2D transform over a row-major grid, columns first
//     then rows, with optional parallel per-line execution.
//   - Convolve: pointwise frequency-domain multiplication.
//
// One-shot entry points (FFT1D, FFT2D, ScheduleFFT1D, ScheduleFFT2D)
// build a plan internally; callers with a fixed size should construct a
// plan once and reuse it.
//
// Buffers are caller-owned slices of Complex. Transform lengths must be
// powers of two; NewBuffer and BufferFromReal round allocation requests up
// to the next power of two, but a buffer passed directly to a transform is
// never resized - an unsuitable length is reported as an error before any
// element is touched.
package algospectral
