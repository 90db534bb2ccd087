package algospectral

import "github.com/cwbudde/algo-spectral/internal/fftypes"

// Complex is a single-precision complex sample.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Polar is the polar form of a complex sample.
// The canonical definition is in internal/fftypes.
type Polar = fftypes.Polar
