package fft

// Kernel transforms buf in place and reports whether it handled the
// transform. It returns false when the supplied tables are too short;
// callers fall back to the generic kernel in that case.
type Kernel func(buf, twiddle []Complex, bitrev []int) bool

// Kernels groups the forward and inverse kernels selected for one size.
type Kernels struct {
	Forward Kernel
	Inverse Kernel
}

// SelectKernels returns the best available kernels for the given size and
// CPU features. Small sizes get hand-unrolled codelets; everything else
// uses the generic iterative radix-2 kernel. ForceGeneric bypasses the
// codelets, which is how the tests cross-check codelet output.
func SelectKernels(n int, features Features) Kernels {
	if !features.ForceGeneric {
		switch n {
		case 4:
			return Kernels{Forward: forwardDIT4, Inverse: inverseDIT4}
		case 8:
			return Kernels{Forward: forwardDIT8, Inverse: inverseDIT8}
		}
	}

	return Kernels{Forward: forwardRadix2, Inverse: inverseRadix2}
}
