package fft

// The kernels below implement the iterative radix-2 decimation-in-time
// Cooley-Tukey algorithm, transforming buf in place.
//
// Preconditions (not re-validated here, the dispatch layer checks them):
//   - len(buf) is a power of two
//   - len(twiddle) >= len(buf), twiddle holds the forward table for this size
//   - len(bitrev) >= len(buf), bitrev holds the permutation for this size
//
// Sign convention: forward uses the negative exponent (twiddle table as
// computed), inverse conjugates each factor. A size-1 transform is a no-op.

func forwardRadix2(buf, twiddle []Complex, bitrev []int) bool {
	n := len(buf)
	if len(twiddle) < n || len(bitrev) < n {
		return false
	}

	permute(buf, bitrev)

	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		stride := n / m

		for k0 := 0; k0 < n; k0 += m {
			for j := 0; j < half; j++ {
				w := twiddle[j*stride]
				p := buf[k0+j]
				q := w.Mul(buf[k0+j+half])
				buf[k0+j] = p.Add(q)
				buf[k0+j+half] = p.Sub(q)
			}
		}
	}

	return true
}

func inverseRadix2(buf, twiddle []Complex, bitrev []int) bool {
	n := len(buf)
	if len(twiddle) < n || len(bitrev) < n {
		return false
	}

	permute(buf, bitrev)

	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		stride := n / m

		for k0 := 0; k0 < n; k0 += m {
			for j := 0; j < half; j++ {
				w := twiddle[j*stride].Conj()
				p := buf[k0+j]
				q := w.Mul(buf[k0+j+half])
				buf[k0+j] = p.Add(q)
				buf[k0+j+half] = p.Sub(q)
			}
		}
	}

	return true
}

// permute applies the bit-reversal permutation in place.
// Swapping only when i < j visits every 2-cycle exactly once.
func permute(buf []Complex, bitrev []int) {
	for i := range buf {
		j := bitrev[i]
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
