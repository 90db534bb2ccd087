package fft

// Hand-unrolled codelets for the smallest sizes, where loop and twiddle
// indexing overhead dominates. All loads happen through the bit-reversal
// table before the first write, so operating in place is safe.

func forwardDIT4(buf, twiddle []Complex, bitrev []int) bool {
	const n = 4

	if len(buf) < n || len(twiddle) < n || len(bitrev) < n {
		return false
	}

	br := bitrev[:n]
	w1 := twiddle[1]

	x0, x1 := buf[br[0]], buf[br[1]]
	a0, a1 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[2]], buf[br[3]]
	a2, a3 := x0.Add(x1), x0.Sub(x1)

	t := w1.Mul(a3)
	buf[0], buf[2] = a0.Add(a2), a0.Sub(a2)
	buf[1], buf[3] = a1.Add(t), a1.Sub(t)

	return true
}

func inverseDIT4(buf, twiddle []Complex, bitrev []int) bool {
	const n = 4

	if len(buf) < n || len(twiddle) < n || len(bitrev) < n {
		return false
	}

	br := bitrev[:n]
	w1 := twiddle[1].Conj()

	x0, x1 := buf[br[0]], buf[br[1]]
	a0, a1 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[2]], buf[br[3]]
	a2, a3 := x0.Add(x1), x0.Sub(x1)

	t := w1.Mul(a3)
	buf[0], buf[2] = a0.Add(a2), a0.Sub(a2)
	buf[1], buf[3] = a1.Add(t), a1.Sub(t)

	return true
}

func forwardDIT8(buf, twiddle []Complex, bitrev []int) bool {
	const n = 8

	if len(buf) < n || len(twiddle) < n || len(bitrev) < n {
		return false
	}

	br := bitrev[:n]
	w1, w2, w3 := twiddle[1], twiddle[2], twiddle[3]

	// Stage 1 (size 2) - with interleaved loads
	x0, x1 := buf[br[0]], buf[br[1]]
	a0, a1 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[2]], buf[br[3]]
	a2, a3 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[4]], buf[br[5]]
	a4, a5 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[6]], buf[br[7]]
	a6, a7 := x0.Add(x1), x0.Sub(x1)

	// Stage 2 (size 4)
	b0, b2 := a0.Add(a2), a0.Sub(a2)
	t := w2.Mul(a3)
	b1, b3 := a1.Add(t), a1.Sub(t)
	b4, b6 := a4.Add(a6), a4.Sub(a6)
	t = w2.Mul(a7)
	b5, b7 := a5.Add(t), a5.Sub(t)

	// Stage 3 (size 8)
	buf[0], buf[4] = b0.Add(b4), b0.Sub(b4)
	t = w1.Mul(b5)
	buf[1], buf[5] = b1.Add(t), b1.Sub(t)
	t = w2.Mul(b6)
	buf[2], buf[6] = b2.Add(t), b2.Sub(t)
	t = w3.Mul(b7)
	buf[3], buf[7] = b3.Add(t), b3.Sub(t)

	return true
}

func inverseDIT8(buf, twiddle []Complex, bitrev []int) bool {
	const n = 8

	if len(buf) < n || len(twiddle) < n || len(bitrev) < n {
		return false
	}

	br := bitrev[:n]
	w1, w2, w3 := twiddle[1].Conj(), twiddle[2].Conj(), twiddle[3].Conj()

	x0, x1 := buf[br[0]], buf[br[1]]
	a0, a1 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[2]], buf[br[3]]
	a2, a3 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[4]], buf[br[5]]
	a4, a5 := x0.Add(x1), x0.Sub(x1)
	x0, x1 = buf[br[6]], buf[br[7]]
	a6, a7 := x0.Add(x1), x0.Sub(x1)

	b0, b2 := a0.Add(a2), a0.Sub(a2)
	t := w2.Mul(a3)
	b1, b3 := a1.Add(t), a1.Sub(t)
	b4, b6 := a4.Add(a6), a4.Sub(a6)
	t = w2.Mul(a7)
	b5, b7 := a5.Add(t), a5.Sub(t)

	buf[0], buf[4] = b0.Add(b4), b0.Sub(b4)
	t = w1.Mul(b5)
	buf[1], buf[5] = b1.Add(t), b1.Sub(t)
	t = w2.Mul(b6)
	buf[2], buf[6] = b2.Add(t), b2.Sub(t)
	t = w3.Mul(b7)
	buf[3], buf[7] = b3.Add(t), b3.Sub(t)

	return true
}
