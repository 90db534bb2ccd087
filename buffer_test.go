package algospectral

import "testing"

func TestNewBufferRoundsUp(t *testing.T) {
	t.Parallel()

	tests := []struct{ count, expect int }{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{100, 128},
	}

	for _, tt := range tests {
		buf := NewBuffer(tt.count)
		if len(buf) != tt.expect {
			t.Errorf("NewBuffer(%d) len = %d, want %d", tt.count, len(buf), tt.expect)
		}

		for i, v := range buf {
			if v != (Complex{}) {
				t.Errorf("NewBuffer(%d)[%d] = %v, want zero", tt.count, i, v)
			}
		}
	}
}

func TestBufferFromReal(t *testing.T) {
	t.Parallel()

	samples := []float32{1, -2, 0.5}

	buf := BufferFromReal(samples)
	if len(buf) != 4 {
		t.Fatalf("len = %d, want 4", len(buf))
	}

	for i, s := range samples {
		if buf[i].Re != s || buf[i].Im != 0 {
			t.Errorf("buf[%d] = %v, want (%v, 0)", i, buf[i], s)
		}
	}

	// Zero padding past the seeded samples.
	if buf[3] != (Complex{}) {
		t.Errorf("buf[3] = %v, want zero", buf[3])
	}

	// The returned buffer is always a legal transform input.
	if err := FFT1D(buf, false, false); err != nil {
		t.Errorf("FFT1D on BufferFromReal result failed: %v", err)
	}
}
