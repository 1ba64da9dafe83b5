package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Ones sets all values in buf to 1.
func Ones(buf []float64) {
	for i := range buf {
		buf[i] = 1
	}
}

// FitLength returns a copy of in truncated or zero-padded to length n.
func FitLength(in []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, in)
	return out
}
