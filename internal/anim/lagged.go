package anim

// LaggedStart splits group progress alpha in [0,1] into per-item progress for
// n items of equal length, item i starting lag item-lengths after item i-1.
// The result is written into dst, which is grown if needed.
func LaggedStart(dst []float64, n int, lag, alpha float64) []float64 {
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}
	total := 1 + float64(n-1)*lag
	at := clamp01(alpha) * total
	for i := range dst {
		dst[i] = clamp01(at - float64(i)*lag)
	}
	return dst
}
