package common

// LerpInt64 moves from a toward b by t (0..1). The span is computed in int64
// so only the fraction goes through floating point.
func LerpInt64(a, b int64, t float32) int64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + int64(float64(b-a)*float64(t))
}
