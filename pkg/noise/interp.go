package noise

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Smoothstep eases t in [0, 1] with zero slope at both ends.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
