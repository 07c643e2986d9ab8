// Package noise generates 2D fractal value noise and uses it to seed
// cellular automaton grids with clustered live cells.
package noise

import "math"

// Hash returns a pseudo-random value in [0, 1) for the lattice point (x, y).
// It is a sinusoidal scramble reduced to its fractional part and is stable for
// the lifetime of the process. Not suitable for anything cryptographic.
func Hash(x, y int) float64 {
	v := math.Sin(float64(x)*1234.567+float64(y)*9876.543) * 43758.5453
	return v - math.Floor(v)
}

// At evaluates value noise at (x, y). The four corners of the enclosing
// lattice cell are hashed and blended with smoothstep weights on both axes.
func At(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	x0, y0 := int(fx), int(fy)

	sx := Smoothstep(x - fx)
	sy := Smoothstep(y - fy)

	top := Lerp(Hash(x0, y0), Hash(x0+1, y0), sx)
	bottom := Lerp(Hash(x0, y0+1), Hash(x0+1, y0+1), sx)
	return Lerp(top, bottom, sy)
}

// Fractal sums octaves of At, doubling frequency and scaling amplitude by
// persistence each octave. The result is divided by the total amplitude so it
// stays within [0, 1] for any octave count. Returns 0 when octaves <= 0.
func Fractal(x, y float64, octaves int, persistence float64) float64 {
	var total, maxAmp float64
	freq, amp := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += At(x*freq, y*freq) * amp
		maxAmp += amp
		amp *= persistence
		freq *= 2
	}
	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
