package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FloorDiv converts a world pixel coordinate to a tile index, rounding
// toward negative infinity so that -1 maps to tile -1 rather than 0.
func FloorDiv(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

// MinMax returns a and b ordered.
func MinMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
