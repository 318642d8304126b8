package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns 1 for true and -1 for false; used for facing-relative math.
func Sign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}
