package filter

// WindowSize returns the number of samples averaged by one box pass of the
// given half-width: 2*radius + 1.
//
// For radius <= 0 returns 1 (identity).
func WindowSize(radius int) int {
	if radius <= 0 {
		return 1
	}
	return radius*2 + 1
}

// PassRadius returns the half-width of each of the two box passes used to
// approximate a Gaussian of the given blur radius.
func PassRadius(radius int) int {
	if radius <= 0 {
		return 0
	}
	return radius / 2
}

// Reach returns how far, in pixels, a two-pass blur of the given radius
// spreads a single opaque pixel in each direction along one axis.
func Reach(radius int) int {
	return 2 * PassRadius(radius)
}

// divRound returns round(sum / window) with halves rounded up.
func divRound(sum, window int) uint8 {
	v := (2*sum + window) / (2 * window)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampIndex clamps i to [0, last].
func clampIndex(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}
