// Package window provides masking windows for truncating ideal impulse
// responses to finite length.
//
// Windows here are expressed in the lag domain: a window is symmetric about
// lag zero and is evaluated for normalized lags x in [0, 1], where x = 1 is
// the truncation boundary. This is the natural form for tapering the two
// halves of a circularly shifted FIR filter.
package window

import "math"

// Type identifies a masking window.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// At returns the window weight at normalized lag x. The window is symmetric,
// so only x >= 0 is ever queried; x is clamped to [0, 1].
func At(t Type, x float64) float64 {
	if x < 0 {
		x = -x
	}

	if x > 1 {
		x = 1
	}

	switch t {
	case TypeHann:
		return 0.5 + 0.5*math.Cos(math.Pi*x)
	case TypeHamming:
		return 0.54 + 0.46*math.Cos(math.Pi*x)
	case TypeBlackman:
		return 0.42 + 0.5*math.Cos(math.Pi*x) + 0.08*math.Cos(2*math.Pi*x)
	default:
		return 1
	}
}

// HalfTaper returns length weights w[i] = At(t, i/length), covering the
// non-negative lag half of the window. The first weight is always 1 (lag
// zero) and subsequent weights taper toward the truncation boundary, which
// itself is excluded.
func HalfTaper(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	inv := 1 / float64(length)
	for i := range out {
		out[i] = At(t, float64(i)*inv)
	}

	return out
}
