package eq

import (
	"math"
	"math/cmplx"
)

// Filter is the realized impulse response produced by a successful reload:
// a causal, linear-phase, windowed FIR filter.
type Filter struct {
	rate float64
	taps []float64
}

// Rate returns the sampling rate the filter was designed for.
func (f *Filter) Rate() float64 { return f.rate }

// Len returns the number of taps.
func (f *Filter) Len() int { return len(f.taps) }

// Taps returns a copy of the tap values.
func (f *Filter) Taps() []float64 {
	out := make([]float64, len(f.taps))
	copy(out, f.taps)
	return out
}

// Response evaluates the complex frequency response H(e^{-jw}) at the given
// frequency in Hz.
func (f *Filter) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / f.rate

	var h complex128
	for k, c := range f.taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz)))
}
