// Package eq synthesizes linear-phase FIR equalizer filters from textual
// frequency/gain breakpoint specifications.
//
// An [Equalizer] is created once for a sampling rate and an even filter
// length N. Each call to [Equalizer.Load] runs the full reload pipeline:
// the specification is parsed and sampled onto the N/2+1 bin frequencies
// (dsp/response), an inverse real transform produces the symmetric
// zero-phase impulse response, a masking window (dsp/window) and a circular
// shift make it causal and finite, and a forward transform recomputes the
// realized spectrum for a purely informational diagnostics report. The
// finished tap set is handed to a [Sink] per output channel via
// [Equalizer.Deliver].
//
// The transform pair is an injected capability ([Transform]); production use
// takes the default realfft.Plan while tests may substitute the O(N^2)
// realfft.Direct reference.
package eq
