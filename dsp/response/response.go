// Package response turns textual frequency/gain breakpoint specifications
// into sampled magnitude spectra.
//
// A specification is zero or more whitespace-separated "<frequency> <gain>"
// pairs in strictly increasing frequency order. An empty specification means
// a flat response with unity gain everywhere. The desired gain between
// breakpoints is interpolated linearly; the first explicit gain extends down
// to DC and the last one extends up to the Nyquist frequency.
package response

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse errors.
var (
	ErrMalformed    = errors.New("response: malformed frequency/gain pair")
	ErrNonMonotonic = errors.New("response: nonincreasing sequence of frequencies")
)

// Sampler configuration errors.
var (
	ErrInvalidRate = errors.New("response: sample rate must be > 0")
	ErrInvalidSize = errors.New("response: block size must be even and >= 2")
	ErrShortBuffer = errors.New("response: destination too short")
)

// IsParseError reports whether err was caused by the breakpoint text itself
// rather than by invalid sampler configuration.
func IsParseError(err error) bool {
	return errors.Is(err, ErrMalformed) || errors.Is(err, ErrNonMonotonic)
}

// Breakpoint is one (frequency, gain) control point of the desired response.
type Breakpoint struct {
	FreqHz float64
	Gain   float64
}

// Parser incrementally extracts breakpoints from a specification text.
type Parser struct {
	r        *strings.Reader
	lastFreq float64
}

// NewParser returns a parser positioned at the start of text.
func NewParser(text string) *Parser {
	return &Parser{r: strings.NewReader(text)}
}

// Next extracts the next breakpoint. It returns io.EOF once the text is
// exhausted, ErrMalformed when a pair cannot be scanned, and ErrNonMonotonic
// when a frequency does not strictly exceed the previous one.
func (p *Parser) Next() (Breakpoint, error) {
	var freq, gain float64

	n, err := fmt.Fscan(p.r, &freq, &gain)
	if n == 0 && errors.Is(err, io.EOF) {
		return Breakpoint{}, io.EOF
	}
	if err != nil {
		return Breakpoint{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if freq <= p.lastFreq {
		return Breakpoint{}, fmt.Errorf("%w: %g Hz after %g Hz", ErrNonMonotonic, freq, p.lastFreq)
	}

	p.lastFreq = freq
	return Breakpoint{FreqHz: freq, Gain: gain}, nil
}

// Parse extracts all breakpoints from text.
func Parse(text string) ([]Breakpoint, error) {
	p := NewParser(text)

	var out []Breakpoint
	for {
		bp, err := p.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}
}

// Sample fills dst[0..size/2] with the desired gain at each bin center
// frequency rate*i/size, pulling breakpoints from p on demand in a single
// monotonic scan. Input exhaustion extends the last gain to the Nyquist
// frequency. On a parse error dst may be partially written and the error is
// returned; callers that must preserve prior state should sample into a
// staging buffer.
//
// The gain bracketing the very first breakpoint is seeded from that
// breakpoint's own gain, so the DC bin inherits the first explicit gain
// rather than unity.
func Sample(dst []float64, rate float64, size int, p *Parser) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRate, rate)
	}
	if size < 2 || size%2 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	bins := size/2 + 1
	if len(dst) < bins {
		return fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, bins, len(dst))
	}

	prev := Breakpoint{FreqHz: 0, Gain: 1}
	next := Breakpoint{FreqHz: 0, Gain: 1}

	for i := 0; i < bins; i++ {
		f := rate * float64(i) / float64(size)

		for f >= next.FreqHz {
			prev = next

			bp, err := p.Next()
			switch {
			case errors.Is(err, io.EOF):
				next = Breakpoint{FreqHz: rate, Gain: prev.Gain}
			case err != nil:
				return err
			default:
				next = bp
			}

			if prev.FreqHz == 0 {
				prev.Gain = next.Gain
			}
		}

		t := (f - prev.FreqHz) / (next.FreqHz - prev.FreqHz)
		dst[i] = prev.Gain + t*(next.Gain-prev.Gain)
	}

	return nil
}
