package eq

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/realfft"
	"github.com/cwbudde/algo-eq/dsp/response"
	"github.com/cwbudde/algo-eq/dsp/window"
)

// Construction and delivery errors.
var (
	ErrInvalidRate     = errors.New("eq: sample rate must be > 0")
	ErrInvalidSize     = errors.New("eq: filter length must be even and >= 2")
	ErrTransformSize   = errors.New("eq: transform size does not match filter length")
	ErrInvalidChannels = errors.New("eq: channel count must be > 0")
	ErrClosed          = errors.New("eq: equalizer is closed")
)

// Transform computes fixed-size real-valued Fourier transforms in
// half-complex layout. Both directions are unnormalized:
// Inverse(Forward(x)) = N * x. See [realfft].
type Transform interface {
	Size() int
	Forward(dst, src []float64) error
	Inverse(dst, src []float64) error
}

// Sink receives complete FIR tap sets for installation on an audio channel.
type Sink interface {
	// SetFilter installs taps as filter number filterNo on the given output
	// channel. The taps slice is only valid for the duration of the call.
	SetFilter(channel, filterNo int, taps []float64) error
}

// Option configures an Equalizer.
type Option func(*config)

type config struct {
	transform Transform
	window    window.Type
	diag      io.Writer
}

func defaultConfig() config {
	return config{
		window: window.TypeHann,
		diag:   io.Discard,
	}
}

// WithTransform injects the transform implementation. By default a
// [realfft.Plan] of the filter length is created.
func WithTransform(t Transform) Option {
	return func(c *config) {
		if t != nil {
			c.transform = t
		}
	}
}

// WithWindow selects the masking window applied during synthesis.
// The default is [window.TypeHann].
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithDiagnostics routes the per-reload diagnostic report to w.
// By default diagnostics are discarded.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.diag = w
		}
	}
}

// Equalizer synthesizes linear-phase FIR filters from textual breakpoint
// specifications. It owns one frequency-domain and one time-domain buffer of
// the filter length; both are overwritten on each successful reload. It is
// not safe for concurrent use.
type Equalizer struct {
	rate float64
	size int

	transform Transform
	taper     []float64
	diag      io.Writer

	freq      []float64 // half-complex spectrum of the realized filter
	time      []float64 // realized taps after a successful reload
	requested []float64 // size/2+1 staging buffer, holds the requested magnitudes
	mirrored  []float64 // size/2-1 scratch for mirrored sine terms
	loaded    bool
}

// New creates an Equalizer for the given sampling rate and even filter
// length. The buffers and the transform plan are allocated once here.
func New(rate float64, size int, opts ...Option) (*Equalizer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRate, rate)
	}
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.transform == nil {
		plan, err := realfft.NewPlan(size)
		if err != nil {
			return nil, fmt.Errorf("eq: %w", err)
		}
		cfg.transform = plan
	}
	if cfg.transform.Size() != size {
		return nil, fmt.Errorf("%w: transform %d, filter %d", ErrTransformSize, cfg.transform.Size(), size)
	}

	return &Equalizer{
		rate:      rate,
		size:      size,
		transform: cfg.transform,
		taper:     window.HalfTaper(cfg.window, size/2),
		diag:      cfg.diag,
		freq:      make([]float64, size),
		time:      make([]float64, size),
		requested: make([]float64, size/2+1),
		mirrored:  make([]float64, max(size/2-1, 0)),
	}, nil
}

// Rate returns the sampling rate in Hz.
func (e *Equalizer) Rate() float64 { return e.rate }

// Size returns the filter length in taps.
func (e *Equalizer) Size() int { return e.size }

// Load parses spec, samples the desired magnitude response onto the filter
// bins and synthesizes the causal windowed taps. On a parse error the reload
// is aborted, the error is reported to the diagnostics sink and the
// previously synthesized filter remains untouched.
func (e *Equalizer) Load(spec string) error {
	if e.time == nil {
		return ErrClosed
	}

	fmt.Fprintf(e.diag, "\n\nReloading amplification specifications:\n%s\n", spec)

	// Sample into staging first so a failed parse cannot corrupt the
	// live buffers.
	if err := response.Sample(e.requested, e.rate, e.size, response.NewParser(spec)); err != nil {
		fmt.Fprintf(e.diag, "%v\n", err)
		return err
	}

	n := e.size
	for i := range e.freq {
		e.freq[i] = 0
	}
	copy(e.freq[:n/2+1], e.requested)

	// Zero sine terms make the ideal impulse response even and zero-phase.
	if err := e.transform.Inverse(e.time, e.freq); err != nil {
		return fmt.Errorf("eq: inverse transform: %w", err)
	}

	e.windowShift()

	// Recompute the realized spectrum for the diagnostic report only; the
	// delivered taps are final at this point.
	if err := e.transform.Forward(e.freq, e.time); err != nil {
		return fmt.Errorf("eq: forward transform: %w", err)
	}
	vecmath.ScaleBlock(e.freq, e.freq, 1/float64(n))

	e.loaded = true
	e.report()

	return nil
}

// windowShift turns the symmetric zero-phase impulse response into the
// causal windowed filter. Nonnegative lags move to the second half of the
// buffer under the taper; the first half is rebuilt from the circular mirror
// of the values just written; the wrap-around sample is forced to zero.
func (e *Equalizer) windowShift() {
	n := e.size
	half := n / 2

	vecmath.MulBlock(e.time[half:], e.time[:half], e.taper)
	vecmath.ScaleBlock(e.time[half:], e.time[half:], 1/float64(n))

	for i := half - 1; i > 0; i-- {
		e.time[i] = e.time[n-i]
	}
	e.time[0] = 0
}

// Filter returns the realized filter from the most recent successful reload,
// or nil if none has happened yet.
func (e *Equalizer) Filter() *Filter {
	if !e.loaded {
		return nil
	}

	taps := make([]float64, e.size)
	copy(taps, e.time)

	return &Filter{rate: e.rate, taps: taps}
}

// Taps returns a copy of the realized impulse response.
func (e *Equalizer) Taps() []float64 {
	taps := make([]float64, e.size)
	copy(taps, e.time)
	return taps
}

// Deliver presents the current tap set to sink once per output channel.
// A failure on one channel is reported to the diagnostics sink and the
// remaining channels are still attempted; the joined per-channel errors are
// returned for callers that want them.
func (e *Equalizer) Deliver(sink Sink, channels int) error {
	if channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	var failures []error
	for ch := 0; ch < channels; ch++ {
		if err := sink.SetFilter(ch, 0, e.time); err != nil {
			fmt.Fprintf(e.diag, "cannot set filter for channel %d: %v\n", ch, err)
			failures = append(failures, fmt.Errorf("channel %d: %w", ch, err))
		}
	}

	return errors.Join(failures...)
}

// Close releases the buffers. The Equalizer must not be used afterwards.
func (e *Equalizer) Close() error {
	e.freq = nil
	e.time = nil
	e.requested = nil
	e.mirrored = nil
	e.loaded = false

	if c, ok := e.transform.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
