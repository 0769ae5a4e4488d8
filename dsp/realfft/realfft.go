// Package realfft provides fixed-size real-valued Fourier transforms in
// half-complex layout.
//
// A transform of even size N maps N real samples to N real values: index i
// holds the cosine coefficient for bin i, and for 0 < i < N/2 the paired
// sine coefficient is stored at index N-i. Bins 0 and N/2 are purely real.
// Both directions are unnormalized: Inverse(Forward(x)) = N * x.
//
// [Plan] is the production implementation backed by an external FFT backend;
// [Direct] evaluates the defining sums and serves as a slow reference for
// validating transform-driven algorithms.
package realfft

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Transform errors.
var (
	ErrInvalidSize    = errors.New("realfft: transform size must be even and >= 2")
	ErrLengthMismatch = errors.New("realfft: buffer length does not match transform size")
)

// Plan computes real transforms of a fixed size via a complex FFT plan.
type Plan struct {
	size    int
	plan    *algofft.Plan[complex128]
	packed  []complex128
	spectra []complex128
}

// NewPlan creates a real transform plan of the given even size.
func NewPlan(size int) (*Plan, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("realfft: failed to create FFT plan: %w", err)
	}

	return &Plan{
		size:    size,
		plan:    plan,
		packed:  make([]complex128, size),
		spectra: make([]complex128, size),
	}, nil
}

// Size returns the transform size.
func (p *Plan) Size() int { return p.size }

// Forward transforms size real samples into the half-complex spectrum.
func (p *Plan) Forward(dst, src []float64) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	for i, v := range src {
		p.packed[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.spectra, p.packed); err != nil {
		return fmt.Errorf("realfft: forward FFT failed: %w", err)
	}

	n := p.size
	dst[0] = real(p.spectra[0])
	dst[n/2] = real(p.spectra[n/2])
	for k := 1; k < n/2; k++ {
		dst[k] = real(p.spectra[k])
		dst[n-k] = imag(p.spectra[k])
	}

	return nil
}

// Inverse transforms a half-complex spectrum into size real samples.
func (p *Plan) Inverse(dst, src []float64) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	n := p.size
	p.packed[0] = complex(src[0], 0)
	p.packed[n/2] = complex(src[n/2], 0)
	for k := 1; k < n/2; k++ {
		p.packed[k] = complex(src[k], src[n-k])
		p.packed[n-k] = complex(src[k], -src[n-k])
	}

	if err := p.plan.Inverse(p.spectra, p.packed); err != nil {
		return fmt.Errorf("realfft: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(p.spectra[i])
	}

	// The backend inverse is normalized by 1/N; this transform is not.
	vecmath.ScaleBlock(dst, dst, float64(n))

	return nil
}

func (p *Plan) check(dst, src []float64) error {
	if len(dst) != p.size || len(src) != p.size {
		return fmt.Errorf("%w: size %d, dst %d, src %d", ErrLengthMismatch, p.size, len(dst), len(src))
	}
	return nil
}

// Direct evaluates the transform sums directly in O(N^2). It is intended as
// a reference implementation for tests and follows the same half-complex
// layout and scaling as [Plan].
type Direct struct {
	size int
}

// NewDirect creates a direct-evaluation transform of the given even size.
func NewDirect(size int) (*Direct, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Direct{size: size}, nil
}

// Size returns the transform size.
func (d *Direct) Size() int { return d.size }

// Forward transforms size real samples into the half-complex spectrum.
func (d *Direct) Forward(dst, src []float64) error {
	if len(dst) != d.size || len(src) != d.size {
		return fmt.Errorf("%w: size %d, dst %d, src %d", ErrLengthMismatch, d.size, len(dst), len(src))
	}

	n := d.size
	step := 2 * math.Pi / float64(n)

	for k := 0; k <= n/2; k++ {
		var re, im float64
		for i, v := range src {
			phase := step * float64(k) * float64(i)
			re += v * math.Cos(phase)
			im -= v * math.Sin(phase)
		}
		dst[k] = re
		if k > 0 && k < n/2 {
			dst[n-k] = im
		}
	}

	return nil
}

// Inverse transforms a half-complex spectrum into size real samples.
func (d *Direct) Inverse(dst, src []float64) error {
	if len(dst) != d.size || len(src) != d.size {
		return fmt.Errorf("%w: size %d, dst %d, src %d", ErrLengthMismatch, d.size, len(dst), len(src))
	}

	n := d.size
	step := 2 * math.Pi / float64(n)

	for i := 0; i < n; i++ {
		sum := src[0]
		if i%2 == 0 {
			sum += src[n/2]
		} else {
			sum -= src[n/2]
		}
		for k := 1; k < n/2; k++ {
			phase := step * float64(k) * float64(i)
			sum += 2 * (src[k]*math.Cos(phase) - src[n-k]*math.Sin(phase))
		}
		dst[i] = sum
	}

	return nil
}
