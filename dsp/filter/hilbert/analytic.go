package hilbert

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const minSize = 4

var (
	// ErrInvalidSize is returned for sizes that are not a power of two >= 4.
	ErrInvalidSize = errors.New("hilbert: size must be a power of two >= 4")
	// ErrLengthMismatch is returned when a buffer does not match the transformer size.
	ErrLengthMismatch = errors.New("hilbert: buffer length mismatch")
)

// Transformer converts fixed-size real blocks into analytic signals.
//
// A Transformer owns its FFT plan and is not safe for concurrent use.
type Transformer struct {
	size int
	plan *algofft.Plan[complex128]
}

// New creates a transformer for blocks of the given size.
func New(size int) (*Transformer, error) {
	if size < minSize || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("hilbert: failed to create FFT plan: %w", err)
	}

	return &Transformer{size: size, plan: plan}, nil
}

// Size returns the block size in samples.
func (t *Transformer) Size() int { return t.size }

// Analytic replaces buf with its analytic signal in place.
//
// buf is expected to hold a real sequence (zero imaginary parts). After the
// call real(buf[n]) equals the input to rounding error and imag(buf[n]) is
// the discrete Hilbert transform of the input.
func (t *Transformer) Analytic(buf []complex128) error {
	if len(buf) != t.size {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, t.size, len(buf))
	}

	err := t.plan.Forward(buf, buf)
	if err != nil {
		return fmt.Errorf("hilbert: forward FFT failed: %w", err)
	}

	// DC and Nyquist stay at unit weight, positive bins carry the energy of
	// their negative mirrors.
	half := t.size / 2
	for k := 1; k < half; k++ {
		buf[k] *= 2
	}

	for k := half + 1; k < t.size; k++ {
		buf[k] = 0
	}

	err = t.plan.Inverse(buf, buf)
	if err != nil {
		return fmt.Errorf("hilbert: inverse FFT failed: %w", err)
	}

	return nil
}

// AnalyticReal loads the real block src into dst and converts it in place.
func (t *Transformer) AnalyticReal(dst []complex128, src []float64) error {
	if len(src) != t.size {
		return fmt.Errorf("%w: expected %d input samples, got %d", ErrLengthMismatch, t.size, len(src))
	}

	if len(dst) != t.size {
		return fmt.Errorf("%w: expected %d output samples, got %d", ErrLengthMismatch, t.size, len(dst))
	}

	for i, x := range src {
		dst[i] = complex(x, 0)
	}

	return t.Analytic(dst)
}

// Envelope writes the instantaneous amplitude |analytic[n]| into dst.
func Envelope(dst []float64, analytic []complex128) error {
	if len(dst) != len(analytic) {
		return fmt.Errorf("%w: dst=%d analytic=%d", ErrLengthMismatch, len(dst), len(analytic))
	}

	for i, c := range analytic {
		dst[i] = cmplx.Abs(c)
	}

	return nil
}
