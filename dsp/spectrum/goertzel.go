package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fshift/dsp/core"
)

var (
	// ErrInvalidFrequency is returned for frequencies outside [0, sampleRate/2].
	ErrInvalidFrequency = errors.New("spectrum: frequency must be between 0 and sampleRate/2")
	// ErrInvalidSampleRate is returned for non-positive or non-finite sample rates.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0 and finite")
	// ErrInvalidRange is returned for empty or inverted search ranges.
	ErrInvalidRange = errors.New("spectrum: invalid search range")
)

// Goertzel evaluates a single DFT term over all samples processed since the
// last Reset.
//
// The result equals the DFT bin of the same block at the target frequency,
// whether or not that frequency falls on an integer bin. Leakage from other
// components vanishes when the block holds whole periods of them.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	count      int
}

// NewGoertzel creates an analyzer for frequency at sampleRate.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if err := validate(frequency, sampleRate); err != nil {
		return nil, err
	}

	g := &Goertzel{frequency: frequency, sampleRate: sampleRate}
	g.updateCoeff()

	return g, nil
}

func validate(frequency, sampleRate float64) error {
	if !core.IsFinitePositive(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !core.IsFinite(frequency) || frequency < 0 || frequency > sampleRate/2 {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}
	return nil
}

func (g *Goertzel) updateCoeff() {
	g.coeff = 2 * math.Cos(2*math.Pi*g.frequency/g.sampleRate)
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
	g.count = 0
}

// ProcessSample feeds one sample.
func (g *Goertzel) ProcessSample(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.count++
}

// ProcessBlock feeds a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1, coeff := g.s0, g.s1, g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
	g.count += len(input)
}

// Power returns |X|^2 of the accumulated block.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X| of the accumulated block.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Amplitude returns the peak amplitude of a sinusoid at the target frequency,
// 2|X|/N over the N processed samples.
func (g *Goertzel) Amplitude() float64 {
	if g.count == 0 {
		return 0
	}
	return 2 * g.Magnitude() / float64(g.count)
}

// SetFrequency retunes the analyzer and clears its state.
func (g *Goertzel) SetFrequency(frequency float64) error {
	if err := validate(frequency, g.sampleRate); err != nil {
		return err
	}

	g.frequency = frequency
	g.updateCoeff()
	g.Reset()

	return nil
}

// Frequency returns the target frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate in Hz.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// Count returns the number of samples processed since the last Reset.
func (g *Goertzel) Count() int { return g.count }

// ToneAmplitude returns the amplitude of the frequency component of input.
func ToneAmplitude(input []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(input)

	return g.Amplitude(), nil
}

// PeakFrequency scans [lo, hi] in step increments and returns the frequency
// with the largest amplitude in input, together with that amplitude.
func PeakFrequency(input []float64, sampleRate, lo, hi, step float64) (freq, amplitude float64, err error) {
	if !(step > 0) || !(hi >= lo) {
		return 0, 0, fmt.Errorf("%w: [%v, %v] step %v", ErrInvalidRange, lo, hi, step)
	}

	g, err := NewGoertzel(lo, sampleRate)
	if err != nil {
		return 0, 0, err
	}

	freq, amplitude = lo, -1
	for f := lo; f <= hi; f += step {
		if err := g.SetFrequency(f); err != nil {
			return 0, 0, err
		}

		g.ProcessBlock(input)
		if a := g.Amplitude(); a > amplitude {
			freq, amplitude = f, a
		}
	}

	return freq, amplitude, nil
}
