package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-fshift/dsp/core"
)

const defaultFreqShiftHz = 100.0

// FrequencyShifterOption mutates frequency shifter construction parameters.
type FrequencyShifterOption func(*frequencyShifterConfig) error

type frequencyShifterConfig struct {
	channels  int
	shiftHz   float64
	direction Direction
	gains     []float64
}

func defaultFrequencyShifterConfig() frequencyShifterConfig {
	return frequencyShifterConfig{
		channels:  core.DefaultProcessorConfig().Channels,
		shiftHz:   defaultFreqShiftHz,
		direction: DirectionUp,
	}
}

// WithFrequencyShiftHz sets the shift frequency in Hz.
func WithFrequencyShiftHz(shiftHz float64) FrequencyShifterOption {
	return func(cfg *frequencyShifterConfig) error {
		if err := validateShiftHz(shiftHz); err != nil {
			return err
		}
		cfg.shiftHz = shiftHz
		return nil
	}
}

// WithDirection sets the shift direction.
func WithDirection(d Direction) FrequencyShifterOption {
	return func(cfg *frequencyShifterConfig) error {
		if !d.valid() {
			return fmt.Errorf("frequency shifter direction: %w: %d", errUnknownDirection, int(d))
		}
		cfg.direction = d
		return nil
	}
}

// WithOutputChannels sets the number of mixed output channels.
func WithOutputChannels(channels int) FrequencyShifterOption {
	return func(cfg *frequencyShifterConfig) error {
		if channels < 1 || channels > MaxOutputChannels {
			return fmt.Errorf("frequency shifter channels must be in [1, %d]: %d", MaxOutputChannels, channels)
		}
		cfg.channels = channels
		return nil
	}
}

// WithTargetGains sets the initial per-channel target gains. Without it every
// configured channel targets unity. Gains start at zero and fade in over the
// first processed block.
func WithTargetGains(gains ...float64) FrequencyShifterOption {
	return func(cfg *frequencyShifterConfig) error {
		if err := validateGains(gains); err != nil {
			return err
		}
		cfg.gains = make([]float64, len(gains))
		copy(cfg.gains, gains)
		return nil
	}
}

// FrequencyShifter is a single-sideband frequency shifter built on an
// overlap-add analytic signal generator. Output is mixed additively into
// the caller's channel buffers.
type FrequencyShifter struct {
	sampleRate float64
	channels   int
	shiftHz    float64
	direction  Direction

	fifo  *analyticFIFO
	ssb   ssbModulator
	mixer gainMixer

	shifted [MaxBlockSize]float64
}

// NewFrequencyShifter creates a frequency shifter with optional settings.
func NewFrequencyShifter(sampleRate float64, opts ...FrequencyShifterOption) (*FrequencyShifter, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("frequency shifter sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultFrequencyShifterConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	win, err := hannTable()
	if err != nil {
		return nil, err
	}

	fifo, err := newAnalyticFIFO(win)
	if err != nil {
		return nil, fmt.Errorf("frequency shifter: %w", err)
	}

	f := &FrequencyShifter{
		sampleRate: sampleRate,
		channels:   cfg.channels,
		fifo:       fifo,
	}
	f.Reset()

	gains := cfg.gains
	if gains == nil {
		gains = make([]float64, cfg.channels)
		for i := range gains {
			gains[i] = 1
		}
	}

	err = f.Update(Params{FrequencyHz: cfg.shiftHz, Direction: cfg.direction, Gains: gains})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// DeviceUpdate re-initializes the shifter for a new device configuration.
// All state is cleared: buffers, oscillator phase, shift frequency and gains.
// Parameters must be applied again with Update. cfg.BlockSize is validated
// but not retained: Process accepts blocks of any length. An error leaves the
// shifter unchanged and means the configuration cannot be served.
func (f *FrequencyShifter) DeviceUpdate(cfg core.ProcessorConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("frequency shifter device: %w", err)
	}

	f.sampleRate = cfg.SampleRate
	f.channels = cfg.Channels
	f.Reset()

	return nil
}

// Reset clears all streaming state, the shift frequency and the gains.
func (f *FrequencyShifter) Reset() {
	f.fifo.reset()
	f.ssb.reset()
	f.mixer.reset()
	clear(f.shifted[:])
	f.shiftHz = 0
	f.direction = DirectionOff
}

// Update applies a parameter set. Current gains are kept so the next
// Process call crossfades towards the new targets.
func (f *FrequencyShifter) Update(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	f.shiftHz = p.FrequencyHz
	f.direction = p.Direction
	f.ssb.fracFreq = p.FrequencyHz / f.sampleRate

	switch p.Direction {
	case DirectionUp:
		f.ssb.sign = 1
	case DirectionDown:
		f.ssb.sign = -1
	case DirectionOff:
		f.ssb.inc = 0
		f.ssb.fracFreq = 0
	}

	f.mixer.setTargets(p.Gains)

	return nil
}

// SetTargetGains updates only the per-channel target gains.
func (f *FrequencyShifter) SetTargetGains(gains []float64) error {
	if err := validateGains(gains); err != nil {
		return err
	}
	f.mixer.setTargets(gains)
	return nil
}

// Process shifts input and adds the result into each configured output
// channel. Every output row must hold at least len(input) samples; rows
// beyond the configured channel count are left untouched.
func (f *FrequencyShifter) Process(input []float64, output [][]float64) {
	for off := 0; off < len(input); off += MaxBlockSize {
		end := min(off+MaxBlockSize, len(input))
		chunk := input[off:end]
		shifted := f.shifted[:len(chunk)]

		for i, x := range chunk {
			shifted[i] = f.ssb.next(f.fifo.push(x))
		}

		f.mixer.mix(output, off, shifted, f.channels)
	}
}

// SampleRate returns sample rate in Hz.
func (f *FrequencyShifter) SampleRate() float64 { return f.sampleRate }

// ShiftHz returns the configured shift frequency in Hz.
func (f *FrequencyShifter) ShiftHz() float64 { return f.shiftHz }

// Direction returns the configured shift direction.
func (f *FrequencyShifter) Direction() Direction { return f.direction }

// FracFreq returns the shift frequency in cycles per sample. It is zero when
// the direction is off.
func (f *FrequencyShifter) FracFreq() float64 { return f.ssb.fracFreq }

// Sign returns +1 for upward and -1 for downward shifting.
func (f *FrequencyShifter) Sign() float64 { return f.ssb.sign }

// Channels returns the number of mixed output channels.
func (f *FrequencyShifter) Channels() int { return f.channels }

// Latency returns the input to output delay in samples.
func (f *FrequencyShifter) Latency() int { return Latency }
