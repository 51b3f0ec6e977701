package modulation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fshift/dsp/core"
)

// Direction selects which way the spectrum is shifted.
type Direction int

// Values follow the host property encoding.
const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionOff
)

var errUnknownDirection = errors.New("unknown frequency shifter direction")

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	case DirectionOff:
		return "off"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool {
	return d >= DirectionDown && d <= DirectionOff
}

// ParseDirection parses "up", "down" or "off" (case insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return DirectionDown, nil
	case "up":
		return DirectionUp, nil
	case "off":
		return DirectionOff, nil
	default:
		return DirectionOff, fmt.Errorf("%w: %q", errUnknownDirection, s)
	}
}

// Params is the host-facing parameter set applied by Update.
type Params struct {
	FrequencyHz float64
	Direction   Direction
	// Gains holds the target gain per output channel. Missing channels are
	// silent.
	Gains []float64
}

// Validate reports whether p can be applied.
func (p Params) Validate() error {
	if err := validateShiftHz(p.FrequencyHz); err != nil {
		return err
	}

	if !p.Direction.valid() {
		return fmt.Errorf("frequency shifter direction: %w: %d", errUnknownDirection, int(p.Direction))
	}

	return validateGains(p.Gains)
}

func validateShiftHz(hz float64) error {
	if !core.IsFinite(hz) || hz < MinShiftHz || hz > MaxShiftHz {
		return fmt.Errorf("frequency shifter shift Hz must be in [%g, %g]: %f", MinShiftHz, MaxShiftHz, hz)
	}
	return nil
}

func validateGains(gains []float64) error {
	if len(gains) > MaxOutputChannels {
		return fmt.Errorf("frequency shifter gains exceed %d channels: %d", MaxOutputChannels, len(gains))
	}

	for i, g := range gains {
		if !core.IsFinite(g) {
			return fmt.Errorf("frequency shifter gain[%d] must be finite: %f", i, g)
		}
	}

	return nil
}
