package modulation

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-fshift/dsp/window"
)

// hannWindow holds the process-wide analysis window and the synthesis window
// pre-scaled by the overlap-add normalization.
type hannWindow struct {
	analysis  [HilbertSize]float64
	synthesis [HilbertSize]float64
	norm      float64
}

var (
	hannOnce   sync.Once
	hannShared hannWindow
	hannErr    error
)

// hannTable returns the shared window table, building it on first use.
func hannTable() (*hannWindow, error) {
	hannOnce.Do(func() {
		hannErr = buildHannTable(&hannShared)
	})
	if hannErr != nil {
		return nil, hannErr
	}
	return &hannShared, nil
}

func buildHannTable(w *hannWindow) error {
	coeffs, err := window.Hann(HilbertSize)
	if err != nil {
		return fmt.Errorf("frequency shifter window: %w", err)
	}

	// Mirror the lower half so the table is exactly symmetric.
	for i := 0; i < HilbertSize/2; i++ {
		w.analysis[i] = coeffs[i]
		w.analysis[HilbertSize-1-i] = coeffs[i]
	}

	gain, err := window.OverlapAddGain(window.Squared(w.analysis[:]), HopSize)
	if err != nil {
		return fmt.Errorf("frequency shifter overlap gain: %w", err)
	}
	if gain <= 0 {
		return fmt.Errorf("frequency shifter overlap gain must be > 0: %f", gain)
	}

	w.norm = 1 / gain
	for i, c := range w.analysis {
		w.synthesis[i] = c * w.norm
	}

	return nil
}
