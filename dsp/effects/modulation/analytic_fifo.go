package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-fshift/dsp/filter/hilbert"
	"github.com/cwbudde/algo-vecmath"
)

// analyticFIFO turns a real input stream into a delayed analytic stream by
// windowed overlap-add of per-block Hilbert transforms.
type analyticFIFO struct {
	hil *hilbert.Transformer
	win *hannWindow

	in       [HilbertSize]float64
	windowed [HilbertSize]float64
	analytic [HilbertSize]complex128
	accum    [HilbertSize]complex128
	out      [HopSize]complex128
	count    int
}

func newAnalyticFIFO(win *hannWindow) (*analyticFIFO, error) {
	hil, err := hilbert.New(HilbertSize)
	if err != nil {
		return nil, err
	}

	f := &analyticFIFO{hil: hil, win: win}
	f.reset()

	return f, nil
}

func (f *analyticFIFO) reset() {
	clear(f.in[:])
	clear(f.windowed[:])
	clear(f.analytic[:])
	clear(f.accum[:])
	clear(f.out[:])
	f.count = FIFOLatency
}

// push stores x and returns the analytic sample Latency samples behind it.
func (f *analyticFIFO) push(x float64) complex128 {
	f.in[f.count] = x
	y := f.out[f.count-FIFOLatency]

	f.count++
	if f.count == HilbertSize {
		f.processBlock()
	}

	return y
}

func (f *analyticFIFO) processBlock() {
	f.count = FIFOLatency

	vecmath.MulBlock(f.windowed[:], f.in[:], f.win.analysis[:])
	for k, v := range f.windowed {
		f.analytic[k] = complex(v, 0)
	}

	// The transformer is sized HilbertSize at construction, so this only
	// fails on a broken invariant.
	if err := f.hil.Analytic(f.analytic[:]); err != nil {
		panic(fmt.Sprintf("frequency shifter: analytic transform: %v", err))
	}

	for k, a := range f.analytic {
		s := f.win.synthesis[k]
		f.accum[k] += complex(real(a)*s, imag(a)*s)
	}

	copy(f.out[:], f.accum[:HopSize])
	copy(f.accum[:], f.accum[HopSize:])
	clear(f.accum[HilbertSize-HopSize:])

	copy(f.in[:FIFOLatency], f.in[HopSize:])
}
