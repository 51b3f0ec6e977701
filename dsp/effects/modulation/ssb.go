package modulation

import "math"

// ssbModulator multiplies an analytic stream by a continuous-phase complex
// oscillator and keeps the real part.
type ssbModulator struct {
	inc      float64 // oscillator phase in cycles, [0, 1)
	fracFreq float64 // shift frequency in cycles per sample
	sign     float64 // +1 shifts up, -1 shifts down
}

func (m *ssbModulator) reset() {
	m.inc = 0
	m.fracFreq = 0
	m.sign = 1
}

func (m *ssbModulator) next(a complex128) float64 {
	if m.inc >= 1 {
		m.inc -= math.Floor(m.inc)
	}

	s, c := math.Sincos(2 * math.Pi * m.inc)
	y := real(a)*c - m.sign*imag(a)*s
	m.inc += m.fracFreq

	return y
}

func (m *ssbModulator) modulateBlock(dst []float64, src []complex128) {
	for i, a := range src {
		dst[i] = m.next(a)
	}
}
