package modulation

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// gainMixer adds a mono block into output channels, ramping each channel's
// gain linearly towards its target.
type gainMixer struct {
	current [MaxOutputChannels]float64
	target  [MaxOutputChannels]float64
	scratch [MaxBlockSize]float64
}

func (m *gainMixer) reset() {
	clear(m.current[:])
	clear(m.target[:])
}

// setTargets copies gains into the targets; missing channels get zero.
func (m *gainMixer) setTargets(gains []float64) {
	clear(m.target[:])
	copy(m.target[:], gains)
}

// mix adds data·gain into out[c][off:off+len(data)] for c < channels.
// len(data) must not exceed MaxBlockSize.
func (m *gainMixer) mix(out [][]float64, off int, data []float64, channels int) {
	n := len(data)
	channels = min(channels, len(out), MaxOutputChannels)

	for c := 0; c < channels; c++ {
		dst := out[c][off : off+n]
		start, end := m.current[c], m.target[c]

		held := 0
		if math.Abs(end-start) > gainSilenceThreshold {
			fade := min(n, GainFadeSamples)
			step := (end - start) / float64(fade)
			g := start
			for k := 0; k < fade; k++ {
				g += step
				dst[k] += data[k] * g
			}
			held = fade
		}

		if held < n && math.Abs(end) > gainSilenceThreshold {
			s := m.scratch[:n-held]
			vecmath.ScaleBlock(s, data[held:], end)
			vecmath.AddBlockInPlace(dst[held:], s)
		}

		m.current[c] = end
	}
}
