package modulation

import "github.com/cwbudde/algo-fshift/dsp/core"

const (
	// HilbertSize is the analysis block length in samples.
	HilbertSize = 1024
	// Oversample is the number of overlapping analysis blocks covering each sample.
	Oversample = 4
	// HopSize is the analysis block advance in samples.
	HopSize = HilbertSize / Oversample
	// FIFOLatency is the input history kept between blocks. The cursor of the
	// overlap-add buffer starts here after every block.
	FIFOLatency = HilbertSize - HopSize
	// Latency is the end-to-end delay from input to output in samples.
	Latency = FIFOLatency + HopSize

	// MaxBlockSize is the largest chunk processed in one internal pass.
	// Longer host blocks are split.
	MaxBlockSize = 2048
	// MaxOutputChannels bounds the number of mixed output channels.
	MaxOutputChannels = core.MaxChannels
	// GainFadeSamples is the length of a gain change crossfade.
	GainFadeSamples = 512

	// MinShiftHz and MaxShiftHz bound the accepted shift frequency.
	MinShiftHz = 0.0
	MaxShiftHz = 24000.0

	gainSilenceThreshold = 1e-5
)
