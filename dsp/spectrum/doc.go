// Package spectrum measures individual frequency components of real signals.
//
// A [Goertzel] analyzer evaluates one DFT term without computing a full FFT,
// which is the cheap way to check where a shifted tone landed and how much
// energy is left in its mirror image. [ToneAmplitude] and [PeakFrequency]
// wrap it for one-shot block analysis.
package spectrum
