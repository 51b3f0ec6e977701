// Package modulation provides a streaming single-sideband frequency shifter.
//
// The FrequencyShifter moves every spectral component of a mono input by a
// fixed number of hertz, up or down, and mixes the result additively into a
// set of output channels with per-channel gain crossfades. Analysis runs on
// overlapping Hann-windowed blocks of HilbertSize samples advanced by
// HopSize; the analytic signal of each block is produced by an FFT-based
// Hilbert transform and resynthesized by overlap-add before complex
// modulation.
//
// Processing never allocates. A FrequencyShifter is not safe for concurrent
// use; hosts serialize Process and parameter updates per instance.
package modulation
