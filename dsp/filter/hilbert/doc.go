// Package hilbert builds discrete analytic signals with an FFT-based Hilbert
// transformer.
//
// A [Transformer] works on fixed-size blocks. Each call to
// [Transformer.Analytic] takes the forward FFT, keeps the DC and Nyquist bins,
// doubles the positive-frequency bins, clears the negative-frequency bins and
// transforms back. The real part of the result reproduces the input block and
// the imaginary part is its discrete (circular) Hilbert transform, so a cosine
// comes back as cos + i*sin.
//
// All arithmetic is double precision and a Transformer does not allocate after
// construction, which makes it usable from audio callbacks.
package hilbert
