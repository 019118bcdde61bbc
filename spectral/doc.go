// Package spectral provides the short-time Fourier analysis used by the
// vocoder feature pipeline.
//
// It converts multi-channel waveforms into complex spectrograms and derives
// magnitude or power spectra from them. It supports:
//   - Centred (reflect or zero padded) and left-aligned framing
//   - Hann, Hamming and Blackman analysis windows
//   - Per-channel transforms laid out as (frames, bins, channels)
//   - Dense real and complex tensors with summary helpers
package spectral
