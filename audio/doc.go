// Package audio decodes audio files into waveforms for feature extraction.
//
// It supports:
//   - WAV decoding and encoding
//   - FLAC decoding
//   - Sample rate conversion to the rate a feature variant expects
package audio
