// Command tomel converts audio files (WAV/FLAC) to vocoder mel features.
//
// This tool extracts Tacotron2-style or R9Y9-style mel features from an audio
// file, resampling it to the rate the chosen variant expects, and writes them
// as a NumPy array, a raw half-precision buffer or a PNG image.
//
// Usage:
//
//	tomel [--config file.yaml] [--variant r9y9|tacotron2] [--format npy|f16|png] <audio_file>
//
// The output file will be named <audio_file>.<format> unless --output is given.
//
// Supported input formats: .wav, .flac
package main
