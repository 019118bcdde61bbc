// Command tostft converts audio files (WAV/FLAC) to linear-frequency spectrograms.
//
// This tool computes the short-time Fourier transform of an audio file and
// writes its magnitude or power spectrum. Unlike tomel it keeps the file's own
// sample rate and every frequency bin.
//
// Usage:
//
//	tostft [--window 1024] [--hop 256] [--spectrum magnitude|power] <audio_file>
//
// The output file will be named <audio_file>.<format> unless --output is given.
//
// Supported input formats: .wav, .flac
package main
