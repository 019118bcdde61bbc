package spectral

import (
	"fmt"
	"math"
)

// Waveform holds decoded PCM samples at a sample rate.
// Samples is indexed [channel][time]; every channel has the same length.
type Waveform struct {
	SampleRate int
	Samples    [][]float64
}

// NewWaveform creates a waveform from one slice per channel and validates it.
func NewWaveform(sampleRate int, channels ...[]float64) (*Waveform, error) {
	w := &Waveform{SampleRate: sampleRate, Samples: channels}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Mono wraps a single channel buffer without copying it.
func Mono(sampleRate int, buf []float64) *Waveform {
	return &Waveform{SampleRate: sampleRate, Samples: [][]float64{buf}}
}

// FromInterleaved splits an interleaved sample buffer into channels.
func FromInterleaved(sampleRate, channels int, buf []float64) (*Waveform, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidInput, channels)
	}
	if len(buf)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels", ErrInvalidInput, len(buf), channels)
	}
	n := len(buf) / channels
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, n)
		for i := 0; i < n; i++ {
			out[c][i] = buf[i*channels+c]
		}
	}
	return NewWaveform(sampleRate, out...)
}

// Interleaved returns the samples as a single time-major buffer.
func (w *Waveform) Interleaved() []float64 {
	nch := w.NumChannels()
	out := make([]float64, w.Len()*nch)
	for c, ch := range w.Samples {
		for i, v := range ch {
			out[i*nch+c] = v
		}
	}
	return out
}

// Len returns the number of samples per channel.
func (w *Waveform) Len() int {
	if len(w.Samples) == 0 {
		return 0
	}
	return len(w.Samples[0])
}

// NumChannels returns the channel count.
func (w *Waveform) NumChannels() int {
	return len(w.Samples)
}

// Duration returns the length in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(w.Len()) / float64(w.SampleRate)
}

// Validate checks the waveform is non-empty, rectangular and finite.
func (w *Waveform) Validate() error {
	if w == nil || len(w.Samples) == 0 {
		return fmt.Errorf("%w: waveform has no channels", ErrInvalidInput)
	}
	if w.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidInput, w.SampleRate)
	}
	n := len(w.Samples[0])
	if n == 0 {
		return fmt.Errorf("%w: waveform has zero length", ErrInvalidInput)
	}
	for c, ch := range w.Samples {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidInput, c, len(ch), n)
		}
		for i, v := range ch {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite sample at channel %d index %d", ErrInvalidInput, c, i)
			}
		}
	}
	return nil
}
