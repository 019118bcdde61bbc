package audio

import (
	"fmt"

	"github.com/neurlang/vocfeat/spectral"
	resampling "github.com/tphakala/go-audio-resampling"
)

// Resample converts w to the given sample rate. A waveform already at that
// rate is returned unchanged.
func Resample(w *spectral.Waveform, rate int) (*spectral.Waveform, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: target sample rate %d", spectral.ErrInvalidInput, rate)
	}
	if w.SampleRate == rate {
		return w, nil
	}

	config := &resampling.Config{
		InputRate:  float64(w.SampleRate),
		OutputRate: float64(rate),
		Channels:   w.NumChannels(),
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}
	resampler, err := resampling.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	output, err := resampler.Process(w.Interleaved())
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}
	if len(output) == 0 {
		return nil, ErrFileNotLoaded
	}

	return spectral.FromInterleaved(rate, w.NumChannels(), output)
}
