package mel

import (
	"fmt"
	"log/slog"

	"github.com/neurlang/vocfeat/spectral"
)

// Mel represents the configuration for extracting vocoder features.
type Mel struct {
	Variant Variant
	Padding spectral.PadMode
	Window  spectral.Window

	// Cache holds filterbanks; nil means DefaultCache.
	Cache *Cache
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger
}

// NewMel creates a new Mel for variant v with the default framing.
func NewMel(v Variant) *Mel {
	return &Mel{
		Variant: v,
		Padding: spectral.PadReflect,
		Window:  spectral.Hann,
	}
}

func (m *Mel) cache() *Cache {
	if m.Cache == nil {
		return DefaultCache()
	}
	return m.Cache
}

func (m *Mel) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.Logger
}

// Params returns the hyperparameters of the configured variant.
func (m *Mel) Params() (Params, error) {
	return m.Variant.Params()
}

// Spectrogram returns the uncompressed mel spectrogram of w, shaped
// (frames, mel bins, channels).
func (m *Mel) Spectrogram(w *spectral.Waveform) (*spectral.Tensor, error) {
	p, err := m.Variant.Params()
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if w.SampleRate != p.SampleRate {
		return nil, fmt.Errorf("%w: %s expects %d Hz, got %d Hz", spectral.ErrInvalidInput, m.Variant, p.SampleRate, w.SampleRate)
	}

	fb, built, err := m.cache().get(p.Key())
	if err != nil {
		return nil, err
	}
	if built {
		m.logger().Debug("built mel filterbank",
			"variant", m.Variant.String(),
			"sample_rate", p.SampleRate,
			"window", p.Window,
			"mel_bins", p.MelBins,
			"fmin", p.FMin,
			"fmax", p.FMax)
	}

	x, err := spectral.STFT(w, p.Window, p.Hop,
		spectral.WithPadding(m.Padding),
		spectral.WithWindow(m.Window))
	if err != nil {
		return nil, err
	}

	return Project(spectral.Spectrum(x, p.Spectrum), fb)
}

// ToMel generates the variant's feature tensor from a waveform.
func (m *Mel) ToMel(w *spectral.Waveform) (*spectral.Tensor, error) {
	t, err := m.Spectrogram(w)
	if err != nil {
		return nil, err
	}

	m.Variant.compress(t)

	m.logger().Debug("extracted features",
		"variant", m.Variant.String(),
		"frames", t.Frames,
		"channels", t.Channels)

	return t, nil
}

// Features extracts variant v features from w using the default cache.
func Features(v Variant, w *spectral.Waveform) (*spectral.Tensor, error) {
	return NewMel(v).ToMel(w)
}

// Tacotron2Features extracts Tacotron2-style features from a 24 kHz waveform.
func Tacotron2Features(w *spectral.Waveform) (*spectral.Tensor, error) {
	return Features(Tacotron2, w)
}

// R9Y9Features extracts R9Y9-style features from a 22.05 kHz waveform.
func R9Y9Features(w *spectral.Waveform) (*spectral.Tensor, error) {
	return Features(R9Y9, w)
}
