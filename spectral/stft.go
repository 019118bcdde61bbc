package spectral

import (
	"fmt"
	"strings"

	"github.com/r9y9/gossp/stft"
	"gonum.org/v1/gonum/dsp/window"
)

// Window names an analysis window.
type Window int

const (
	// Hann is the symmetric Hann window.
	Hann Window = iota
	Hamming
	Blackman
)

func (w Window) String() string {
	switch w {
	case Hann:
		return "hann"
	case Hamming:
		return "hamming"
	case Blackman:
		return "blackman"
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// ParseWindow maps a window name to a Window.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hann", "hanning":
		return Hann, nil
	case "hamming":
		return Hamming, nil
	case "blackman":
		return Blackman, nil
	}
	return 0, fmt.Errorf("%w: unknown window %q", ErrInvalidInput, s)
}

// Coefficients returns the window of the given length.
func (w Window) Coefficients(size int) []float64 {
	seq := make([]float64, size)
	for i := range seq {
		seq[i] = 1
	}
	switch w {
	case Hamming:
		return window.Hamming(seq)
	case Blackman:
		return window.Blackman(seq)
	}
	return window.Hann(seq)
}

type options struct {
	window Window
	pad    PadMode
}

// Option configures STFT.
type Option func(*options)

// WithWindow selects the analysis window.
func WithWindow(w Window) Option {
	return func(o *options) { o.window = w }
}

// WithPadding selects the framing convention.
func WithPadding(p PadMode) Option {
	return func(o *options) { o.pad = p }
}

// CheckFraming validates a window and hop length pair.
func CheckFraming(windowLen, hop int) error {
	// length 1 windows divide by zero in the window formulas
	if windowLen < 2 {
		return fmt.Errorf("%w: window length %d", ErrInvalidInput, windowLen)
	}
	if hop <= 0 {
		return fmt.Errorf("%w: hop length %d", ErrInvalidInput, hop)
	}
	if hop > windowLen {
		return fmt.Errorf("%w: hop length %d exceeds window length %d", ErrInvalidInput, hop, windowLen)
	}
	return nil
}

// STFT computes the one-sided short-time Fourier transform of every channel.
// The result is shaped (frames, windowLen/2+1, channels).
func STFT(w *Waveform, windowLen, hop int, opts ...Option) (*Complex, error) {
	if err := CheckFraming(windowLen, hop); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	o := options{window: Hann, pad: PadReflect}
	for _, opt := range opts {
		opt(&o)
	}

	frames := NumFrames(w.Len(), windowLen, hop, o.pad)
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d samples are shorter than window length %d", ErrInvalidInput, w.Len(), windowLen)
	}

	s := stft.New(hop, windowLen)
	if o.window != Hann {
		s.Window = o.window.Coefficients(windowLen)
	}

	bins := windowLen/2 + 1
	out := NewComplex(frames, bins, w.NumChannels())

	for c, ch := range w.Samples {
		buf, err := pad(ch, windowLen, o.pad)
		if err != nil {
			return nil, err
		}

		spectrum := s.STFT(buf)

		for i := 0; i < frames; i++ {
			for j := 0; j < bins; j++ {
				out.Set(i, j, c, spectrum[i][j])
			}
		}
	}

	return out, nil
}
