package mel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidConfig is returned for malformed filterbank parameters.
var ErrInvalidConfig = errors.New("invalidConfig")

// Norm selects filter weight normalisation.
type Norm int

const (
	// NormNone leaves every triangle with a peak of 1.
	NormNone Norm = iota
	// NormSlaney scales each triangle to unit area in hertz.
	NormSlaney
)

// Key identifies one filterbank configuration.
type Key struct {
	SampleRate   int
	WindowLength int
	MelBins      int
	FMin         float64
	// FMax of zero means SampleRate/2.
	FMax float64
	Norm Norm
}

func (k Key) withDefaults() Key {
	if k.FMax == 0 {
		k.FMax = float64(k.SampleRate) / 2
	}
	return k
}

// Validate reports whether the key describes a buildable filterbank.
func (k Key) Validate() error {
	k = k.withDefaults()
	switch {
	case k.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, k.SampleRate)
	case k.WindowLength <= 0:
		return fmt.Errorf("%w: window length %d", ErrInvalidConfig, k.WindowLength)
	case k.MelBins <= 0:
		return fmt.Errorf("%w: %d mel bins", ErrInvalidConfig, k.MelBins)
	case k.FMin < 0:
		return fmt.Errorf("%w: fmin %g is negative", ErrInvalidConfig, k.FMin)
	case k.FMin >= k.FMax:
		return fmt.Errorf("%w: fmin %g not below fmax %g", ErrInvalidConfig, k.FMin, k.FMax)
	case k.FMax > float64(k.SampleRate)/2:
		return fmt.Errorf("%w: fmax %g above nyquist %g", ErrInvalidConfig, k.FMax, float64(k.SampleRate)/2)
	case k.Norm != NormNone && k.Norm != NormSlaney:
		return fmt.Errorf("%w: unknown norm %d", ErrInvalidConfig, int(k.Norm))
	}
	return nil
}

// Filterbank is an immutable (mel bins × frequency bins) weight matrix.
type Filterbank struct {
	key     Key
	weights *mat.Dense
}

// NewFilterbank builds the triangular filterbank for k without caching.
func NewFilterbank(k Key) (*Filterbank, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	k = k.withDefaults()

	bins := k.WindowLength/2 + 1
	fftFreqs := linspace(0, float64(k.SampleRate)/2, bins)

	mels := linspace(HzToMel(k.FMin), HzToMel(k.FMax), k.MelBins+2)
	hz := make([]float64, len(mels))
	for i, m := range mels {
		hz[i] = MelToHz(m)
	}

	weights := mat.NewDense(k.MelBins, bins, nil)
	for i := 0; i < k.MelBins; i++ {
		lowWidth := hz[i+1] - hz[i]
		highWidth := hz[i+2] - hz[i+1]

		enorm := 1.0
		if k.Norm == NormSlaney {
			enorm = 2.0 / (hz[i+2] - hz[i])
		}

		for j, f := range fftFreqs {
			lower := (f - hz[i]) / lowWidth
			upper := (hz[i+2] - f) / highWidth
			w := math.Max(0, math.Min(lower, upper))
			weights.Set(i, j, w*enorm)
		}
	}

	return &Filterbank{key: k, weights: weights}, nil
}

// Key returns the configuration the filterbank was built for, with defaults
// filled in.
func (fb *Filterbank) Key() Key {
	return fb.key
}

// Dims returns (mel bins, frequency bins).
func (fb *Filterbank) Dims() (int, int) {
	return fb.weights.Dims()
}

// At returns the weight of frequency bin j in mel bin i.
func (fb *Filterbank) At(i, j int) float64 {
	return fb.weights.At(i, j)
}

// Row returns a copy of the weights of mel bin i.
func (fb *Filterbank) Row(i int) []float64 {
	_, c := fb.weights.Dims()
	return mat.Row(make([]float64, c), i, fb.weights)
}

// Equal reports whether two filterbanks hold identical weights.
func (fb *Filterbank) Equal(o *Filterbank) bool {
	return mat.Equal(fb.weights, o.weights)
}
