package mel

import (
	"fmt"

	"github.com/neurlang/vocfeat/spectral"
	"gonum.org/v1/gonum/mat"
)

// Project applies fb along the frequency axis of spec, independently for each
// frame and channel. The result is shaped (frames, mel bins, channels).
func Project(spec *spectral.Tensor, fb *Filterbank) (*spectral.Tensor, error) {
	melBins, bins := fb.Dims()
	if spec.Bins != bins {
		return nil, fmt.Errorf("%w: spectrogram has %d bins, filterbank expects %d", spectral.ErrInvalidInput, spec.Bins, bins)
	}
	if spec.Frames == 0 || spec.Channels == 0 {
		return nil, fmt.Errorf("%w: empty spectrogram", spectral.ErrInvalidInput)
	}

	out := spectral.NewTensor(spec.Frames, melBins, spec.Channels)

	frames := mat.NewDense(spec.Frames, bins, nil)
	var projected mat.Dense
	for c := 0; c < spec.Channels; c++ {
		for f := 0; f < spec.Frames; f++ {
			for b := 0; b < bins; b++ {
				frames.Set(f, b, spec.At(f, b, c))
			}
		}

		projected.Mul(frames, fb.weights.T())

		for f := 0; f < spec.Frames; f++ {
			for m := 0; m < melBins; m++ {
				out.Set(f, m, c, projected.At(f, m))
			}
		}
	}

	return out, nil
}
