package featio

import (
	"errors"
	"fmt"
	"io"

	"github.com/neurlang/vocfeat/spectral"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// ErrShape is returned when a stored array does not have the expected rank.
var ErrShape = errors.New("unexpectedShape")

// WriteNPY writes one channel of t as a (frames, bins) float64 .npy array.
func WriteNPY(w io.Writer, t *spectral.Tensor, channel int) error {
	if channel < 0 || channel >= t.Channels {
		return fmt.Errorf("%w: channel %d of %d", spectral.ErrInvalidInput, channel, t.Channels)
	}
	m := mat.NewDense(t.Frames, t.Bins, nil)
	for f := 0; f < t.Frames; f++ {
		for b := 0; b < t.Bins; b++ {
			m.Set(f, b, t.At(f, b, channel))
		}
	}
	return npyio.Write(w, m)
}

type array struct {
	shape []int
	data  []float64
}

func readArray(r io.Reader) (*array, error) {
	rd, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}
	var data []float64
	if err := rd.Read(&data); err != nil {
		return nil, err
	}
	shape := rd.Header.Descr.Shape
	if rd.Header.Descr.Fortran && len(shape) == 2 {
		data = fromFortran(data, shape[0], shape[1])
	}
	return &array{shape: shape, data: data}, nil
}

func fromFortran(data []float64, rows, cols int) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = data[j*rows+i]
		}
	}
	return out
}

// ReadReference reads a (mel bins, frames) reference array and returns it as
// a (frames, mel bins, 1) tensor, the layout produced by the mel package.
func ReadReference(r io.Reader) (*spectral.Tensor, error) {
	a, err := readArray(r)
	if err != nil {
		return nil, err
	}
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("%w: reference has shape %v, want 2 dimensions", ErrShape, a.shape)
	}
	bins, frames := a.shape[0], a.shape[1]
	t := spectral.NewTensor(frames, bins, 1)
	for b := 0; b < bins; b++ {
		for f := 0; f < frames; f++ {
			t.Set(f, b, 0, a.data[b*frames+f])
		}
	}
	return t, nil
}

// ReadSamples reads a mono waveform stored as an (n,) or (n, 1) array.
func ReadSamples(r io.Reader) ([]float64, error) {
	a, err := readArray(r)
	if err != nil {
		return nil, err
	}
	switch {
	case len(a.shape) == 1:
	case len(a.shape) == 2 && a.shape[1] == 1:
	case len(a.shape) == 3 && a.shape[1] == 1 && a.shape[2] == 1:
	default:
		return nil, fmt.Errorf("%w: samples have shape %v, want mono", ErrShape, a.shape)
	}
	return a.data, nil
}
