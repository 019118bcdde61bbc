package spectral

import (
	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense real array shaped (frames, bins, channels).
// Data is laid out frame-major with channels innermost.
type Tensor struct {
	Frames   int
	Bins     int
	Channels int
	Data     []float64
}

// NewTensor allocates a zeroed tensor.
func NewTensor(frames, bins, channels int) *Tensor {
	return &Tensor{
		Frames:   frames,
		Bins:     bins,
		Channels: channels,
		Data:     make([]float64, frames*bins*channels),
	}
}

// Shape returns (frames, bins, channels).
func (t *Tensor) Shape() [3]int {
	return [3]int{t.Frames, t.Bins, t.Channels}
}

func (t *Tensor) index(frame, bin, channel int) int {
	return (frame*t.Bins+bin)*t.Channels + channel
}

// At returns the value at (frame, bin, channel).
func (t *Tensor) At(frame, bin, channel int) float64 {
	return t.Data[t.index(frame, bin, channel)]
}

// Set stores v at (frame, bin, channel).
func (t *Tensor) Set(frame, bin, channel int, v float64) {
	t.Data[t.index(frame, bin, channel)] = v
}

// Frame returns the (bins, channels) slab of one frame. The slice aliases Data.
func (t *Tensor) Frame(frame int) []float64 {
	stride := t.Bins * t.Channels
	return t.Data[frame*stride : (frame+1)*stride]
}

// Channel copies one channel out as [frame][bin].
func (t *Tensor) Channel(channel int) [][]float64 {
	out := make([][]float64, t.Frames)
	for f := range out {
		out[f] = make([]float64, t.Bins)
		for b := range out[f] {
			out[f][b] = t.At(f, b, channel)
		}
	}
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.Data)
}

// FrameSum returns the sum of all elements of one frame.
func (t *Tensor) FrameSum(frame int) float64 {
	return floats.Sum(t.Frame(frame))
}

// Min returns the smallest element.
func (t *Tensor) Min() float64 {
	return floats.Min(t.Data)
}

// Max returns the largest element.
func (t *Tensor) Max() float64 {
	return floats.Max(t.Data)
}

// Equal reports whether both tensors have the same shape and identical elements.
func (t *Tensor) Equal(o *Tensor) bool {
	if t.Shape() != o.Shape() {
		return false
	}
	return floats.Equal(t.Data, o.Data)
}

// Complex is a dense complex array shaped (frames, bins, channels).
type Complex struct {
	Frames   int
	Bins     int
	Channels int
	Data     []complex128
}

// NewComplex allocates a zeroed complex tensor.
func NewComplex(frames, bins, channels int) *Complex {
	return &Complex{
		Frames:   frames,
		Bins:     bins,
		Channels: channels,
		Data:     make([]complex128, frames*bins*channels),
	}
}

// Shape returns (frames, bins, channels).
func (x *Complex) Shape() [3]int {
	return [3]int{x.Frames, x.Bins, x.Channels}
}

// At returns the value at (frame, bin, channel).
func (x *Complex) At(frame, bin, channel int) complex128 {
	return x.Data[(frame*x.Bins+bin)*x.Channels+channel]
}

// Set stores v at (frame, bin, channel).
func (x *Complex) Set(frame, bin, channel int, v complex128) {
	x.Data[(frame*x.Bins+bin)*x.Channels+channel] = v
}
