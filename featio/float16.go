package featio

import (
	"encoding/binary"
	"io"

	"github.com/neurlang/vocfeat/spectral"
	"github.com/x448/float16"
)

// Float16 converts t to IEEE half-precision bit patterns in the tensor's
// (frames, bins, channels) order.
func Float16(t *spectral.Tensor) []uint16 {
	out := make([]uint16, len(t.Data))
	for i, v := range t.Data {
		out[i] = float16.Fromfloat32(float32(v)).Bits()
	}
	return out
}

// FromFloat16 rebuilds a tensor of the given shape from half-precision bits.
func FromFloat16(bits []uint16, frames, bins, channels int) *spectral.Tensor {
	t := spectral.NewTensor(frames, bins, channels)
	for i := range t.Data {
		t.Data[i] = float64(float16.Frombits(bits[i]).Float32())
	}
	return t
}

// WriteFloat16 writes t as little-endian half-precision values.
func WriteFloat16(w io.Writer, t *spectral.Tensor) error {
	return binary.Write(w, binary.LittleEndian, Float16(t))
}
