package featio

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurlang/vocfeat/spectral"
	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func ramp(frames, bins, channels int) *spectral.Tensor {
	t := spectral.NewTensor(frames, bins, channels)
	for i := range t.Data {
		t.Data[i] = float64(i) / 8
	}
	return t
}

func TestReadReferenceTransposes(t *testing.T) {
	// (mel bins, frames) as stored by the reference extractor.
	ref := mat.NewDense(3, 2, []float64{
		0.1, 0.2,
		0.3, 0.4,
		0.5, 0.6,
	})
	var buf bytes.Buffer
	require.NoError(t, npyio.Write(&buf, ref))

	got, err := ReadReference(&buf)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 3, 1}, got.Shape())
	assert.Equal(t, []float64{0.1, 0.3, 0.5}, got.Channel(0)[0])
	assert.Equal(t, []float64{0.2, 0.4, 0.6}, got.Channel(0)[1])
}

func TestReadReferenceRejectsRank(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, npyio.Write(&buf, []float64{1, 2, 3}))

	_, err := ReadReference(&buf)
	assert.ErrorIs(t, err, ErrShape)
}

func TestWriteNPYChannel(t *testing.T) {
	feats := ramp(4, 3, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteNPY(&buf, feats, 1))

	var m mat.Dense
	require.NoError(t, npyio.Read(&buf, &m))
	r, c := m.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	for f := 0; f < 4; f++ {
		for b := 0; b < 3; b++ {
			assert.Equal(t, feats.At(f, b, 1), m.At(f, b))
		}
	}

	assert.ErrorIs(t, WriteNPY(&buf, feats, 2), spectral.ErrInvalidInput)
}

func TestReadSamples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, npyio.Write(&buf, []float64{0.5, -0.25, 0}))

	got, err := ReadSamples(&buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25, 0}, got)

	buf.Reset()
	require.NoError(t, npyio.Write(&buf, mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	_, err = ReadSamples(&buf)
	assert.ErrorIs(t, err, ErrShape)
}

func TestFloat16(t *testing.T) {
	feats := ramp(2, 2, 1)
	bits := Float16(feats)
	require.Len(t, bits, 4)

	// Multiples of 1/8 below 1 are exact in half precision.
	back := FromFloat16(bits, 2, 2, 1)
	assert.True(t, feats.Equal(back))
	assert.Equal(t, uint16(0x3c00), Float16(&spectral.Tensor{Frames: 1, Bins: 1, Channels: 1, Data: []float64{1}})[0])

	var buf bytes.Buffer
	require.NoError(t, WriteFloat16(&buf, feats))
	assert.Equal(t, 8, buf.Len())
}

func TestWritePNG(t *testing.T) {
	feats := ramp(5, 3, 1)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, feats, 0, true))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	gray, err := Image(feats, 0, false)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	assert.GreaterOrEqual(t, gray.GrayAt(4, 2).Y, uint8(254))

	flipped, err := Image(feats, 0, true)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), flipped.GrayAt(0, 2).Y)

	_, err = Image(feats, 1, false)
	assert.ErrorIs(t, err, spectral.ErrInvalidInput)
}

func TestWriteFile(t *testing.T) {
	feats := ramp(4, 3, 2)
	dir := t.TempDir()

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			name := filepath.Join(dir, "feats."+format)
			require.NoError(t, WriteFile(name, feats, format, 1, false))

			info, err := os.Stat(name)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	feats := ramp(4, 3, 2)
	dir := t.TempDir()

	tests := map[string]struct {
		format  string
		channel int
		err     error
	}{
		"unknown format":  {"wav", 0, ErrFormat},
		"npy bad channel": {"npy", 2, spectral.ErrInvalidInput},
		"png bad channel": {"png", 5, spectral.ErrInvalidInput},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name+".out")
			err := WriteFile(out, feats, tc.format, tc.channel, false)
			assert.ErrorIs(t, err, tc.err)
			_, err = os.Stat(out)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}
