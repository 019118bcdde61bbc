package featio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/neurlang/vocfeat/spectral"
)

// Image renders one channel of t as a grayscale image with frames along x
// and bins along y, scaled between the channel's minimum and maximum.
// When reverse is set the lowest bin is drawn at the bottom.
func Image(t *spectral.Tensor, channel int, reverse bool) (*image.Gray, error) {
	if channel < 0 || channel >= t.Channels {
		return nil, fmt.Errorf("%w: channel %d of %d", spectral.ErrInvalidInput, channel, t.Channels)
	}
	if t.Frames == 0 || t.Bins == 0 {
		return nil, fmt.Errorf("%w: empty tensor", spectral.ErrInvalidInput)
	}

	lo, hi := t.At(0, 0, channel), t.At(0, 0, channel)
	for f := 0; f < t.Frames; f++ {
		for b := 0; b < t.Bins; b++ {
			v := t.At(f, b, channel)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	img := image.NewGray(image.Rect(0, 0, t.Frames, t.Bins))
	for f := 0; f < t.Frames; f++ {
		for b := 0; b < t.Bins; b++ {
			y := b
			if reverse {
				y = t.Bins - b - 1
			}
			img.SetGray(f, y, color.Gray{Y: uint8((t.At(f, b, channel) - lo) * scale)})
		}
	}
	return img, nil
}

// WritePNG encodes Image(t, channel, reverse) as PNG.
func WritePNG(w io.Writer, t *spectral.Tensor, channel int, reverse bool) error {
	img, err := Image(t, channel, reverse)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
