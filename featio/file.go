package featio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/neurlang/vocfeat/spectral"
)

// ErrFormat is returned for an unknown output format name.
var ErrFormat = errors.New("unknownFormat")

// Formats lists the output format names accepted by WriteFile.
var Formats = []string{"npy", "f16", "png"}

// Write encodes t to w in the named format. channel selects the channel for
// npy and png; f16 writes every channel.
func Write(w io.Writer, t *spectral.Tensor, format string, channel int, reverse bool) error {
	switch format {
	case "npy":
		return WriteNPY(w, t, channel)
	case "f16":
		return WriteFloat16(w, t)
	case "png":
		return WritePNG(w, t, channel, reverse)
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// WriteFile writes t to the named file. A file that could not be written
// completely is removed.
func WriteFile(name string, t *spectral.Tensor, format string, channel int, reverse bool) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if err = Write(f, t, format, channel, reverse); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
