package audio

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/neurlang/vocfeat/spectral"
)

// LoadFlac loads a flac file into a waveform with samples scaled to [-1, 1).
func LoadFlac(name string) (*spectral.Waveform, error) {
	stream, err := flac.Open(name)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	channels := int(stream.Info.NChannels)
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupported, channels)
	}
	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))

	out := make([][]float64, channels)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for c := 0; c < channels; c++ {
			for _, s := range frame.Subframes[c].Samples {
				out[c] = append(out[c], float64(s)/scale)
			}
		}
	}
	if len(out[0]) == 0 {
		return nil, ErrFileNotLoaded
	}

	return spectral.NewWaveform(int(stream.Info.SampleRate), out...)
}
