package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/neurlang/vocfeat/spectral"
)

// ErrFileNotLoaded is returned when an input file yields no samples.
var ErrFileNotLoaded = errors.New("wavNotLoaded")

// ErrUnsupported is returned for unknown file types or channel layouts.
var ErrUnsupported = errors.New("unsupportedAudio")

// Load decodes a .wav or .flac file based on its extension.
func Load(name string) (*spectral.Waveform, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return LoadWav(name)
	case ".flac":
		return LoadFlac(name)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

// LoadWav loads a wav file into a waveform.
func LoadWav(name string) (*spectral.Waveform, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeWav(file)
}

// DecodeWav decodes wav data from r.
func DecodeWav(r io.Reader) (*spectral.Waveform, error) {
	stream, format, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	channels := format.NumChannels
	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupported, channels)
	}

	out := make([][]float64, channels)
	samples := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		for i := 0; i < n; i++ {
			for c := 0; c < channels; c++ {
				out[c] = append(out[c], samples[i][c])
			}
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	if len(out[0]) == 0 {
		return nil, ErrFileNotLoaded
	}

	return spectral.NewWaveform(int(format.SampleRate), out...)
}

// SaveWav saves a mono or stereo waveform as 16-bit PCM.
func SaveWav(name string, w *spectral.Waveform) error {
	if err := w.Validate(); err != nil {
		return err
	}
	channels := w.NumChannels()
	if channels > 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupported, channels)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	pos := 0
	streamer := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= w.Len() {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < w.Len(); n++ {
			samples[n][0] = w.Samples[0][pos]
			samples[n][1] = w.Samples[channels-1][pos]
			pos++
		}
		return n, true
	})

	format := beep.Format{
		SampleRate:  beep.SampleRate(w.SampleRate),
		NumChannels: channels,
		Precision:   2,
	}
	if err := wav.Encode(f, streamer, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
