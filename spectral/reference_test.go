package spectral_test

import (
	"os"
	"testing"

	"github.com/neurlang/vocfeat/audio"
	"github.com/neurlang/vocfeat/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monoWav = "../testdata/mono.wav"

func TestSTFTReferenceFile(t *testing.T) {
	if _, err := os.Stat(monoWav); err != nil {
		t.Skipf("Skip - %s not found", monoWav)
	}

	wave, err := audio.LoadWav(monoWav)
	require.NoError(t, err)
	require.Equal(t, 44100, wave.SampleRate)

	x, err := spectral.STFT(wave, 1024, 256)
	require.NoError(t, err)
	assert.Equal(t, [3]int{647, 513, 1}, x.Shape())

	mag := spectral.Magnitude(x)
	assert.InDelta(t, 32820.952, mag.Sum(), 5e-4)
	assert.InDelta(t, 115.632, mag.FrameSum(200), 5e-4)
	assert.InDelta(t, 6.049, mag.FrameSum(40), 5e-4)
}
