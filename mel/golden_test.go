package mel

import (
	"math"
	"testing"

	"github.com/neurlang/vocfeat/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Weights below were computed with librosa's htk mel construction
// (rfftfreq bins, Slaney area normalisation) in float64.

func TestFilterbankGoldenWeights(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		sum     float64
		weights map[[2]int]float64
		nonzero map[int]int
	}{
		{
			name:    "r9y9",
			variant: R9Y9,
			sum:     3.716669026590022,
			weights: map[[2]int]float64{
				{0, 6}:    0.0072758264993887925,
				{0, 7}:    0.038161189842564995,
				{0, 8}:    0.001899804114688898,
				{40, 88}:  0.00268915349299821,
				{40, 90}:  0.010320591843164825,
				{40, 94}:  0.0011970851440054762,
				{79, 332}: 0.00017108521509749233,
				{79, 334}: 0.0009973447493863323,
				{79, 352}: 0.00037875916768984367,
			},
			nonzero: map[int]int{0: 3, 40: 7, 79: 21},
		},
		{
			name:    "tacotron2",
			variant: Tacotron2,
			sum:     3.9981137843911223,
			weights: map[[2]int]float64{
				{0, 1}:    0.04023916322124715,
				{0, 2}:    0.009632917016795969,
				{40, 87}:  0.0017197848134230369,
				{40, 89}:  0.008399671523796243,
				{40, 94}:  0.0009203839511042872,
				{79, 374}: 7.132678199249639e-05,
				{79, 376}: 0.0006613675279121568,
			},
			nonzero: map[int]int{0: 2, 40: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.variant.Params()
			require.NoError(t, err)
			fb, err := NewFilterbank(p.Key())
			require.NoError(t, err)

			for ij, want := range tt.weights {
				assert.InDelta(t, want, fb.At(ij[0], ij[1]), 1e-12, "weight %v", ij)
			}
			for row, want := range tt.nonzero {
				n := 0
				for _, w := range fb.Row(row) {
					if w > 0 {
						n++
					}
				}
				assert.Equal(t, want, n, "row %d", row)
			}

			rows, _ := fb.Dims()
			sum := 0.0
			for i := 0; i < rows; i++ {
				for _, w := range fb.Row(i) {
					sum += w
				}
			}
			assert.InDelta(t, tt.sum, sum, 1e-9)
		})
	}
}

func TestFeaturesGolden(t *testing.T) {
	tests := []struct {
		name     string
		variant  Variant
		sum      float64
		frame0   float64
		frame4   float64
		peakBin  int
		peak     float64
		frame4At map[int]float64
	}{
		{
			name:     "r9y9",
			variant:  R9Y9,
			sum:      186.96223303676376,
			frame0:   40.22059553713801,
			frame4:   8.563878655982599,
			peakBin:  10,
			peak:     0.9313389897472882,
			frame4At: map[int]float64{40: 0},
		},
		{
			name:     "tacotron2",
			variant:  Tacotron2,
			sum:      116.26360028316464,
			frame0:   28.488548753441023,
			frame4:   2.2804554099868315,
			peakBin:  15,
			peak:     0.7747394228072174,
			frame4At: map[int]float64{10: 0.0009314436707862868, 40: 6.318806124201126e-08},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.variant.Params()
			require.NoError(t, err)

			// 440 Hz at half scale, two windows long
			buf := make([]float64, 2*p.Window)
			for i := range buf {
				buf[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(p.SampleRate))
			}

			m := NewMel(tt.variant)
			m.Cache = NewCache()
			feats, err := m.ToMel(spectral.Mono(p.SampleRate, buf))
			require.NoError(t, err)

			require.Equal(t, [3]int{9, 80, 1}, feats.Shape())
			assert.InDelta(t, tt.sum, feats.Sum(), 1e-6)
			assert.InDelta(t, tt.frame0, feats.FrameSum(0), 1e-6)
			assert.InDelta(t, tt.frame4, feats.FrameSum(4), 1e-6)
			assert.InDelta(t, tt.peak, feats.At(4, tt.peakBin, 0), 1e-6)
			for b, want := range tt.frame4At {
				assert.InDelta(t, want, feats.At(4, b, 0), 1e-6, "bin %d", b)
			}
		})
	}
}
