package mel

import (
	"fmt"
	"math"
	"strings"

	"github.com/neurlang/vocfeat/spectral"
)

// Variant names a feature extraction convention.
type Variant int

const (
	// Tacotron2 produces [0,1] rescaled natural-log mel power features at 24 kHz.
	Tacotron2 Variant = iota + 1
	// R9Y9 produces [0,1] normalised decibel mel magnitude features at 22.05 kHz.
	R9Y9
)

// Variants lists every known variant.
var Variants = []Variant{Tacotron2, R9Y9}

func (v Variant) String() string {
	switch v {
	case Tacotron2:
		return "tacotron2"
	case R9Y9:
		return "r9y9"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps "tacotron2" or "r9y9" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tacotron2", "taco2":
		return Tacotron2, nil
	case "r9y9":
		return R9Y9, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Params are the fixed hyperparameters of a variant.
type Params struct {
	SampleRate int
	Window     int
	Hop        int
	MelBins    int
	FMin       float64
	FMax       float64
	Norm       Norm
	Spectrum   spectral.Kind
}

// Key returns the filterbank configuration for p.
func (p Params) Key() Key {
	return Key{
		SampleRate:   p.SampleRate,
		WindowLength: p.Window,
		MelBins:      p.MelBins,
		FMin:         p.FMin,
		FMax:         p.FMax,
		Norm:         p.Norm,
	}
}

// Params returns the hyperparameters of v.
func (v Variant) Params() (Params, error) {
	switch v {
	case Tacotron2:
		return Params{
			SampleRate: 24000,
			Window:     1200,
			Hop:        300,
			MelBins:    80,
			FMin:       0,
			FMax:       8000,
			Norm:       NormSlaney,
			Spectrum:   spectral.KindPower,
		}, nil
	case R9Y9:
		return Params{
			SampleRate: 22050,
			Window:     1024,
			Hop:        256,
			MelBins:    80,
			FMin:       125,
			FMax:       7600,
			Norm:       NormSlaney,
			Spectrum:   spectral.KindMagnitude,
		}, nil
	}
	return Params{}, fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, int(v))
}

const (
	tacotron2LogFloor   = 1e-5
	tacotron2LogCeiling = 1e5

	r9y9MinLevelDB = -100.0
	r9y9RefLevelDB = 20.0
)

// r9y9MinLevel is the amplitude floor matching r9y9MinLevelDB.
var r9y9MinLevel = math.Exp(r9y9MinLevelDB / 20 * math.Log(10))

// compress applies the variant's amplitude compression and normalisation in
// place.
func (v Variant) compress(t *spectral.Tensor) {
	switch v {
	case Tacotron2:
		// [ln floor, ln ceiling] maps onto [0,1].
		lo, hi := math.Log(tacotron2LogFloor), math.Log(tacotron2LogCeiling)
		for i, x := range t.Data {
			t.Data[i] = clip((math.Log(x+tacotron2LogFloor)-lo)/(hi-lo), 0, 1)
		}
	case R9Y9:
		for i, x := range t.Data {
			db := 20*math.Log10(math.Max(r9y9MinLevel, x)) - r9y9RefLevelDB
			t.Data[i] = clip((db-r9y9MinLevelDB)/-r9y9MinLevelDB, 0, 1)
		}
	}
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
