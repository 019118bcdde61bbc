package spectral

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// Kind selects magnitude or power spectra.
type Kind int

const (
	KindMagnitude Kind = iota
	KindPower
)

func (k Kind) String() string {
	if k == KindPower {
		return "power"
	}
	return "magnitude"
}

// ParseKind maps "magnitude" or "power" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "magnitude", "mag":
		return KindMagnitude, nil
	case "power", "pow":
		return KindPower, nil
	}
	return 0, fmt.Errorf("%w: unknown spectrum kind %q", ErrInvalidInput, s)
}

// Magnitude returns |X| elementwise.
func Magnitude(x *Complex) *Tensor {
	out := NewTensor(x.Frames, x.Bins, x.Channels)
	for i, v := range x.Data {
		out.Data[i] = cmplx.Abs(v)
	}
	return out
}

// Power returns |X|^2 elementwise.
func Power(x *Complex) *Tensor {
	out := NewTensor(x.Frames, x.Bins, x.Channels)
	for i, v := range x.Data {
		re, im := real(v), imag(v)
		out.Data[i] = re*re + im*im
	}
	return out
}

// Spectrum dispatches to Magnitude or Power.
func Spectrum(x *Complex, k Kind) *Tensor {
	if k == KindPower {
		return Power(x)
	}
	return Magnitude(x)
}
