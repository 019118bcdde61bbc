package spectral

import (
	"fmt"
	"strings"
)

// PadMode selects how a signal is extended before framing.
type PadMode int

const (
	// PadReflect centres frames by mirroring W/2 samples at each end
	// without repeating the edge sample (numpy "reflect").
	PadReflect PadMode = iota
	// PadZero centres frames by adding W/2 zeros at each end.
	PadZero
	// PadNone starts the first frame at sample 0.
	PadNone
)

func (p PadMode) String() string {
	switch p {
	case PadReflect:
		return "reflect"
	case PadZero:
		return "zero"
	case PadNone:
		return "none"
	}
	return fmt.Sprintf("PadMode(%d)", int(p))
}

// ParsePadMode maps "reflect", "zero" or "none" to a PadMode.
func ParsePadMode(s string) (PadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reflect":
		return PadReflect, nil
	case "zero", "constant":
		return PadZero, nil
	case "none":
		return PadNone, nil
	}
	return 0, fmt.Errorf("%w: unknown pad mode %q", ErrInvalidInput, s)
}

// NumFrames returns how many frames STFT produces for n samples.
func NumFrames(n, window, hop int, mode PadMode) int {
	if mode != PadNone {
		n += 2 * (window / 2)
	}
	if n < window || hop <= 0 {
		return 0
	}
	return (n-window)/hop + 1
}

func pad(buf []float64, window int, mode PadMode) ([]float64, error) {
	switch mode {
	case PadNone:
		return buf, nil
	case PadZero:
		half := window / 2
		out := make([]float64, len(buf)+2*half)
		copy(out[half:], buf)
		return out, nil
	case PadReflect:
		half := window / 2
		n := len(buf)
		out := make([]float64, n+2*half)
		for i := range out {
			out[i] = buf[reflectIndex(i-half, n)]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unknown pad mode %d", ErrInvalidInput, int(mode))
}

// reflectIndex folds i into [0, n) by mirroring about the end samples.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}
