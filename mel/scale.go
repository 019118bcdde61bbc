package mel

import "math"

const (
	melBreakFrequencyHertz = 700.0
	melHighFrequencyQ      = 2595.0
)

// HzToMel converts a frequency to the mel scale.
func HzToMel(hz float64) float64 {
	return melHighFrequencyQ * math.Log10(1.0+hz/melBreakFrequencyHertz)
}

// MelToHz converts a mel value back to hertz.
func MelToHz(mel float64) float64 {
	return melBreakFrequencyHertz * (math.Pow(10, mel/melHighFrequencyQ) - 1.0)
}

// linspace returns num evenly spaced values over [start, stop], with stop
// stored exactly.
func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = float64(i)*step + start
	}
	out[num-1] = stop
	return out
}
