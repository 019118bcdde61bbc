package spectral

import "errors"

// ErrInvalidInput is returned for malformed waveforms and framing parameters.
var ErrInvalidInput = errors.New("invalidInput")
