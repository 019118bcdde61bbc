// Package mel provides mel filterbank projection and the vocoder feature
// conventions built on top of it.
//
// This package turns magnitude or power spectrograms into mel-scale
// features. It supports:
//   - Triangular mel filterbanks with optional Slaney area normalisation
//   - An explicit, concurrency-safe filterbank cache keyed by configuration
//   - Tacotron2-style log-mel features at 24 kHz
//   - R9Y9-style normalised decibel mel features at 22.05 kHz
//
// Filterbanks live in a Cache. A Mel with a nil Cache, and the package-level
// Features helpers, use DefaultCache: one process-scoped cache that is never
// evicted and lives until the program exits or Reset is called. Callers that
// want a bounded lifetime set Mel.Cache to their own NewCache.
package mel
