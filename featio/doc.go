// Package featio reads and writes feature tensors.
//
// Tensors can be stored as NumPy .npy arrays, packed as half-precision
// buffers, or rendered to PNG for inspection. Reference arrays produced by
// other feature extractors are read back for exact comparison.
package featio
