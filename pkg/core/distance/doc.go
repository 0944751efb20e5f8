// Package distance implements runtime-dispatched distance kernels over
// equal-length numeric vectors.
//
// Each kernel (Manhattan, squared Euclidean, dot product, Chebyshev) exists
// in several shapes: a portable scalar loop and a set of unrolled variants
// laid out for the vector width of a CPU target (SSE2, NEON, AVX2, AVX512).
// The host capability is probed once per process and each kernel picks the
// highest-ranked variant the host supports; the choice is cached and never
// changes for the process lifetime. Inputs shorter than a per-kernel
// threshold skip dispatch entirely and run the scalar loop.
//
// Kernels are available for float32, float64, half precision (float16 bit
// patterns stored as []uint16) and quantized int8 vectors.
package distance
