package distance

// Public kernel entry points. Every function here is a thin wrapper over the
// shared dispatch policy; see the package doc for the guard and
// body/remainder semantics.
//
// All kernels require len(x) == len(y). The caller MUST guarantee it; there
// is no length check on the hot path and mismatched inputs panic at the
// slice access, same as the plain loop would.

// Manhattan returns the L1 distance, the sum of |x[i]-y[i]|, for float32
// vectors.
func Manhattan(x, y []float32) float32 { return manhattanF32.execute(x, y) }

// Manhattan64 returns the L1 distance for float64 vectors.
func Manhattan64(x, y []float64) float64 { return manhattanF64.execute(x, y) }

// SquaredL2 returns the squared Euclidean distance, the sum of
// (x[i]-y[i])^2, for float32 vectors. Callers comparing distances can skip
// the square root.
func SquaredL2(x, y []float32) float32 { return squaredL2F32.execute(x, y) }

// SquaredL264 returns the squared Euclidean distance for float64 vectors.
func SquaredL264(x, y []float64) float64 { return squaredL2F64.execute(x, y) }

// DotProduct returns the dot product of two float32 vectors.
func DotProduct(x, y []float32) float32 { return dotF32.execute(x, y) }

// DotProduct64 returns the dot product of two float64 vectors.
func DotProduct64(x, y []float64) float64 { return dotF64.execute(x, y) }

// CosineDistance returns 1 - dot(x, y). On L2-normalized inputs the dot
// product equals the cosine similarity, so this is the cosine distance.
func CosineDistance(x, y []float32) float32 { return 1 - DotProduct(x, y) }

// CosineDistance64 is CosineDistance for float64 vectors.
func CosineDistance64(x, y []float64) float64 { return 1 - DotProduct64(x, y) }

// Chebyshev returns the L-infinity distance, the largest |x[i]-y[i]|, for
// float32 vectors.
func Chebyshev(x, y []float32) float32 { return chebyshevF32.execute(x, y) }

// Chebyshev64 returns the L-infinity distance for float64 vectors.
func Chebyshev64(x, y []float64) float64 { return chebyshevF64.execute(x, y) }
