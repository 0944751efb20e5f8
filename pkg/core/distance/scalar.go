package distance

// Float constrains the floating-point element types the generic kernels
// cover.
type Float interface {
	~float32 | ~float64
}

// number constrains every accumulator type a kernel can reduce into.
type number interface {
	~float32 | ~float64 | ~int32
}

func absDiff[T Float](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// The scalar loops below are the reference implementations. They serve three
// roles: the guard path for short inputs, the remainder pass after a vector
// body, and the portable fallback variant on hosts with no usable SIMD.

func manhattanScalar[T Float](x, y []T) T {
	var sum T
	for i := range x {
		sum += absDiff(x[i], y[i])
	}
	return sum
}

func squaredL2Scalar[T Float](x, y []T) T {
	var sum T
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum
}

func dotScalar[T Float](x, y []T) T {
	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

func chebyshevScalar[T Float](x, y []T) T {
	var m T
	for i := range x {
		m = max(m, absDiff(x[i], y[i]))
	}
	return m
}

func foldSum[T number](a, b T) T { return a + b }

func foldMax[T number](a, b T) T { return max(a, b) }
