package distance

// Unrolled kernel bodies shaped for one vector width each. The independent
// accumulators keep the dependency chains apart so the compiler can
// vectorize the loop or at least schedule the lanes in parallel; they can be
// swapped for generated assembly without changing results beyond the usual
// reassociation error.
//
// Every body requires len(x) == len(y) and len(x) a multiple of its lane
// count; the executor guarantees both.

func manhattanBody4[T Float](x, y []T) T {
	var a0, a1, a2, a3 T
	for i := 0; i+4 <= len(x); i += 4 {
		a0 += absDiff(x[i], y[i])
		a1 += absDiff(x[i+1], y[i+1])
		a2 += absDiff(x[i+2], y[i+2])
		a3 += absDiff(x[i+3], y[i+3])
	}
	return (a0 + a1) + (a2 + a3)
}

func manhattanBody8[T Float](x, y []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	for i := 0; i+8 <= len(x); i += 8 {
		a0 += absDiff(x[i], y[i])
		a1 += absDiff(x[i+1], y[i+1])
		a2 += absDiff(x[i+2], y[i+2])
		a3 += absDiff(x[i+3], y[i+3])
		a4 += absDiff(x[i+4], y[i+4])
		a5 += absDiff(x[i+5], y[i+5])
		a6 += absDiff(x[i+6], y[i+6])
		a7 += absDiff(x[i+7], y[i+7])
	}
	return ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
}

// manhattanBody16 folds two 8-lane blocks per step into eight accumulators.
func manhattanBody16[T Float](x, y []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	for i := 0; i+16 <= len(x); i += 16 {
		a0 += absDiff(x[i], y[i]) + absDiff(x[i+8], y[i+8])
		a1 += absDiff(x[i+1], y[i+1]) + absDiff(x[i+9], y[i+9])
		a2 += absDiff(x[i+2], y[i+2]) + absDiff(x[i+10], y[i+10])
		a3 += absDiff(x[i+3], y[i+3]) + absDiff(x[i+11], y[i+11])
		a4 += absDiff(x[i+4], y[i+4]) + absDiff(x[i+12], y[i+12])
		a5 += absDiff(x[i+5], y[i+5]) + absDiff(x[i+13], y[i+13])
		a6 += absDiff(x[i+6], y[i+6]) + absDiff(x[i+14], y[i+14])
		a7 += absDiff(x[i+7], y[i+7]) + absDiff(x[i+15], y[i+15])
	}
	return ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
}

func squaredL2Body4[T Float](x, y []T) T {
	var a0, a1, a2, a3 T
	for i := 0; i+4 <= len(x); i += 4 {
		d0 := x[i] - y[i]
		d1 := x[i+1] - y[i+1]
		d2 := x[i+2] - y[i+2]
		d3 := x[i+3] - y[i+3]
		a0 += d0 * d0
		a1 += d1 * d1
		a2 += d2 * d2
		a3 += d3 * d3
	}
	return (a0 + a1) + (a2 + a3)
}

func squaredL2Body8[T Float](x, y []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	for i := 0; i+8 <= len(x); i += 8 {
		d0 := x[i] - y[i]
		d1 := x[i+1] - y[i+1]
		d2 := x[i+2] - y[i+2]
		d3 := x[i+3] - y[i+3]
		d4 := x[i+4] - y[i+4]
		d5 := x[i+5] - y[i+5]
		d6 := x[i+6] - y[i+6]
		d7 := x[i+7] - y[i+7]
		a0 += d0 * d0
		a1 += d1 * d1
		a2 += d2 * d2
		a3 += d3 * d3
		a4 += d4 * d4
		a5 += d5 * d5
		a6 += d6 * d6
		a7 += d7 * d7
	}
	return ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
}

func squaredL2Body16[T Float](x, y []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	for i := 0; i+16 <= len(x); i += 16 {
		d0 := x[i] - y[i]
		d1 := x[i+1] - y[i+1]
		d2 := x[i+2] - y[i+2]
		d3 := x[i+3] - y[i+3]
		d4 := x[i+4] - y[i+4]
		d5 := x[i+5] - y[i+5]
		d6 := x[i+6] - y[i+6]
		d7 := x[i+7] - y[i+7]
		e0 := x[i+8] - y[i+8]
		e1 := x[i+9] - y[i+9]
		e2 := x[i+10] - y[i+10]
		e3 := x[i+11] - y[i+11]
		e4 := x[i+12] - y[i+12]
		e5 := x[i+13] - y[i+13]
		e6 := x[i+14] - y[i+14]
		e7 := x[i+15] - y[i+15]
		a0 += d0*d0 + e0*e0
		a1 += d1*d1 + e1*e1
		a2 += d2*d2 + e2*e2
		a3 += d3*d3 + e3*e3
		a4 += d4*d4 + e4*e4
		a5 += d5*d5 + e5*e5
		a6 += d6*d6 + e6*e6
		a7 += d7*d7 + e7*e7
	}
	return ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
}

func dotBody4[T Float](x, y []T) T {
	var a0, a1, a2, a3 T
	for i := 0; i+4 <= len(x); i += 4 {
		a0 += x[i] * y[i]
		a1 += x[i+1] * y[i+1]
		a2 += x[i+2] * y[i+2]
		a3 += x[i+3] * y[i+3]
	}
	return (a0 + a1) + (a2 + a3)
}

func dotBody8[T Float](x, y []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	for i := 0; i+8 <= len(x); i += 8 {
		a0 += x[i] * y[i]
		a1 += x[i+1] * y[i+1]
		a2 += x[i+2] * y[i+2]
		a3 += x[i+3] * y[i+3]
		a4 += x[i+4] * y[i+4]
		a5 += x[i+5] * y[i+5]
		a6 += x[i+6] * y[i+6]
		a7 += x[i+7] * y[i+7]
	}
	return ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
}

func dotBody16[T Float](x, y []T) T {
	var a0, a1, a2, a3, a4, a5, a6, a7 T
	for i := 0; i+16 <= len(x); i += 16 {
		a0 += x[i]*y[i] + x[i+8]*y[i+8]
		a1 += x[i+1]*y[i+1] + x[i+9]*y[i+9]
		a2 += x[i+2]*y[i+2] + x[i+10]*y[i+10]
		a3 += x[i+3]*y[i+3] + x[i+11]*y[i+11]
		a4 += x[i+4]*y[i+4] + x[i+12]*y[i+12]
		a5 += x[i+5]*y[i+5] + x[i+13]*y[i+13]
		a6 += x[i+6]*y[i+6] + x[i+14]*y[i+14]
		a7 += x[i+7]*y[i+7] + x[i+15]*y[i+15]
	}
	return ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
}

func chebyshevBody4[T Float](x, y []T) T {
	var m0, m1, m2, m3 T
	for i := 0; i+4 <= len(x); i += 4 {
		m0 = max(m0, absDiff(x[i], y[i]))
		m1 = max(m1, absDiff(x[i+1], y[i+1]))
		m2 = max(m2, absDiff(x[i+2], y[i+2]))
		m3 = max(m3, absDiff(x[i+3], y[i+3]))
	}
	return max(max(m0, m1), max(m2, m3))
}

func chebyshevBody8[T Float](x, y []T) T {
	var m0, m1, m2, m3, m4, m5, m6, m7 T
	for i := 0; i+8 <= len(x); i += 8 {
		m0 = max(m0, absDiff(x[i], y[i]))
		m1 = max(m1, absDiff(x[i+1], y[i+1]))
		m2 = max(m2, absDiff(x[i+2], y[i+2]))
		m3 = max(m3, absDiff(x[i+3], y[i+3]))
		m4 = max(m4, absDiff(x[i+4], y[i+4]))
		m5 = max(m5, absDiff(x[i+5], y[i+5]))
		m6 = max(m6, absDiff(x[i+6], y[i+6]))
		m7 = max(m7, absDiff(x[i+7], y[i+7]))
	}
	return max(max(max(m0, m1), max(m2, m3)), max(max(m4, m5), max(m6, m7)))
}
