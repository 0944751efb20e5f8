package distance

import (
	"github.com/x448/float16"

	"github.com/Micky774/kernex/pkg/core/cpufeat"
)

// Half-precision kernels. Vectors are stored as raw IEEE 754 binary16 bit
// patterns in []uint16 and widened to float32 per element; accumulation
// always happens in float32.

func f16(bits uint16) float32 { return float16.Frombits(bits).Float32() }

// Float16FromFloat32 converts a float32 slice to its binary16 bit patterns,
// rounding to nearest even.
func Float16FromFloat32(v []float32) []uint16 {
	out := make([]uint16, len(v))
	for i, f := range v {
		out[i] = float16.Fromfloat32(f).Bits()
	}
	return out
}

// Float32FromFloat16 widens binary16 bit patterns back to float32.
func Float32FromFloat16(v []uint16) []float32 {
	out := make([]float32, len(v))
	for i, bits := range v {
		out[i] = f16(bits)
	}
	return out
}

func manhattanScalarF16(x, y []uint16) float32 {
	var sum float32
	for i := range x {
		sum += absDiff(f16(x[i]), f16(y[i]))
	}
	return sum
}

func squaredL2ScalarF16(x, y []uint16) float32 {
	var sum float32
	for i := range x {
		d := f16(x[i]) - f16(y[i])
		sum += d * d
	}
	return sum
}

func dotScalarF16(x, y []uint16) float32 {
	var sum float32
	for i := range x {
		sum += f16(x[i]) * f16(y[i])
	}
	return sum
}

func manhattanBodyF16x8(x, y []uint16) float32 {
	var a0, a1, a2, a3 float32
	for i := 0; i+8 <= len(x); i += 8 {
		a0 += absDiff(f16(x[i]), f16(y[i])) + absDiff(f16(x[i+4]), f16(y[i+4]))
		a1 += absDiff(f16(x[i+1]), f16(y[i+1])) + absDiff(f16(x[i+5]), f16(y[i+5]))
		a2 += absDiff(f16(x[i+2]), f16(y[i+2])) + absDiff(f16(x[i+6]), f16(y[i+6]))
		a3 += absDiff(f16(x[i+3]), f16(y[i+3])) + absDiff(f16(x[i+7]), f16(y[i+7]))
	}
	return (a0 + a1) + (a2 + a3)
}

func squaredL2BodyF16x8(x, y []uint16) float32 {
	var a0, a1, a2, a3 float32
	for i := 0; i+8 <= len(x); i += 8 {
		d0 := f16(x[i]) - f16(y[i])
		d1 := f16(x[i+1]) - f16(y[i+1])
		d2 := f16(x[i+2]) - f16(y[i+2])
		d3 := f16(x[i+3]) - f16(y[i+3])
		d4 := f16(x[i+4]) - f16(y[i+4])
		d5 := f16(x[i+5]) - f16(y[i+5])
		d6 := f16(x[i+6]) - f16(y[i+6])
		d7 := f16(x[i+7]) - f16(y[i+7])
		a0 += d0*d0 + d4*d4
		a1 += d1*d1 + d5*d5
		a2 += d2*d2 + d6*d6
		a3 += d3*d3 + d7*d7
	}
	return (a0 + a1) + (a2 + a3)
}

func dotBodyF16x8(x, y []uint16) float32 {
	var a0, a1, a2, a3 float32
	for i := 0; i+8 <= len(x); i += 8 {
		a0 += f16(x[i])*f16(y[i]) + f16(x[i+4])*f16(y[i+4])
		a1 += f16(x[i+1])*f16(y[i+1]) + f16(x[i+5])*f16(y[i+5])
		a2 += f16(x[i+2])*f16(y[i+2]) + f16(x[i+6])*f16(y[i+6])
		a3 += f16(x[i+3])*f16(y[i+3]) + f16(x[i+7])*f16(y[i+7])
	}
	return (a0 + a1) + (a2 + a3)
}

var (
	manhattanF16k = &kernel[uint16, float32]{
		op: OpManhattan, prec: "f16",
		scalar: manhattanScalarF16,
		fold:   foldSum[float32],
		vars: []variant[uint16, float32]{
			{cpufeat.TargetAVX2, 8, manhattanBodyF16x8},
			{cpufeat.TargetNEON, 8, manhattanBodyF16x8},
			{cpufeat.TargetScalar, 1, manhattanScalarF16},
		},
	}

	squaredL2F16k = &kernel[uint16, float32]{
		op: OpSquaredL2, prec: "f16",
		scalar: squaredL2ScalarF16,
		fold:   foldSum[float32],
		vars: []variant[uint16, float32]{
			{cpufeat.TargetAVX2, 8, squaredL2BodyF16x8},
			{cpufeat.TargetNEON, 8, squaredL2BodyF16x8},
			{cpufeat.TargetScalar, 1, squaredL2ScalarF16},
		},
	}

	dotF16k = &kernel[uint16, float32]{
		op: OpDot, prec: "f16",
		scalar: dotScalarF16,
		fold:   foldSum[float32],
		vars: []variant[uint16, float32]{
			{cpufeat.TargetAVX2, 8, dotBodyF16x8},
			{cpufeat.TargetNEON, 8, dotBodyF16x8},
			{cpufeat.TargetScalar, 1, dotScalarF16},
		},
	}
)

// ManhattanF16 returns the L1 distance between two binary16 vectors.
func ManhattanF16(x, y []uint16) float32 { return manhattanF16k.execute(x, y) }

// SquaredL2F16 returns the squared Euclidean distance between two binary16
// vectors.
func SquaredL2F16(x, y []uint16) float32 { return squaredL2F16k.execute(x, y) }

// DotProductF16 returns the dot product of two binary16 vectors.
func DotProductF16(x, y []uint16) float32 { return dotF16k.execute(x, y) }
