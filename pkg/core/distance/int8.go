package distance

import "github.com/Micky774/kernex/pkg/core/cpufeat"

// Quantized int8 kernels. Products are widened to int32 before summing so a
// full-range vector cannot overflow the accumulator until around 2^16
// elements, far beyond any practical dimension here.

func dotScalarI8(x, y []int8) int32 {
	var sum int32
	for i := range x {
		sum += int32(x[i]) * int32(y[i])
	}
	return sum
}

func dotBodyI8x8(x, y []int8) int32 {
	var a0, a1, a2, a3 int32
	for i := 0; i+8 <= len(x); i += 8 {
		a0 += int32(x[i])*int32(y[i]) + int32(x[i+4])*int32(y[i+4])
		a1 += int32(x[i+1])*int32(y[i+1]) + int32(x[i+5])*int32(y[i+5])
		a2 += int32(x[i+2])*int32(y[i+2]) + int32(x[i+6])*int32(y[i+6])
		a3 += int32(x[i+3])*int32(y[i+3]) + int32(x[i+7])*int32(y[i+7])
	}
	return (a0 + a1) + (a2 + a3)
}

var dotI8k = &kernel[int8, int32]{
	op: OpDot, prec: "i8",
	scalar: dotScalarI8,
	fold:   foldSum[int32],
	vars: []variant[int8, int32]{
		{cpufeat.TargetAVX2, 8, dotBodyI8x8},
		{cpufeat.TargetNEON, 8, dotBodyI8x8},
		{cpufeat.TargetScalar, 1, dotScalarI8},
	},
}

// DotProductI8 returns the dot product of two quantized int8 vectors with an
// int32 accumulator. Combine with Quantizer to run cosine-style comparisons
// in a quarter of the float32 memory.
func DotProductI8(x, y []int8) int32 { return dotI8k.execute(x, y) }
