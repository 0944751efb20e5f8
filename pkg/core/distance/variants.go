package distance

import (
	"sync/atomic"

	"gonum.org/v1/gonum/blas/gonum"

	"github.com/Micky774/kernex/pkg/core/cpufeat"
)

// bodyFunc reduces two equal-length vectors to a single accumulator value.
type bodyFunc[E any, R number] func(x, y []E) R

// variant is one kernel implementation bound to a single CPU target. The
// lane count is the unit the executor aligns the vector body to before
// calling the variant; the scalar remainder covers the rest.
type variant[E any, R number] struct {
	target cpufeat.Target
	lanes  int
	body   bodyFunc[E, R]
}

// kernel bundles everything the executor needs for one op at one precision:
// the variant table in descending target rank (last entry always portable),
// the plain scalar loop for the guard and remainder paths, and the fold that
// combines the body partial with the remainder partial (body first).
type kernel[E any, R number] struct {
	op     Op
	prec   string
	vars   []variant[E, R]
	scalar bodyFunc[E, R]
	fold   func(a, b R) R

	entry atomic.Pointer[variant[E, R]]
}

// setVariant swaps the implementation registered for a target, keeping the
// table order. Used by the generated-assembly build to replace the pure Go
// bodies.
func (k *kernel[E, R]) setVariant(v variant[E, R]) {
	for i := range k.vars {
		if k.vars[i].target == v.target {
			k.vars[i] = v
			return
		}
	}
}

// blas32 is gonum's pure Go BLAS implementation, which carries its own
// internal optimizations and serves as the portable path for the f32 dot
// kernel.
var blas32 = gonum.Implementation{}

func dotBLAS(x, y []float32) float32 {
	return blas32.Sdot(len(x), x, 1, y, 1)
}

var (
	manhattanF32 = &kernel[float32, float32]{
		op: OpManhattan, prec: "f32",
		scalar: manhattanScalar[float32],
		fold:   foldSum[float32],
		vars: []variant[float32, float32]{
			{cpufeat.TargetAVX512, 16, manhattanBody16[float32]},
			{cpufeat.TargetAVX2, 8, manhattanBody8[float32]},
			{cpufeat.TargetNEON, 4, manhattanBody4[float32]},
			{cpufeat.TargetSSE2, 4, manhattanBody4[float32]},
			{cpufeat.TargetScalar, 1, manhattanScalar[float32]},
		},
	}

	manhattanF64 = &kernel[float64, float64]{
		op: OpManhattan, prec: "f64",
		scalar: manhattanScalar[float64],
		fold:   foldSum[float64],
		vars: []variant[float64, float64]{
			{cpufeat.TargetAVX512, 8, manhattanBody8[float64]},
			{cpufeat.TargetAVX2, 4, manhattanBody4[float64]},
			{cpufeat.TargetNEON, 4, manhattanBody4[float64]},
			{cpufeat.TargetSSE2, 4, manhattanBody4[float64]},
			{cpufeat.TargetScalar, 1, manhattanScalar[float64]},
		},
	}

	squaredL2F32 = &kernel[float32, float32]{
		op: OpSquaredL2, prec: "f32",
		scalar: squaredL2Scalar[float32],
		fold:   foldSum[float32],
		vars: []variant[float32, float32]{
			{cpufeat.TargetAVX512, 16, squaredL2Body16[float32]},
			{cpufeat.TargetAVX2, 8, squaredL2Body8[float32]},
			{cpufeat.TargetNEON, 4, squaredL2Body4[float32]},
			{cpufeat.TargetSSE2, 4, squaredL2Body4[float32]},
			{cpufeat.TargetScalar, 1, squaredL2Scalar[float32]},
		},
	}

	squaredL2F64 = &kernel[float64, float64]{
		op: OpSquaredL2, prec: "f64",
		scalar: squaredL2Scalar[float64],
		fold:   foldSum[float64],
		vars: []variant[float64, float64]{
			{cpufeat.TargetAVX512, 8, squaredL2Body8[float64]},
			{cpufeat.TargetAVX2, 4, squaredL2Body4[float64]},
			{cpufeat.TargetNEON, 4, squaredL2Body4[float64]},
			{cpufeat.TargetSSE2, 4, squaredL2Body4[float64]},
			{cpufeat.TargetScalar, 1, squaredL2Scalar[float64]},
		},
	}

	dotF32 = &kernel[float32, float32]{
		op: OpDot, prec: "f32",
		scalar: dotScalar[float32],
		fold:   foldSum[float32],
		vars: []variant[float32, float32]{
			{cpufeat.TargetAVX512, 16, dotBody16[float32]},
			{cpufeat.TargetAVX2, 8, dotBody8[float32]},
			{cpufeat.TargetNEON, 4, dotBody4[float32]},
			{cpufeat.TargetSSE2, 4, dotBody4[float32]},
			// BLAS as the portable floor rather than the plain loop.
			{cpufeat.TargetScalar, 1, dotBLAS},
		},
	}

	dotF64 = &kernel[float64, float64]{
		op: OpDot, prec: "f64",
		scalar: dotScalar[float64],
		fold:   foldSum[float64],
		vars: []variant[float64, float64]{
			{cpufeat.TargetAVX512, 8, dotBody8[float64]},
			{cpufeat.TargetAVX2, 4, dotBody4[float64]},
			{cpufeat.TargetNEON, 4, dotBody4[float64]},
			{cpufeat.TargetSSE2, 4, dotBody4[float64]},
			{cpufeat.TargetScalar, 1, dotScalar[float64]},
		},
	}

	// Chebyshev has no 16-wide shape; an AVX512 host picks the AVX2 entry.
	chebyshevF32 = &kernel[float32, float32]{
		op: OpChebyshev, prec: "f32",
		scalar: chebyshevScalar[float32],
		fold:   foldMax[float32],
		vars: []variant[float32, float32]{
			{cpufeat.TargetAVX2, 8, chebyshevBody8[float32]},
			{cpufeat.TargetNEON, 4, chebyshevBody4[float32]},
			{cpufeat.TargetSSE2, 4, chebyshevBody4[float32]},
			{cpufeat.TargetScalar, 1, chebyshevScalar[float32]},
		},
	}

	chebyshevF64 = &kernel[float64, float64]{
		op: OpChebyshev, prec: "f64",
		scalar: chebyshevScalar[float64],
		fold:   foldMax[float64],
		vars: []variant[float64, float64]{
			{cpufeat.TargetAVX2, 4, chebyshevBody4[float64]},
			{cpufeat.TargetNEON, 4, chebyshevBody4[float64]},
			{cpufeat.TargetSSE2, 4, chebyshevBody4[float64]},
			{cpufeat.TargetScalar, 1, chebyshevScalar[float64]},
		},
	}
)
