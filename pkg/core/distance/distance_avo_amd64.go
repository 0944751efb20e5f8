//go:build avo && amd64

package distance

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/Micky774/kernex/pkg/core/cpufeat"
)

//go:generate go run ./gen -stubs stubs_avo.go -out distance_avo.s

// init swaps the pure Go AVX2 bodies for the generated assembly. Dispatch
// still decides at runtime whether the AVX2 target is usable; the float16
// kernel additionally needs F16C, which the AVX2 target alone does not
// guarantee, so its registration keeps an explicit feature check.
func init() {
	squaredL2F32.setVariant(variant[float32, float32]{cpufeat.TargetAVX2, 8, SquaredL2AVX2})
	dotF32.setVariant(variant[float32, float32]{cpufeat.TargetAVX2, 8, DotAVX2})
	if cpuid.CPU.Has(cpuid.F16C) {
		squaredL2F16k.setVariant(variant[uint16, float32]{cpufeat.TargetAVX2, 8, SquaredL2Float16AVX2})
	}
}
