package distance

import (
	"fmt"
	"testing"

	"github.com/Micky774/kernex/pkg/core/cpufeat"
)

func TestFloat16Kernels(t *testing.T) {
	x := Float16FromFloat32([]float32{1, 2})
	y := Float16FromFloat32([]float32{3, 4})

	if got := SquaredL2F16(x, y); got != 8 {
		t.Errorf("SquaredL2F16: got %v, want 8", got)
	}
	if got := ManhattanF16(x, y); got != 4 {
		t.Errorf("ManhattanF16: got %v, want 4", got)
	}
	if got := DotProductF16(x, y); got != 11 {
		t.Errorf("DotProductF16: got %v, want 11", got)
	}
}

// TestFloat16MatchesWidened compares the f16 kernels against the float32
// kernels run on the widened values, so conversion error cancels out and
// only reduction-order error remains.
func TestFloat16MatchesWidened(t *testing.T) {
	forceDispatch(t)
	restore := cpufeat.SetForTest(capThrough(cpufeat.TargetAVX2))
	defer restore()

	for _, d := range []int{7, 8, 9, 17, 256} {
		f1, f2 := generateVectors(d)
		x := Float16FromFloat32(f1)
		y := Float16FromFloat32(f2)
		w1 := Float32FromFloat16(x)
		w2 := Float32FromFloat16(y)

		if got, want := float64(ManhattanF16(x, y)), float64(Manhattan(w1, w2)); !floatsNear(got, want, 1e-4) {
			t.Errorf("dims=%d ManhattanF16: got %v, want %v", d, got, want)
		}
		if got, want := float64(SquaredL2F16(x, y)), float64(SquaredL2(w1, w2)); !floatsNear(got, want, 1e-4) {
			t.Errorf("dims=%d SquaredL2F16: got %v, want %v", d, got, want)
		}
		if got, want := float64(DotProductF16(x, y)), float64(DotProduct(w1, w2)); !floatsNear(got, want, 1e-4) {
			t.Errorf("dims=%d DotProductF16: got %v, want %v", d, got, want)
		}
	}
}

func BenchmarkFloat16(b *testing.B) {
	dims := []int{64, 128, 256, 512, 1024, 1536}
	for _, d := range dims {
		b.Run(fmt.Sprintf("SquaredL2_%dD", d), func(b *testing.B) {
			f1, f2 := generateVectors(d)
			v1 := Float16FromFloat32(f1)
			v2 := Float16FromFloat32(f2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				SquaredL2F16(v1, v2)
			}
		})
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	in := []float32{0, 1, -1, 0.5, 65504} // 65504 is the binary16 max
	out := Float32FromFloat16(Float16FromFloat32(in))
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: %v came back as %v", i, in[i], out[i])
		}
	}
}
