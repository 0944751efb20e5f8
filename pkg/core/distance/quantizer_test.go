package distance

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func TestDotProductI8(t *testing.T) {
	v1 := []int8{10, 20}
	v2 := []int8{2, 3}
	if got := DotProductI8(v1, v2); got != 80 {
		t.Errorf("got %d, want 80", got)
	}

	// Length 9 crosses the 8-lane body plus a remainder element.
	forceDispatch(t)
	x, y := generateInt8Vectors(9)
	if got, want := DotProductI8(x, y), dotScalarI8(x, y); got != want {
		t.Errorf("remainder split: got %d, want %d", got, want)
	}
}

func TestDotProductI8ExtremeValues(t *testing.T) {
	// Full-range values must not overflow the int32 accumulator.
	n := 1024
	x := make([]int8, n)
	y := make([]int8, n)
	for i := range x {
		x[i] = -128
		y[i] = -128
	}
	want := int32(n) * 128 * 128
	if got := DotProductI8(x, y); got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestQuantizerTraining(t *testing.T) {
	const numVectors = 60000
	const dimensions = 64

	vectors := make([][]float32, numVectors)
	for i := 0; i < numVectors; i++ {
		vec := make([]float32, dimensions)
		for j := 0; j < dimensions; j++ {
			vec[j] = rand.Float32() * 10.0
		}
		vectors[i] = vec
	}

	q := &Quantizer{}
	q.Train(vectors)

	if q.AbsMax <= 0 {
		t.Errorf("expected positive AbsMax, got %f", q.AbsMax)
	}
	// The quantile cut must land near the top of the uniform [0, 10) range.
	if q.AbsMax < 9.0 || q.AbsMax > 10.0 {
		t.Errorf("AbsMax %f outside the expected quantile band", q.AbsMax)
	}
}

func TestQuantizeRoundTrip(t *testing.T) {
	q := &Quantizer{AbsMax: 1}
	in := make([]float32, 100)
	for i := range in {
		in[i] = rand.Float32()*2 - 1
	}

	out := q.Dequantize(q.Quantize(in))

	// One quantization step is AbsMax/127.
	step := float64(q.AbsMax) / 127.0
	for i := range in {
		if diff := math.Abs(float64(in[i] - out[i])); diff > step {
			t.Errorf("index %d: round trip error %f exceeds one step %f", i, diff, step)
		}
	}
}

func TestQuantizeClipsOutliers(t *testing.T) {
	q := &Quantizer{AbsMax: 1}
	got := q.Quantize([]float32{5, -5})
	if got[0] != 127 || got[1] != -127 {
		t.Errorf("out-of-range values quantized to %v, want [127 -127]", got)
	}
}

func TestQuantizerUntrained(t *testing.T) {
	q := &Quantizer{}
	if got := q.Quantize([]float32{1, 2}); got[0] != 0 || got[1] != 0 {
		t.Errorf("untrained Quantize returned %v", got)
	}
	if got := q.Dequantize([]int8{1, 2}); got[0] != 0 || got[1] != 0 {
		t.Errorf("untrained Dequantize returned %v", got)
	}
}

func generateInt8Vectors(dims int) ([]int8, []int8) {
	v1 := make([]int8, dims)
	v2 := make([]int8, dims)
	for i := 0; i < dims; i++ {
		v1[i] = int8(rand.Intn(256) - 128)
		v2[i] = int8(rand.Intn(256) - 128)
	}
	return v1, v2
}

func BenchmarkInt8(b *testing.B) {
	dims := []int{64, 128, 256, 512, 1024}
	for _, d := range dims {
		b.Run(fmt.Sprintf("Dot_%dD", d), func(b *testing.B) {
			v1, v2 := generateInt8Vectors(d)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				DotProductI8(v1, v2)
			}
		})
	}
}
