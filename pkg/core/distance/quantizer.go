package distance

import (
	"math"
	"sort"
)

// Quantizer holds the parameters for symmetric scalar quantization, mapping
// float32 values in [-AbsMax, AbsMax] onto the int8 range [-127, 127].
type Quantizer struct {
	AbsMax float32
}

// Train derives AbsMax from a sample of vectors using the 99.9th percentile
// of absolute values rather than the true maximum, so a handful of outliers
// cannot blow up the quantization range for everything else.
func (q *Quantizer) Train(vectors [][]float32) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return
	}

	absValues := make([]float32, 0, len(vectors)*len(vectors[0]))
	for _, vec := range vectors {
		for _, val := range vec {
			absValues = append(absValues, float32(math.Abs(float64(val))))
		}
	}

	sort.Slice(absValues, func(i, j int) bool {
		return absValues[i] < absValues[j]
	})

	idx := int(float64(len(absValues)) * 0.999)
	if idx >= len(absValues) {
		idx = len(absValues) - 1
	}
	q.AbsMax = absValues[idx]
}

// Quantize converts a float32 vector into its int8 representation. Values
// beyond the trained range are clipped to the int8 extremes.
func (q *Quantizer) Quantize(vector []float32) []int8 {
	if q.AbsMax == 0 {
		return make([]int8, len(vector))
	}

	quantized := make([]int8, len(vector))
	for i, val := range vector {
		scaled := (val / q.AbsMax) * 127.0
		if scaled > 127.0 {
			scaled = 127.0
		} else if scaled < -127.0 {
			scaled = -127.0
		}
		quantized[i] = int8(math.Round(float64(scaled)))
	}
	return quantized
}

// Dequantize converts an int8 vector back to its approximate float32
// representation. The round trip loses at most one quantization step per
// element.
func (q *Quantizer) Dequantize(vector []int8) []float32 {
	if q.AbsMax == 0 {
		return make([]float32, len(vector))
	}

	dequantized := make([]float32, len(vector))
	for i, val := range vector {
		dequantized[i] = (float32(val) / 127.0) * q.AbsMax
	}
	return dequantized
}
