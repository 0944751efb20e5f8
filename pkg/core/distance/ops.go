package distance

import "fmt"

// Op identifies one distance kernel independent of element precision.
type Op uint8

const (
	// OpManhattan is the L1 distance, sum of |x[i]-y[i]|.
	OpManhattan Op = iota
	// OpSquaredL2 is the squared Euclidean distance, sum of (x[i]-y[i])^2.
	OpSquaredL2
	// OpDot is the dot product, sum of x[i]*y[i]. CosineDistance builds on it.
	OpDot
	// OpChebyshev is the L-infinity distance, max of |x[i]-y[i]|.
	OpChebyshev

	opCount
)

var opNames = [opCount]string{
	OpManhattan: "manhattan",
	OpSquaredL2: "squared_l2",
	OpDot:       "dot",
	OpChebyshev: "chebyshev",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// ParseOp maps a kernel name, as printed by Op.String, back to its Op.
func ParseOp(s string) (Op, bool) {
	for op, name := range opNames {
		if s == name {
			return Op(op), true
		}
	}
	return 0, false
}

// Ops lists every kernel in declaration order.
func Ops() []Op {
	out := make([]Op, 0, opCount)
	for op := Op(0); op < opCount; op++ {
		out = append(out, op)
	}
	return out
}

// Func32 is the signature of a dispatching float32 kernel entry point.
type Func32 func(x, y []float32) float32

// Func64 is the signature of a dispatching float64 kernel entry point.
type Func64 func(x, y []float64) float64

// Provider32 returns the float32 entry point for op. It returns an error if
// the op is not a known kernel.
func Provider32(op Op) (Func32, error) {
	switch op {
	case OpManhattan:
		return Manhattan, nil
	case OpSquaredL2:
		return SquaredL2, nil
	case OpDot:
		return DotProduct, nil
	case OpChebyshev:
		return Chebyshev, nil
	}
	return nil, fmt.Errorf("kernel %q not supported for float32 precision", op)
}

// Provider64 returns the float64 entry point for op. It returns an error if
// the op is not a known kernel.
func Provider64(op Op) (Func64, error) {
	switch op {
	case OpManhattan:
		return Manhattan64, nil
	case OpSquaredL2:
		return SquaredL264, nil
	case OpDot:
		return DotProduct64, nil
	case OpChebyshev:
		return Chebyshev64, nil
	}
	return nil, fmt.Errorf("kernel %q not supported for float64 precision", op)
}
