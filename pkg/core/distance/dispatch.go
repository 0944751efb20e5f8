package distance

import (
	"log/slog"

	"github.com/Micky774/kernex/pkg/core/cpufeat"
	"github.com/Micky774/kernex/pkg/metrics"
)

// resolve returns the cached variant for the kernel, selecting it on first
// use. Concurrent first calls may race the selection; the capability set is
// memoized and the table is immutable, so every racer computes the same
// variant and the compare-and-swap keeps one winner. The selection never
// changes for the process lifetime unless a test resets the capability.
func (k *kernel[E, R]) resolve() *variant[E, R] {
	if v := k.entry.Load(); v != nil {
		return v
	}
	caps := cpufeat.Detect()
	v := pick(k.vars, caps)
	if k.entry.CompareAndSwap(nil, v) {
		slog.Debug("kernel variant selected",
			"kernel", k.op.String(),
			"precision", k.prec,
			"target", v.target.String(),
			"lanes", v.lanes,
			"capability", caps.String())
		metrics.KernelResolutions.WithLabelValues(k.op.String(), k.prec, v.target.String()).Inc()
		metrics.SelectedTargetInfo.WithLabelValues(k.op.String(), k.prec, v.target.String()).Set(1)
	}
	return k.entry.Load()
}

// pick returns the first variant whose target the host supports. Tables are
// ordered by descending rank and always end in a scalar entry, so the scan
// cannot fail.
func pick[E any, R number](vars []variant[E, R], caps cpufeat.Capability) *variant[E, R] {
	for i := range vars {
		if caps.Has(vars[i].target) {
			return &vars[i]
		}
	}
	return &vars[len(vars)-1]
}

// execute applies the full dispatch policy: short inputs take the scalar
// loop, everything else runs the selected variant over the lane-aligned body
// and the scalar loop over the tail. The body partial folds first, the
// remainder second, for every precision and target.
func (k *kernel[E, R]) execute(x, y []E) R {
	n := len(x)
	if n < DispatchThreshold(k.op) {
		return k.scalar(x, y)
	}
	v := k.resolve()
	body := n - n%v.lanes
	sum := v.body(x[:body], y[:body])
	if body < n {
		sum = k.fold(sum, k.scalar(x[body:], y[body:]))
	}
	return sum
}

func (k *kernel[E, R]) invalidate() { k.entry.Store(nil) }

type resettable interface{ invalidate() }

// allKernels drives cache invalidation when tests swap the capability set.
var allKernels = []resettable{
	manhattanF32, manhattanF64,
	squaredL2F32, squaredL2F64,
	dotF32, dotF64,
	chebyshevF32, chebyshevF64,
	manhattanF16k, squaredL2F16k, dotF16k,
	dotI8k,
}

func init() {
	cpufeat.RegisterResetHook(func() {
		for _, k := range allKernels {
			k.invalidate()
		}
	})
}

// SelectedTarget reports which target the float32 kernel for op resolved
// to, resolving it if this is the first use. Diagnostics only.
func SelectedTarget(op Op) cpufeat.Target {
	t, _ := Selection(op)
	return t
}

// Selection reports the resolved target and lane width of the float32
// kernel for op.
func Selection(op Op) (cpufeat.Target, int) {
	var k interface {
		resolveInfo() (cpufeat.Target, int)
	}
	switch op {
	case OpManhattan:
		k = manhattanF32
	case OpSquaredL2:
		k = squaredL2F32
	case OpDot:
		k = dotF32
	case OpChebyshev:
		k = chebyshevF32
	default:
		return cpufeat.TargetScalar, 1
	}
	return k.resolveInfo()
}

func (k *kernel[E, R]) resolveInfo() (cpufeat.Target, int) {
	v := k.resolve()
	return v.target, v.lanes
}
