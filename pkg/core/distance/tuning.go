package distance

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// DefaultDispatchThreshold is the vector length below which every kernel
// runs the plain scalar loop instead of dispatching. Around a dozen elements
// the loop overhead of a vector variant outweighs its throughput; the exact
// value is workload-dependent, which is why it stays tunable per kernel.
const DefaultDispatchThreshold = 16

var thresholds [opCount]atomic.Int64

func init() {
	for i := range thresholds {
		thresholds[i].Store(DefaultDispatchThreshold)
	}
}

// DispatchThreshold reports the current guard threshold for op.
func DispatchThreshold(op Op) int {
	return int(thresholds[op].Load())
}

// SetDispatchThreshold sets the guard threshold for op. Zero makes every
// non-empty input dispatch; the guard is a performance policy and never
// changes results beyond floating-point reassociation.
func SetDispatchThreshold(op Op, n int) {
	if n < 0 {
		n = 0
	}
	thresholds[op].Store(int64(n))
}

// Tuning is the YAML shape for runtime-adjustable kernel parameters.
type Tuning struct {
	// DispatchThresholds maps kernel names (as printed by Op.String) to
	// their guard thresholds.
	DispatchThresholds map[string]int `yaml:"dispatch_thresholds"`
}

// LoadTuning parses a YAML tuning document and applies it. Unknown kernel
// names are an error so config typos do not pass silently.
func LoadTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parsing tuning config: %w", err)
	}
	for name, n := range t.DispatchThresholds {
		op, ok := ParseOp(name)
		if !ok {
			return fmt.Errorf("tuning config: unknown kernel %q", name)
		}
		SetDispatchThreshold(op, n)
	}
	return nil
}

// LoadTuningFile reads and applies a YAML tuning file.
func LoadTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tuning config: %w", err)
	}
	return LoadTuning(data)
}
