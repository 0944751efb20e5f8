package distance

import "testing"

func resetThresholds(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, op := range Ops() {
			SetDispatchThreshold(op, DefaultDispatchThreshold)
		}
	})
}

func TestLoadTuning(t *testing.T) {
	resetThresholds(t)

	doc := []byte("dispatch_thresholds:\n  manhattan: 4\n  dot: 0\n")
	if err := LoadTuning(doc); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got := DispatchThreshold(OpManhattan); got != 4 {
		t.Errorf("manhattan threshold = %d, want 4", got)
	}
	if got := DispatchThreshold(OpDot); got != 0 {
		t.Errorf("dot threshold = %d, want 0", got)
	}
	// Kernels the document does not mention keep their value.
	if got := DispatchThreshold(OpChebyshev); got != DefaultDispatchThreshold {
		t.Errorf("chebyshev threshold = %d, want %d", got, DefaultDispatchThreshold)
	}
}

func TestLoadTuningUnknownKernel(t *testing.T) {
	resetThresholds(t)

	if err := LoadTuning([]byte("dispatch_thresholds:\n  hamming: 4\n")); err == nil {
		t.Error("LoadTuning accepted an unknown kernel name")
	}
}

func TestLoadTuningBadYAML(t *testing.T) {
	if err := LoadTuning([]byte("dispatch_thresholds: [")); err == nil {
		t.Error("LoadTuning accepted malformed YAML")
	}
}

func TestSetDispatchThresholdClamps(t *testing.T) {
	resetThresholds(t)

	SetDispatchThreshold(OpDot, -5)
	if got := DispatchThreshold(OpDot); got != 0 {
		t.Errorf("negative threshold stored as %d, want 0", got)
	}
}
