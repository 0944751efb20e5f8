package cpufeat

import "testing"

func TestDetectMemoized(t *testing.T) {
	first := Detect()
	second := Detect()
	if first != second {
		t.Errorf("Detect not stable: %s then %s", first, second)
	}
	if !first.Has(TargetScalar) {
		t.Error("detected capability is missing the scalar baseline")
	}
}

func TestParseTarget(t *testing.T) {
	for tgt := TargetScalar; tgt < targetCount; tgt++ {
		got, ok := ParseTarget(tgt.String())
		if !ok || got != tgt {
			t.Errorf("ParseTarget(%q) = %v, %v", tgt.String(), got, ok)
		}
	}
	if got, ok := ParseTarget("  AVX2 "); !ok || got != TargetAVX2 {
		t.Errorf("ParseTarget should trim and lowercase, got %v, %v", got, ok)
	}
	if _, ok := ParseTarget("sse9"); ok {
		t.Error("ParseTarget accepted an unknown target name")
	}
}

func TestCapabilityBest(t *testing.T) {
	tests := []struct {
		caps Capability
		want Target
	}{
		{ScalarOnly, TargetScalar},
		{CapabilityOf(TargetSSE2), TargetSSE2},
		{CapabilityOf(TargetSSE2, TargetAVX2), TargetAVX2},
		{CapabilityOf(TargetSSE2, TargetAVX2, TargetAVX512), TargetAVX512},
		{CapabilityOf(TargetNEON), TargetNEON},
	}
	for _, tc := range tests {
		if got := tc.caps.Best(); got != tc.want {
			t.Errorf("Best(%s) = %s, want %s", tc.caps, got, tc.want)
		}
	}
}

func TestCapabilityString(t *testing.T) {
	c := CapabilityOf(TargetSSE2, TargetAVX2)
	if got := c.String(); got != "scalar+sse2+avx2" {
		t.Errorf("String() = %q", got)
	}
	if got := Capability(0).String(); got != "none" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestApplyEnvCap(t *testing.T) {
	full := CapabilityOf(TargetSSE2, TargetAVX2, TargetAVX512)

	if got := applyEnvCap(full, ""); got != full {
		t.Errorf("empty override changed capability: %s", got)
	}
	if got := applyEnvCap(full, "scalar"); got != ScalarOnly {
		t.Errorf("scalar override: got %s", got)
	}
	if got := applyEnvCap(full, "avx2"); got != CapabilityOf(TargetSSE2, TargetAVX2) {
		t.Errorf("avx2 override: got %s", got)
	}
	// Unknown values must not disable detection.
	if got := applyEnvCap(full, "turbo"); got != full {
		t.Errorf("unknown override changed capability: %s", got)
	}
	// Capping above the detected set cannot add targets.
	if got := applyEnvCap(ScalarOnly, "avx512"); got != ScalarOnly {
		t.Errorf("ceiling added targets: %s", got)
	}
}

func TestSetForTest(t *testing.T) {
	orig := Detect()

	hookRuns := 0
	RegisterResetHook(func() { hookRuns++ })

	restore := SetForTest(CapabilityOf(TargetNEON))
	if got := Detect(); got != CapabilityOf(TargetNEON) {
		t.Errorf("override not visible: %s", got)
	}
	if hookRuns != 1 {
		t.Errorf("reset hook ran %d times, want 1", hookRuns)
	}

	restore()
	if got := Detect(); got != orig {
		t.Errorf("restore did not bring back %s, got %s", orig, got)
	}
	if hookRuns != 2 {
		t.Errorf("reset hook ran %d times after restore, want 2", hookRuns)
	}
}
