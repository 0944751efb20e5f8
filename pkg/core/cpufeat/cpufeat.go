// Package cpufeat probes the host CPU once per process and reports the set
// of SIMD capability levels the compute kernels can dispatch on. Detection
// never fails: a platform the probe does not understand reports scalar-only,
// and the scalar path is always correct.
package cpufeat

import (
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
)

// Target identifies one instruction-set capability level a kernel variant is
// shaped for. Higher values rank higher within a platform family; ranks are
// not meaningful across families (NEON never competes with AVX2 on one host).
type Target uint8

const (
	// TargetScalar is the portable baseline, available on every platform.
	TargetScalar Target = iota
	// TargetSSE2 covers 128-bit x86 vectors, baseline on all amd64.
	TargetSSE2
	// TargetNEON covers 128-bit ARM ASIMD.
	TargetNEON
	// TargetAVX2 covers 256-bit x86 vectors with FMA.
	TargetAVX2
	// TargetAVX512 covers 512-bit x86 vectors (F, DQ, BW and VL subsets).
	TargetAVX512

	targetCount
)

var targetNames = [targetCount]string{
	TargetScalar: "scalar",
	TargetSSE2:   "sse2",
	TargetNEON:   "neon",
	TargetAVX2:   "avx2",
	TargetAVX512: "avx512",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "unknown"
}

// ParseTarget maps a case-insensitive target name to its Target value.
func ParseTarget(s string) (Target, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range targetNames {
		if s == name {
			return Target(t), true
		}
	}
	return TargetScalar, false
}

// Capability is the set of Targets usable on the running host, as a bitset.
// The zero value is an empty set; every detected set contains TargetScalar.
type Capability uint32

// Has reports whether t is in the set.
func (c Capability) Has(t Target) bool { return c&(1<<t) != 0 }

func (c Capability) with(t Target) Capability { return c | 1<<t }

// Best returns the highest-ranked Target in the set.
func (c Capability) Best() Target {
	for t := targetCount - 1; t > TargetScalar; t-- {
		if c.Has(t) {
			return t
		}
	}
	return TargetScalar
}

func (c Capability) String() string {
	var names []string
	for t := TargetScalar; t < targetCount; t++ {
		if c.Has(t) {
			names = append(names, t.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// ScalarOnly is the degraded capability set: no SIMD at all.
const ScalarOnly = Capability(1 << TargetScalar)

// CapabilityOf builds a capability set from explicit targets. TargetScalar
// is always included. Mainly useful with SetForTest.
func CapabilityOf(targets ...Target) Capability {
	c := ScalarOnly
	for _, t := range targets {
		c = c.with(t)
	}
	return c
}

var (
	detectOnce sync.Once
	detected   Capability

	// testOverride, when set, shadows the probed capability.
	testOverride atomic.Pointer[Capability]

	hookMu     sync.Mutex
	resetHooks []func()
)

// Detect reports the host capability set. The hardware probe runs once per
// process; later calls return the memoized result. Safe for concurrent use.
func Detect() Capability {
	if o := testOverride.Load(); o != nil {
		return *o
	}
	detectOnce.Do(func() {
		detected = applyEnvCap(probe(), os.Getenv("KERNEX_SIMD"))
	})
	return detected
}

// probe inspects the CPU feature flags for the compiled architecture.
// AVX2 is only claimed together with FMA3, and AVX512 requires the F, DQ,
// BW and VL subsets, so every variant tagged with those targets can assume
// the full instruction group.
func probe() Capability {
	c := ScalarOnly
	switch runtime.GOARCH {
	case "amd64":
		c = c.with(TargetSSE2)
		if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3) {
			c = c.with(TargetAVX2)
		}
		if cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ, cpuid.AVX512BW, cpuid.AVX512VL) {
			c = c.with(TargetAVX512)
		}
	case "arm64":
		if cpuid.CPU.Supports(cpuid.ASIMD) {
			c = c.with(TargetNEON)
		}
	}
	return c
}

// applyEnvCap applies the KERNEX_SIMD override, which caps the detected set
// at the named target ("scalar" disables SIMD entirely). Unknown values are
// ignored so a typo cannot disable detection by accident.
func applyEnvCap(c Capability, v string) Capability {
	if v == "" {
		return c
	}
	ceil, ok := ParseTarget(v)
	if !ok {
		return c
	}
	out := ScalarOnly
	for t := TargetScalar; t <= ceil; t++ {
		if c.Has(t) {
			out = out.with(t)
		}
	}
	return out
}

// SetForTest replaces the reported capability with c and returns a restore
// func. Registered reset hooks run on both the swap and the restore so that
// cached kernel selections are recomputed. Tests only; not for production.
func SetForTest(c Capability) func() {
	prev := testOverride.Swap(&c)
	notifyReset()
	return func() {
		testOverride.Store(prev)
		notifyReset()
	}
}

// RegisterResetHook registers f to run whenever the reported capability
// changes via SetForTest. Kernel packages use it to drop cached dispatch
// selections.
func RegisterResetHook(f func()) {
	hookMu.Lock()
	resetHooks = append(resetHooks, f)
	hookMu.Unlock()
}

func notifyReset() {
	hookMu.Lock()
	hooks := resetHooks
	hookMu.Unlock()
	for _, f := range hooks {
		f()
	}
}
