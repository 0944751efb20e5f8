package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Define global variables for metrics.
// We use 'promauto' which automatically registers metrics without complex initialization.

var (
	// KernelResolutions counts dispatch-table resolutions. Each kernel
	// resolves once per process, so in production every series sits at 1;
	// higher counts only appear when tests swap the capability set.
	KernelResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kernex_kernel_resolutions_total",
			Help: "Total number of kernel dispatch resolutions",
		},
		[]string{"kernel", "precision", "target"},
	)

	// SelectedTargetInfo is set to 1 for the CPU target each kernel
	// resolved to, making the active instruction set visible on a
	// dashboard without log access.
	SelectedTargetInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kernex_selected_target_info",
			Help: "Selected CPU target per kernel (value is always 1)",
		},
		[]string{"kernel", "precision", "target"},
	)
)
