package modesto

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame render metrics.
// Only populated when Desktop.debug is true.
type debugStats struct {
	renderTime time.Duration
	reused     bool
	windows    int
	callbacks  int
}

// debugLog prints frame stats to stderr.
func (d *Desktop) debugLog(stats debugStats) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[modesto] render: %v | reused: %t | windows: %d | callbacks: %d\n",
		stats.renderTime, stats.reused, stats.windows, stats.callbacks)
}

// debugLogf prints one debug line to stderr. Callers check globalDebug first.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[modesto] "+format+"\n", args...)
}

// debugMaxWindows is the window count above which a warning is printed.
const debugMaxWindows = 64

// debugCheckWindowCount warns on stderr if the desktop holds an unusual
// number of windows, which usually means closed windows are not being reaped.
func debugCheckWindowCount(d *Desktop) {
	if len(d.windows) > debugMaxWindows {
		debugLogf("warning: desktop has %d windows (threshold %d)", len(d.windows), debugMaxWindows)
	}
}
