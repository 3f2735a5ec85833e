package circls

import (
	"os"

	"github.com/charmbracelet/log"
)

// Log is the package-level logger. Callers embedding this core in a
// larger application may replace it (e.g. to route through their own
// sink) or adjust its level. The core library code does not log; its
// failures are returned as errors, and the cmd/ harnesses use Log to
// report them, mirroring the teacher's text_color_set(DW_COLOR_DEBUG) /
// DW_COLOR_ERROR convention of reserving color (here, level) for
// severity rather than control flow.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "circls",
	Level:  log.WarnLevel,
})

// SetDebugLevel maps the 0-3 verbosity scale used throughout the original
// FX.25/IL2P tooling (0 = errors only, 1 = notable events, 2 = per-block
// trace, 3 = full hex dumps) onto the logger's level.
func SetDebugLevel(level int) {
	switch {
	case level <= 0:
		Log.SetLevel(log.WarnLevel)
	case level == 1:
		Log.SetLevel(log.InfoLevel)
	default:
		Log.SetLevel(log.DebugLevel)
	}
}
