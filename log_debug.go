//go:build debug

package polybool

import (
	"log"
	"os"
)

// Debug logger instance, enabled only in builds tagged "debug" — the same
// pattern geom2d/log_debug.go uses for this exact concern.
var logger = log.New(os.Stderr, "[polybool DEBUG] ", log.LstdFlags)

// logDebugf logs a step of the sweep when the debug build tag is set.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
