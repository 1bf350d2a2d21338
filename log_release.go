//go:build !debug

package polybool

// logDebugf is a no-op in release builds so step tracing costs nothing in
// the sweep's hot loop.
func logDebugf(format string, v ...interface{}) {}
