package rc

import (
	"github.com/go-logr/logr"
	"go.uber.org/atomic"
)

// Verbosity levels used by the package logger.
const (
	// LogLifecycle reports block allocation, object destruction and block retirement.
	LogLifecycle = 1
)

var logSink atomic.Pointer[logr.Logger]

// SetLogger installs the logger used for lifecycle tracing and for errors that
// have no caller to return to (for example a failing Close during disposal).
// Pass logr.Discard() to silence the package again.
func SetLogger(l logr.Logger) {
	l = l.WithName("rc")
	logSink.Store(&l)
}

// Logger returns the current package logger.
func Logger() logr.Logger {
	if l := logSink.Load(); l != nil {
		return *l
	}
	return logr.Discard()
}

func traceEnabled() bool {
	l := logSink.Load()
	return l != nil && l.V(LogLifecycle).Enabled()
}
