package facility

import "testing"

// Logger decouples the codec layer from the logging package.
type Logger interface {
	Logf(format string, args ...any)
	LogDebugf(format string, args ...any)
	LogWarnf(format string, args ...any)
	LogErrorf(format string, args ...any)
}

var DiscardLogger = &discardLogger{}

type discardLogger struct {
}

func (l *discardLogger) Logf(format string, args ...any)      {}
func (l *discardLogger) LogDebugf(format string, args ...any) {}
func (l *discardLogger) LogWarnf(format string, args ...any)  {}
func (l *discardLogger) LogErrorf(format string, args ...any) {}

type testLogger struct {
	t *testing.T
}

func TestLogger(t *testing.T) Logger {
	return &testLogger{t}
}

func (l *testLogger) Logf(format string, args ...any)      { l.t.Helper(); l.t.Logf(format, args...) }
func (l *testLogger) LogDebugf(format string, args ...any) { l.t.Helper(); l.t.Logf(format, args...) }
func (l *testLogger) LogWarnf(format string, args ...any)  { l.t.Helper(); l.t.Logf(format, args...) }
func (l *testLogger) LogErrorf(format string, args ...any) { l.t.Helper(); l.t.Logf(format, args...) }
