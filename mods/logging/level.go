package logging

import (
	"io"
	"strings"

	"github.com/Tiagofholanda/testeFITEC/mods/util/glob"
	gometrics "github.com/rcrowley/go-metrics"
)

type Level int

const (
	LevelAll Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var logLevelNames = []string{"ALL", "TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

func ParseLogLevel(name string) Level {
	switch strings.ToUpper(name) {
	default:
		return LevelAll
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelError + 1
	}
}

func LogLevelName(level Level) string {
	if level >= 0 && int(level) < len(logLevelNames) {
		return logLevelNames[level]
	}
	return "UNKNOWN"
}

type Log interface {
	io.Writer

	TraceEnabled() bool
	Trace(...any)
	Tracef(format string, args ...any)
	DebugEnabled() bool
	Debug(...any)
	Debugf(format string, args ...any)
	InfoEnabled() bool
	Info(...any)
	Infof(format string, args ...any)
	WarnEnabled() bool
	Warn(...any)
	Warnf(format string, args ...any)
	ErrorEnabled() bool
	Error(...any)
	Errorf(format string, args ...any)

	SetLevel(level Level)
	Level() Level
}

type levelLogger struct {
	name         string
	level        Level
	underlying   []*logWriter
	prefixWidth  int
	enableSrcLoc bool
}

func (l *levelLogger) SetLevel(level Level) { l.level = level }
func (l *levelLogger) Level() Level         { return l.level }

func (l *levelLogger) TraceEnabled() bool { return l.level <= LevelTrace }
func (l *levelLogger) DebugEnabled() bool { return l.level <= LevelDebug }
func (l *levelLogger) InfoEnabled() bool  { return l.level <= LevelInfo }
func (l *levelLogger) WarnEnabled() bool  { return l.level <= LevelWarn }
func (l *levelLogger) ErrorEnabled() bool { return l.level <= LevelError }

func (l *levelLogger) Trace(m ...any) { l._log(LevelTrace, 1, m) }
func (l *levelLogger) Debug(m ...any) { l._log(LevelDebug, 1, m) }
func (l *levelLogger) Info(m ...any)  { l._log(LevelInfo, 1, m) }
func (l *levelLogger) Warn(m ...any)  { l._log(LevelWarn, 1, m) }
func (l *levelLogger) Error(m ...any) { l._log(LevelError, 1, m) }

func (l *levelLogger) Tracef(format string, args ...any) { l._logf(LevelTrace, 0, format, args) }
func (l *levelLogger) Debugf(format string, args ...any) { l._logf(LevelDebug, 0, format, args) }
func (l *levelLogger) Infof(format string, args ...any)  { l._logf(LevelInfo, 0, format, args) }
func (l *levelLogger) Warnf(format string, args ...any)  { l._logf(LevelWarn, 0, format, args) }
func (l *levelLogger) Errorf(format string, args ...any) { l._logf(LevelError, 0, format, args) }

const (
	yellow = "\033[90;43m"
	red    = "\033[97;41m"
	reset  = "\033[0m"
)

var (
	warnCounter  gometrics.Counter
	errorCounter gometrics.Counter
	totalCounter gometrics.Counter
)

func init() {
	totalCounter = gometrics.NewRegisteredCounter("log.total", gometrics.DefaultRegistry)
	warnCounter = gometrics.NewRegisteredCounter("log.warns", gometrics.DefaultRegistry)
	errorCounter = gometrics.NewRegisteredCounter("log.errors", gometrics.DefaultRegistry)
}

var levelConfig = make(map[string]Level)
var levelDefault = LevelInfo
var prefixWidthDefault = 18
var enableSourceLocationDefault = false

func SetDefaultLevel(lvl Level) {
	levelDefault = lvl
}

func DefaultLevel() Level {
	return levelDefault
}

func SetDefaultEnableSourceLocation(flag bool) {
	enableSourceLocationDefault = flag
}

func SetDefaultPrefixWidth(width int) {
	if width > 0 {
		prefixWidthDefault = width
	} else {
		prefixWidthDefault = 18
	}
}

func SetLevel(name string, lvl Level) {
	levelConfig[name] = lvl
}

// GetLevel resolves the level for a named logger. An exact-name pattern
// wins outright; otherwise the longest matching glob pattern wins.
func GetLevel(name string) Level {
	var matchedPattern string
	var matchedLevel Level

	for pattern, level := range levelConfig {
		if !glob.IsGlob(pattern) {
			if pattern == name {
				return level
			}
			continue
		}
		if match, err := glob.Match(pattern, name); match && err == nil {
			if len(matchedPattern) < len(pattern) {
				matchedPattern = pattern
				matchedLevel = level
			}
		}
	}

	if matchedPattern != "" {
		return matchedLevel
	}
	return levelDefault
}
