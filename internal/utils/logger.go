package utils

import (
	"fmt"
	"log"
	"strings"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var raylibLog = For("raylib")

var (
	CurrentLevel   LogLevel = LevelWarn
	ShowRaylibInfo bool
	ShowDebugUI    bool
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLogLevel maps a flag value such as "info" or "WARN" to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

func logMessage(level LogLevel, component, format string, v ...interface{}) {
	if level < CurrentLevel {
		return
	}
	emit(level, component, format, v...)
}

func emit(level LogLevel, component, format string, v ...interface{}) {
	const (
		colorReset  = "\033[0m"
		colorCyan   = "\033[36m"
		colorBlue   = "\033[34m"
		colorYellow = "\033[33m"
		colorRed    = "\033[31m"
		colorGreen  = "\033[32m"
	)

	var colorCode string
	switch level {
	case LevelDebug:
		colorCode = colorCyan
	case LevelInfo:
		colorCode = colorBlue
	case LevelWarn:
		colorCode = colorYellow
	case LevelError:
		colorCode = colorRed
	}

	prefix := fmt.Sprintf("%s[%s]%s ", colorCode, level.String(), colorReset)
	if component != "" {
		prefix += colorGreen + component + ":" + colorReset + " "
	}
	log.Printf(prefix+format, v...)
}

func Info(format string, v ...interface{})  { logMessage(LevelInfo, "", format, v...) }
func Debug(format string, v ...interface{}) { logMessage(LevelDebug, "", format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, "", format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, "", format, v...) }

// Logger tags every line with the scene component that wrote it, e.g. "scroll"
// or "contact", so one run's output can be filtered per subsystem.
type Logger struct {
	Component string
}

func For(component string) Logger { return Logger{Component: component} }

func (l Logger) Info(format string, v ...interface{}) {
	logMessage(LevelInfo, l.Component, format, v...)
}

func (l Logger) Debug(format string, v ...interface{}) {
	logMessage(LevelDebug, l.Component, format, v...)
}

func (l Logger) Warn(format string, v ...interface{}) {
	logMessage(LevelWarn, l.Component, format, v...)
}

func (l Logger) Error(format string, v ...interface{}) {
	logMessage(LevelError, l.Component, format, v...)
}

// RaylibLogCallback routes raylib trace output through the levelled logger.
func RaylibLogCallback(level int, text string) {
	switch level {
	case 1, 2: // LOG_TRACE, LOG_DEBUG
		raylibLog.Debug("%s", text)
	case 3: // LOG_INFO
		if ShowRaylibInfo {
			emit(LevelInfo, raylibLog.Component, "%s", text)
		} else {
			raylibLog.Info("%s", text)
		}
	case 4: // LOG_WARNING
		raylibLog.Warn("%s", text)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		raylibLog.Error("%s", text)
	}
}
