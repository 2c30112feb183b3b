package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Type that defines log levels
type LogLevel string

// Predefined log levels
const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Program name shown in front of every log line
const Prefix = "wheelcfg"

var defaultLogger *slog.Logger

// Reports whether level is one of the predefined log levels
func IsValidLevel(level string) bool {
	switch LogLevel(level) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return true
	}
	return false
}

// Convert string to log level
func ParseLogLevel(level LogLevel) charmlog.Level {
	switch level {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	case InfoLevel:
		fallthrough
	default:
		return charmlog.InfoLevel
	}
}

// Sets up the default logger. Diagnostics go to stderr unless output is
// given, so they never mix with the interactive prompts on stdout.
func Initialize(level LogLevel, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	handler := charmlog.NewWithOptions(output, charmlog.Options{
		Level:           ParseLogLevel(level),
		Prefix:          Prefix,
		ReportTimestamp: false,
	})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Returns a logger with additional attributes
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

func init() {
	Initialize(WarnLevel, nil)
}
