// Package logger provides leveled console logging for fortuner.
//
// Diagnostics go to stderr so that fortune output on stdout stays clean.
// The logger is safe for use from multiple goroutines.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs diagnostics to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		mutex:       sync.Mutex{},
		colorOutput: ColorEnabled(writer),
	}
}

// ColorEnabled reports whether w is a terminal that should get ANSI colors.
// The check is made on w itself; color.NoColor only reflects stdout.
// NO_COLOR and TERM=dumb disable color everywhere.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}

	return "info"
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogResolved logs the outcome of source resolution at DEBUG level, and
// each skipped walk entry at TRACE level.
func (cl *ConsoleLogger) LogResolved(sources []string, files []string, skipped []error) {
	cl.LogDebug(fmt.Sprintf("Resolved %d sources to %d files (%d entries skipped)", len(sources), len(files), len(skipped)))
	for _, f := range files {
		cl.LogTrace("  file: " + f)
	}
	for _, err := range skipped {
		cl.LogTrace("  skipped: " + err.Error())
	}
}

// LogLoaded logs how many records were parsed at DEBUG level.
func (cl *ConsoleLogger) LogLoaded(records int, files int) {
	cl.LogDebug(fmt.Sprintf("Loaded %d fortunes from %d files", records, files))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var attr color.Attribute

	switch level {
	case "TRACE":
		attr = color.FgHiBlack
	case "DEBUG":
		attr = color.FgCyan
	case "INFO":
		attr = color.FgBlue
	case "WARN":
		attr = color.FgYellow
	case "ERROR":
		attr = color.FgRed
	default:
		return fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	c := color.New(attr)
	c.EnableColor()
	return fmt.Sprintf("[%s] [%s] %s\n", ts, c.Sprint(level), message)
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}
