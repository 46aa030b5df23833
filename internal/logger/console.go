// Package logger provides logging implementations for analysis runs.
//
// The logger package offers leveled, timestamped logging of batch progress at
// the behavior and summary levels. Implementations are thread-safe and write
// to any io.Writer; the CLI points them at stderr so stdout carries only
// analysis output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/telegram-analyzer/internal/models"
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

// ConsoleLogger logs run progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is enabled when the writer is a terminal.
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
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is a TTY that should receive ANSI colors.
// NO_COLOR and non-file writers always disable color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsValidLogLevel reports whether level names a supported log level.
func IsValidLogLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	if IsValidLogLevel(level) {
		return strings.ToLower(strings.TrimSpace(level))
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
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

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
	var coloredLevel string

	switch strings.ToUpper(level) {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	case "WARN":
		coloredLevel = color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		coloredLevel = color.New(color.FgRed).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// LogBatchStart logs the start of a run at INFO level.
// Format: "[HH:MM:SS] Starting <mode> run <id>: <count> behaviors"
func (cl *ConsoleLogger) LogBatchStart(runID, mode string, total int) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	name := mode
	if cl.colorOutput {
		name = color.New(color.Bold).Sprint(mode)
	}
	message := fmt.Sprintf("[%s] Starting %s run %s: %d behaviors\n", ts, name, runID, total)

	cl.writer.Write([]byte(message))
}

// LogBehaviorStart logs that a behavior is about to run at INFO level.
// Format: "[HH:MM:SS] [<index>/<total>] Running <name> on <input>"
func (cl *ConsoleLogger) LogBehaviorStart(index, total int, name, input string) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	step := fmt.Sprintf("[%d/%d]", index, total)
	if cl.colorOutput {
		step = color.New(color.FgCyan).Sprint(step)
	}
	message := fmt.Sprintf("[%s] %s Running %s on %s\n", ts, step, name, input)

	cl.writer.Write([]byte(message))
}

// LogBehaviorResult logs the completion of a behavior at DEBUG level, or at
// ERROR level when it failed.
// Format: "[HH:MM:SS] <name> (<type>): <status> (<duration>)"
func (cl *ConsoleLogger) LogBehaviorResult(result models.BehaviorResult) error {
	if cl.writer == nil {
		return nil
	}

	level := "debug"
	if result.Status == models.StatusFailed {
		level = "error"
	}
	if !cl.shouldLog(level) {
		return nil
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	info := fmt.Sprintf("%s (%s)", result.Name, result.Type)
	status := result.Status
	if cl.colorOutput {
		switch result.Status {
		case models.StatusDone:
			status = color.New(color.FgGreen).Sprint(result.Status)
		case models.StatusFailed:
			status = color.New(color.FgRed).Sprint(result.Status)
		}
	}

	message := fmt.Sprintf("[%s] %s: %s (%s)", ts, info, status, formatDuration(result.Duration))
	if result.Error != nil {
		message += fmt.Sprintf(": %v", result.Error)
	}
	message += "\n"

	_, err := cl.writer.Write([]byte(message))
	return err
}

// LogBatchSummary logs the run summary with completion statistics at INFO level.
func (cl *ConsoleLogger) LogBatchSummary(result models.BatchResult) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	header := "=== Run Summary ==="
	completed := fmt.Sprintf("Completed: %d", result.Completed)
	failed := fmt.Sprintf("Failed: %d", 0)
	if result.Failed != nil {
		failed = fmt.Sprintf("Failed: %d", 1)
	}

	if cl.colorOutput {
		header = color.New(color.Bold).Sprint(header)
		completed = color.New(color.FgGreen).Sprint(completed)
		if result.Failed != nil {
			failed = color.New(color.FgRed).Sprint(failed)
		}
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("[%s] %s\n", ts, header))
	output.WriteString(fmt.Sprintf("[%s] Run: %s\n", ts, result.RunID))
	output.WriteString(fmt.Sprintf("[%s] Total behaviors: %d\n", ts, result.Total))
	output.WriteString(fmt.Sprintf("[%s] %s\n", ts, completed))
	output.WriteString(fmt.Sprintf("[%s] %s\n", ts, failed))
	output.WriteString(fmt.Sprintf("[%s] Skipped: %d\n", ts, result.Skipped()))
	output.WriteString(fmt.Sprintf("[%s] Duration: %s\n", ts, formatDuration(result.Duration)))
	if result.Failed != nil {
		output.WriteString(fmt.Sprintf("[%s] Stopped at behavior %d (%s): %v\n",
			ts, result.Failed.Index, result.Failed.Name, result.Failed.Error))
	}

	cl.writer.Write([]byte(output.String()))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration renders durations compactly: "850ms", "1.2s", "2m5s".
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}
