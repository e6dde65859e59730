// Package logging provides subsystem-tagged logging for veneer. CLI mode
// writes slog text to a writer; TUI mode fans entries into a channel the TUI
// drains into its activity log, keeping log output off the rendered surface.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
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
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps LogLevel onto the slog levels.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a config string to a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogEntry is the structured entry delivered to the TUI channel.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// String formats an entry as one activity-log line.
func (e LogEntry) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s] %s: %s (%v)",
			e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message, e.Err)
	}
	return fmt.Sprintf("%s [%s] %s: %s",
		e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
}

var (
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	isTuiMode     bool
	filterLevel   LogLevel
)

const tuiChannelBufferSize = 2048

// InitForTUI switches logging to channel delivery and returns the channel
// the TUI drains. Call once at startup.
func InitForTUI(level LogLevel) <-chan LogEntry {
	isTuiMode = true
	filterLevel = level
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.SlogLevel()}))
	return tuiLogChannel
}

// InitForCLI writes slog text lines to the given writer. Call once at
// startup in headless mode.
func InitForCLI(level LogLevel, output io.Writer) {
	isTuiMode = false
	filterLevel = level
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.SlogLevel()}))
	slog.SetDefault(defaultLogger)
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...any) {
	if level < filterLevel {
		return
	}
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if isTuiMode {
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		select {
		case tuiLogChannel <- entry:
		default:
			// Channel full: drop rather than block the caller.
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		return
	}
	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...any) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel on shutdown.
func CloseTUIChannel() {
	if tuiLogChannel != nil {
		close(tuiLogChannel)
	}
}
