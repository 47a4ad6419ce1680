// Package logger implements the file logger used across the service.
// Messages are printf-formatted and written with a level prefix; consumers
// depend on a local Logger interface rather than on this package directly.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level defines logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config string ("debug", "info", "warn", "error")
// into a Level. Unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
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

// Logger writes leveled printf-style messages to a file and to stdout.
type Logger struct {
	level Level
	file  *os.File
	out   *log.Logger
}

// New opens (or creates) the log file at path and returns a logger that
// writes to it. An empty path logs to stdout only.
func New(path string, level string) (*Logger, error) {
	l := &Logger{level: ParseLevel(level)}

	if path == "" {
		l.out = log.New(os.Stdout, "", log.LstdFlags)
		return l, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
	}

	l.file = file
	l.out = log.New(newTeeWriter(file), "", log.LstdFlags)
	return l, nil
}

// Close releases the underlying log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs a message at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal logs a message at error level and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) write(level Level, prefix, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", prefix, fmt.Sprintf(format, v...))
}

type teeWriter struct {
	file *os.File
}

func newTeeWriter(file *os.File) *teeWriter {
	return &teeWriter{file: file}
}

func (w *teeWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	return w.file.Write(p)
}
