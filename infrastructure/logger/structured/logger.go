// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports JSON or text output and optional rotating log files through lumberjack

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger output
type Config struct {
	// Level is one of debug/info/warn/error. Unknown values fall back to info.
	Level string

	// Format is "json" or "text"
	Format string

	// File enables rotating file output in addition to stdout when set
	File string
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logger writing to stdout and, when configured, a rotating file
func NewLogger(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	return NewLoggerWithOutput(cfg, out)
}

// NewLoggerWithOutput creates a logger writing to out
func NewLoggerWithOutput(cfg Config, out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{entry: l}
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}
