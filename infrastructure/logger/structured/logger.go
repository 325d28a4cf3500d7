// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports JSON or text output, level filtering and rotating file output via lumberjack

package structured

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string
	// Format is json or text (default json)
	Format string
	// File, when set, receives log output through a rotating writer
	File string
	// MaxSizeMB is the size at which the file is rotated
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept
	MaxBackups int
	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int
	// Output overrides the destination; used by tests
	Output io.Writer
}

// Logger implements interfaces.Logger on top of logrus
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// New creates a structured logger from options
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	l := &Logger{entry: log}

	switch {
	case opts.Output != nil:
		log.SetOutput(opts.Output)
	case opts.File != "":
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    withDefault(opts.MaxSizeMB, 100), // megabytes
			MaxBackups: withDefault(opts.MaxBackups, 3),
			MaxAge:     withDefault(opts.MaxAgeDays, 28), // days
			Compress:   true,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
		l.closer = rotator
	default:
		log.SetOutput(os.Stdout)
	}

	return l, nil
}

// NewDefault returns an info-level JSON logger writing to stdout
func NewDefault() *Logger {
	l, _ := New(Options{})
	return l
}

// ParseLevel maps a config level name to a logrus level
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the rotating file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
