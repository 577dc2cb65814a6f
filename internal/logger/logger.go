package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ContextKey is the type for values the logger pulls out of a context.
type ContextKey string

// FileKey tags log lines with the transcript being processed.
const FileKey ContextKey = "file"

type implLogger struct {
	zl    zerolog.Logger
	level zerolog.Level
}

// New creates a console Logger writing to stderr.
func New(level string) Logger {
	return NewWithOutput(level, "text", os.Stderr)
}

// NewWithOutput creates a Logger writing to w. format is "json" or "text".
func NewWithOutput(level, format string, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	if !strings.EqualFold(format, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(level)
	return &implLogger{
		zl:    zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
		level: lvl,
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) shouldLog(level string) bool {
	target, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || target == zerolog.NoLevel {
		return true
	}
	return target >= l.level
}

func (l *implLogger) event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if ctx == nil {
		return e
	}
	if file, ok := ctx.Value(FileKey).(string); ok && file != "" {
		e = e.Str(string(FileKey), file)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Debug()).Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Info()).Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Warn()).Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Error()).Msgf(msg, args...)
}

// WithFile returns a context whose log lines carry the given file name.
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, FileKey, file)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &implLogger{zl: zerolog.Nop(), level: zerolog.Disabled}
}
