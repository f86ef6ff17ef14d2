// Package logging provides leveled key-value logging for upyfs. It wraps
// the standard log package; output goes to stderr so it never mixes with
// extracted device results on stdout.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug traces protocol exchanges chunk by chunk.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures that abort the current command.
	LevelError
)

func (l Level) String() string {
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
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Logger writes leveled messages with ordered key-value context.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	context  []interface{}
	out      *log.Logger
}

var defaultLogger = New()

// New creates a Logger writing to stderr at warn level.
func New() *Logger {
	return &Logger{
		minLevel: LevelWarn,
		out:      log.New(os.Stderr, "", 0),
	}
}

// SetLevel sets the minimum level below which messages are dropped.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetWriter redirects log output, mainly for tests.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = log.New(w, "", 0)
}

// With returns a Logger that prepends the given key-value pair to every
// message.
func (l *Logger) With(key string, value interface{}) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx := make([]interface{}, 0, len(l.context)+2)
	ctx = append(ctx, l.context...)
	ctx = append(ctx, key, value)

	return &Logger{
		minLevel: l.minLevel,
		context:  ctx,
		out:      l.out,
	}
}

func (l *Logger) log(level Level, msg string, keyVals ...interface{}) {
	l.mu.Lock()
	minLevel := l.minLevel
	out := l.out
	ctx := l.context
	l.mu.Unlock()

	if level < minLevel {
		return
	}

	var sb strings.Builder
	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	pairs := append(append([]interface{}{}, ctx...), keyVals...)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString("=")
		sb.WriteString(formatValue(pairs[i+1]))
	}

	out.Print(sb.String())
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\n") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case error:
		return fmt.Sprintf("%q", val.Error())
	default:
		return fmt.Sprint(v)
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyVals ...interface{}) { l.log(LevelDebug, msg, keyVals...) }

// Info logs at info level.
func (l *Logger) Info(msg string, keyVals ...interface{}) { l.log(LevelInfo, msg, keyVals...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyVals ...interface{}) { l.log(LevelWarn, msg, keyVals...) }

// Error logs at error level.
func (l *Logger) Error(msg string, keyVals ...interface{}) { l.log(LevelError, msg, keyVals...) }

// Package-level functions using the default logger.

// SetLevel sets the minimum level of the default logger.
func SetLevel(level Level) { defaultLogger.SetLevel(level) }

// SetWriter redirects the default logger's output.
func SetWriter(w io.Writer) { defaultLogger.SetWriter(w) }

// With returns a Logger derived from the default logger.
func With(key string, value interface{}) *Logger { return defaultLogger.With(key, value) }

// Debug logs at debug level using the default logger.
func Debug(msg string, keyVals ...interface{}) { defaultLogger.Debug(msg, keyVals...) }

// Info logs at info level using the default logger.
func Info(msg string, keyVals ...interface{}) { defaultLogger.Info(msg, keyVals...) }

// Warn logs at warn level using the default logger.
func Warn(msg string, keyVals ...interface{}) { defaultLogger.Warn(msg, keyVals...) }

// Error logs at error level using the default logger.
func Error(msg string, keyVals ...interface{}) { defaultLogger.Error(msg, keyVals...) }
