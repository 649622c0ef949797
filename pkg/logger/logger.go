package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// contextKey is the type for context keys
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// LoggerKey is the context key for logger
	LoggerKey contextKey = "logger"
)

var (
	globalLogger = zerolog.Nop()
	globalWriter *SmartWriter
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output io.Writer
}

// InitWithFile initializes logger with a rotating file and, optionally, stderr.
// stdout is left alone because the prompt writes there.
func InitWithFile(filename string, level string, format string, enableConsole bool) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    20, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	var output io.Writer = logFile
	if enableConsole {
		output = io.MultiWriter(os.Stderr, logFile)
	}

	Init(Config{
		Level:  level,
		Format: format,
		Output: output,
	})
}

// Init initializes the global logger
func Init(cfg Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	// Buffered, flushed every second and immediately on error/fatal.
	sw := NewSmartWriter(output, 1*time.Second)
	globalWriter = sw
	output = sw

	zerolog.CallerMarshalFunc = shortCaller

	var logger zerolog.Logger
	if cfg.Format == "console" {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        output,
			NoColor:    true,
			TimeFormat: "2006-01-02 15:04:05.000",
			FormatLevel: func(i interface{}) string {
				return strings.ToUpper(fmt.Sprintf("%-7s", i))
			},
			FormatCaller: func(i interface{}) string {
				return fmt.Sprintf("%-24s", i)
			},
			PartsOrder: []string{
				zerolog.TimestampFieldName,
				zerolog.LevelFieldName,
				zerolog.CallerFieldName,
				zerolog.MessageFieldName,
			},
		}
		logger = zerolog.New(consoleWriter).With().Timestamp().Caller().Logger()
	} else {
		logger = zerolog.New(output).With().Timestamp().Caller().Logger()
	}

	globalLogger = logger
}

// shortCaller keeps the last two path elements, e.g. usecase/roulette_uc.go:42
func shortCaller(pc uintptr, file string, line int) string {
	short := file
	count := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			count++
			if count == 2 {
				short = file[i+1:]
				break
			}
		}
	}
	return fmt.Sprintf("%s:%d", short, line)
}

// Flush forces all buffered logs to be written to the underlying writer
func Flush() {
	if globalWriter != nil {
		_ = globalWriter.Sync()
	}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithRequestID creates a new context with request ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	logger := FromContext(ctx).With().Str("request_id", requestID).Logger()

	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	ctx = context.WithValue(ctx, LoggerKey, &logger)

	return ctx
}

// FromContext extracts logger from context.
// If no logger in context, returns global logger
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &globalLogger
	}

	if logger, ok := ctx.Value(LoggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return &globalLogger
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}

// Debug logs a debug message
func Debug(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Debug()
}

// Info logs an info message
func Info(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Info()
}

// Warn logs a warning message
func Warn(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Warn()
}

// Error logs an error message
func Error(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Error()
}

// WithFields adds fields to the context logger
func WithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	logger := FromContext(ctx)

	event := logger.With()
	for k, v := range fields {
		event = event.Interface(k, v)
	}

	newLogger := event.Logger()
	return context.WithValue(ctx, LoggerKey, &newLogger)
}

// Global logger methods, for startup code that has no context yet.

// InfoGlobal logs an info message without context
func InfoGlobal() *zerolog.Event {
	return globalLogger.Info()
}

// WarnGlobal logs a warning message without context
func WarnGlobal() *zerolog.Event {
	return globalLogger.Warn()
}

// ErrorGlobal logs an error message without context
func ErrorGlobal() *zerolog.Event {
	return globalLogger.Error()
}

// FatalGlobal logs a fatal message and exits
func FatalGlobal() *zerolog.Event {
	return globalLogger.Fatal()
}
