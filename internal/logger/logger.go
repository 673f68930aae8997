// Package logger provides verbose logging for the radar CLI and servers.
// When verbose mode is enabled via the --verbose flag, messages are written
// to stderr to show how a verdict was produced (rule-based or AI, fallbacks,
// dictionary reloads).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	sugar             = build(os.Stderr)
)

// build creates a console logger that writes "[LEVEL] message" lines.
func build(w io.Writer) *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return zap.New(core).Sugar()
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	_ = sugar.Sync()
	output = w
	sugar = build(w)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Debugf(format, args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Infof(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Warnf(format, args...)
	}
}

// Infow prints a message with structured key/value context.
func Infow(msg string, keysAndValues ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Infow(msg, keysAndValues...)
	}
}

// Warnw prints a warning with structured key/value context.
func Warnw(msg string, keysAndValues ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Warnw(msg, keysAndValues...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
