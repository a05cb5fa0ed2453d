package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	verbose atomic.Bool

	mu      sync.Mutex
	logFile *os.File
	out     io.Writer = os.Stdout
)

// SetVerbose enables or disables debug logging for the current process.
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	return verbose.Load()
}

// SetOutputFile mirrors all output into the given file in addition to
// stdout. An empty path disables file logging.
func SetOutputFile(path string) error {
	path = strings.TrimSpace(path)

	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		out = os.Stdout
		if err != nil {
			return err
		}
	}
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	logFile = f
	out = io.MultiWriter(os.Stdout, f)
	return nil
}

// Close flushes and closes the log file if one is configured.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	out = os.Stdout
	return err
}

// Infof prints formatted output regardless of verbosity level.
func Infof(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, args...)
}

// Infoln prints output regardless of verbosity level.
func Infoln(args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, args...)
}

// Debugf prints formatted output only when verbose mode is enabled.
func Debugf(format string, args ...any) {
	if !Verbose() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, args...)
}
