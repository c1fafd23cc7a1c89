package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "POPOVER_DEBUG"

var (
	mu      sync.Mutex
	logger  = zerolog.Nop()
	logFile *os.File
	envOnce sync.Once
)

// Init directs logging to the file at path, appending, with the given level
// and format (see New). If path is empty, uses "debug.log" in the current
// directory. Close releases the file.
func Init(path, level, format string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path, level, format)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path, level, format string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	l, err := New(f, level, format)
	if err != nil {
		f.Close()
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = l
	return nil
}

// SetLogger replaces the destination of debug messages.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Close closes the debug log file, if one is open, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = zerolog.Nop()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a debug message.
func Log(format string, args ...any) {
	envOnce.Do(initFromEnv)

	mu.Lock()
	l := logger
	mu.Unlock()

	if l.GetLevel() > zerolog.DebugLevel {
		return
	}
	l.Debug().Msgf(format, args...)
}

func initFromEnv() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(path, "debug", "json"); err != nil {
		fmt.Fprintf(os.Stderr, "debug: %v\n", err)
	}
}
