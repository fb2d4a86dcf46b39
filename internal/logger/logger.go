// Package logger provides file-based structured logging. The TUI owns the
// terminal, so log output goes to a file instead of stderr.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	logDir  = defaultLogDir()
	logFile *os.File
	Log     = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

func defaultLogDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "cardgrid")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "cardgrid")
}

// Init opens the log file and installs the JSON handler.
// - debug=true: logs all levels (DEBUG+)
// - debug=false: logs WARN/ERROR only
func Init(debug bool) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(logDir, "cardgrid.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	logFile = f

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	Log = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

func Debug(msg string, args ...any) { Log.Debug(msg, args...) }
func Info(msg string, args ...any)  { Log.Info(msg, args...) }
func Warn(msg string, args ...any)  { Log.Warn(msg, args...) }
func Error(msg string, args ...any) { Log.Error(msg, args...) }

func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
