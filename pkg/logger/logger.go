// Package logger owns the process-wide logger. Persistence and notification
// failures never abort an operation in this codebase, so the log is the only
// place they stay visible.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared logger instance. Before Init it writes to stderr so
// library code can always log.
var Logger = log.New(os.Stderr)

// Config holds logger configuration.
type Config struct {
	Debug  bool
	LogDir string
}

// Init points Logger at a rotating file under the configured directory. In
// debug mode output is mirrored to stderr and the level drops to debug.
func Init(cfg Config) error {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, "taskbook.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	var w io.Writer = fileWriter
	if cfg.Debug {
		w = io.MultiWriter(fileWriter, os.Stderr)
	}

	Logger = log.New(w)
	if cfg.Debug {
		Logger.SetLevel(log.DebugLevel)
	}
	return nil
}
