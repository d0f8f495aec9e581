package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/emojigen/internal/config"
)

// parseLevel maps a config level name to a slog level. Unknown or empty
// names give warn.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newLogger builds the CLI logger. With cfg.File set, records go to a
// rotating file and the returned closer must be closed; otherwise they go to
// stderr and the closer is nil.
func newLogger(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil, nil
	}

	path := cfg.File
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    max(cfg.MaxSize, 1),
		MaxBackups: max(cfg.MaxFiles, 1),
		MaxAge:     30,
		Compress:   true,
	}
	return slog.New(slog.NewTextHandler(w, opts)), w, nil
}
