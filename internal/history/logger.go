// Package history keeps a rotating file record of issued background commands.
package history

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/1broseidon/bgdrop/internal/background"
)

// LogLevel defines the logging verbosity.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ActionType represents the kind of entry being logged.
type ActionType string

const (
	ActionSetBackground ActionType = "SET-BACKGROUND"
	ActionSetFailed     ActionType = "SET-BACKGROUND-FAILED"
	ActionStartup       ActionType = "STARTUP"
)

func actionLevel(action ActionType) LogLevel {
	switch action {
	case ActionSetFailed:
		return LevelWarn
	case ActionStartup:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Config holds configuration for the history logger.
type Config struct {
	Enabled   bool
	Level     LogLevel
	FilePath  string
	MaxSizeMB int
	MaxFiles  int

	// Diagnostics receives write and rotation failures. Nil discards them.
	Diagnostics *slog.Logger
}

// Logger appends entries to a size-rotated file.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	config      Config
	currentSize int64
	now         func() time.Time
}

var _ background.Recorder = (*Logger)(nil)

// NewLogger opens (creating if needed) the history file. A disabled config yields a no-op logger.
func NewLogger(cfg Config) (*Logger, error) {
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = slog.New(slog.DiscardHandler)
	}
	if !cfg.Enabled {
		return &Logger{config: cfg, now: time.Now}, nil
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 1
	}
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = 1
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat history file: %w", err)
	}

	return &Logger{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
		now:         time.Now,
	}, nil
}

// Issued implements background.Recorder.
func (l *Logger) Issued(display, path string, mode background.Mode, cmdline string, runErr error) {
	details := map[string]interface{}{
		"path":    path,
		"mode":    string(mode),
		"command": cmdline,
	}
	action := ActionSetBackground
	if runErr != nil {
		action = ActionSetFailed
		details["error"] = runErr.Error()
	}
	l.Log(action, display, details)
}

// Log records one entry. Details are written sorted by key; strings are quoted.
func (l *Logger) Log(action ActionType, display string, details map[string]interface{}) {
	if l == nil || !l.config.Enabled {
		return
	}
	if actionLevel(action) < l.config.Level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	maxBytes := int64(l.config.MaxSizeMB) * 1024 * 1024
	if l.currentSize >= maxBytes {
		if err := l.rotate(); err != nil {
			l.config.Diagnostics.Warn("history rotation failed", "file", l.config.FilePath, "error", err)
		}
		if l.file == nil {
			return
		}
	}

	entry := formatEntry(l.now(), action, display, details)
	n, err := l.file.WriteString(entry)
	if err != nil {
		l.config.Diagnostics.Warn("history write failed", "file", l.config.FilePath, "error", err)
		return
	}
	l.currentSize += int64(n)
}

func formatEntry(ts time.Time, action ActionType, display string, details map[string]interface{}) string {
	var sb strings.Builder
	sb.WriteString(ts.Format("2006-01-02 15:04:05"))
	sb.WriteString(" [")
	sb.WriteString(string(action))
	sb.WriteString("]")

	if display != "" {
		sb.WriteString(" display=")
		sb.WriteString(display)
	}

	if len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch val := details[k].(type) {
			case string:
				sb.WriteString(fmt.Sprintf(" %s=%q", k, val))
			default:
				sb.WriteString(fmt.Sprintf(" %s=%v", k, val))
			}
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// Close closes the logger and releases resources.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// rotate shifts history.log -> history.log.1 -> ... keeping MaxFiles rotated files.
func (l *Logger) rotate() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	basePath := l.config.FilePath
	for i := l.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		newPath := fmt.Sprintf("%s.%d", basePath, i+1)
		if i == l.config.MaxFiles {
			os.Remove(oldPath)
		} else {
			os.Rename(oldPath, newPath)
		}
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new history file: %w", err)
	}

	l.file = f
	l.currentSize = 0
	return nil
}

// ParseLogLevel converts a string to LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
