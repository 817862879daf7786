package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/history"
)

// Backend selects how outputs are enumerated.
type Backend string

const (
	BackendSway Backend = "sway" // query_command JSON (swaymsg -t get_outputs)
	BackendX11  Backend = "x11"  // XRandR over the X connection
)

// HistoryConfig configures the issued-command history file.
type HistoryConfig struct {
	// Enabled turns the history file on/off (default: true)
	Enabled bool `yaml:"enabled"`
	// File is the history path (default: ~/.local/state/bgdrop/history.log)
	File string `yaml:"file,omitempty"`
	// Level filters entries: debug, info, warn, error (default: info)
	Level string `yaml:"level,omitempty"`
	// MaxSizeMB is the size that triggers rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config is the effective bgdrop configuration.
type Config struct {
	Backend        Backend         `yaml:"backend"`
	QueryCommand   []string        `yaml:"query_command"`
	BackgroundTool string          `yaml:"background_tool"`
	DefaultMode    background.Mode `yaml:"default_mode"`
	LogLevel       string          `yaml:"log_level"`
	LogFile        string          `yaml:"log_file,omitempty"`
	History        HistoryConfig   `yaml:"history"`
}

// DefaultConfig reproduces the stock behaviour: swaymsg for both querying and setting, fit mode.
func DefaultConfig() *Config {
	return &Config{
		Backend:        BackendSway,
		QueryCommand:   []string{"swaymsg", "-t", "get_outputs", "-r"},
		BackgroundTool: background.DefaultTool,
		DefaultMode:    background.DefaultMode,
		LogLevel:       "info",
		History: HistoryConfig{
			Enabled:   true,
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// ValidationError points at the offending config key.
type ValidationError struct {
	Path string
	File string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the config for values bgdrop cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSway, BackendX11:
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: sway, x11")}
	}
	if c.Backend == BackendSway {
		if len(c.QueryCommand) == 0 || strings.TrimSpace(c.QueryCommand[0]) == "" {
			return &ValidationError{Path: "query_command", Err: fmt.Errorf("query_command must name a program")}
		}
	}
	if strings.TrimSpace(c.BackgroundTool) == "" {
		return &ValidationError{Path: "background_tool", Err: fmt.Errorf("background_tool is required")}
	}
	if !c.DefaultMode.Valid() {
		_, err := background.ParseMode(string(c.DefaultMode))
		return &ValidationError{Path: "default_mode", Err: err}
	}
	if !validLevel(c.LogLevel) {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	if c.History.Level != "" && !validLevel(c.History.Level) {
		return &ValidationError{Path: "history.level", Err: fmt.Errorf("history.level must be one of: debug, info, warn, error")}
	}
	if c.History.MaxSizeMB < 0 {
		return &ValidationError{Path: "history.max_size_mb", Err: fmt.Errorf("must be >= 0")}
	}
	if c.History.MaxFiles < 0 {
		return &ValidationError{Path: "history.max_files", Err: fmt.Errorf("must be >= 0")}
	}
	return nil
}

func validLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// GetHistoryConfig returns the history logger configuration with defaults applied.
func (c *Config) GetHistoryConfig() history.Config {
	if c == nil {
		return history.Config{}
	}
	h := c.History
	if h.File == "" {
		h.File = filepath.Join(stateDir(), "history.log")
	}
	if h.MaxSizeMB == 0 {
		h.MaxSizeMB = 10
	}
	if h.MaxFiles == 0 {
		h.MaxFiles = 3
	}
	return history.Config{
		Enabled:   h.Enabled,
		Level:     history.ParseLogLevel(h.Level),
		FilePath:  h.File,
		MaxSizeMB: h.MaxSizeMB,
		MaxFiles:  h.MaxFiles,
	}
}

// GetLogFile returns the diagnostics log path used while the TUI owns the terminal.
func (c *Config) GetLogFile() string {
	if c != nil && c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(stateDir(), "bgdrop.log")
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "bgdrop")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		// Last resort fallback - use current directory
		home = "."
	}
	return filepath.Join(home, ".local", "state", "bgdrop")
}
