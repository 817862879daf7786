package background

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/bgdrop/internal/command"
)

// DefaultTool is the compositor control command used to set backgrounds.
const DefaultTool = "swaymsg"

// Recorder receives every issued command together with the result of running it.
type Recorder interface {
	Issued(display, path string, mode Mode, cmdline string, runErr error)
}

// Invoker sets per-output backgrounds by running the compositor tool.
type Invoker struct {
	tool     string
	runner   command.Runner
	logger   *slog.Logger
	recorder Recorder
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithRunner replaces the process runner.
func WithRunner(r command.Runner) Option {
	return func(inv *Invoker) { inv.runner = r }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(inv *Invoker) { inv.logger = l }
}

// WithRecorder attaches a command history recorder.
func WithRecorder(r Recorder) Option {
	return func(inv *Invoker) { inv.recorder = r }
}

// NewInvoker returns an Invoker for tool (DefaultTool when empty).
func NewInvoker(tool string, opts ...Option) *Invoker {
	if strings.TrimSpace(tool) == "" {
		tool = DefaultTool
	}
	inv := &Invoker{
		tool:   tool,
		runner: command.Exec{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Command returns the command line Apply issues for the given arguments.
func (inv *Invoker) Command(display, path string, mode Mode) string {
	return fmt.Sprintf("%s output %s bg \"%s\" %s", inv.tool, display, path, mode)
}

// Apply runs the background command synchronously and returns the command line.
//
// The tool's exit status does not change the result: the command counts as
// issued either way. Failures only reach the diagnostics logger and recorder.
func (inv *Invoker) Apply(ctx context.Context, display, path string, mode Mode) string {
	cmdline := inv.Command(display, path, mode)
	err := inv.runner.Run(ctx, inv.tool, "output", display, "bg", path, string(mode))
	if err != nil {
		inv.logger.Warn("background command failed", "display", display, "mode", string(mode), "err", err)
	} else {
		inv.logger.Debug("background command issued", "display", display, "mode", string(mode))
	}
	if inv.recorder != nil {
		inv.recorder.Issued(display, path, mode, cmdline, err)
	}
	return cmdline
}
